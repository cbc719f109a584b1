package web

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

func TestExtractZip_RejectsEscapingPaths(t *testing.T) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	entry, err := writer.Create("/etc/passwd")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := entry.Write([]byte("root:x:0:0")); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	dest := t.TempDir()
	data := buf.Bytes()
	if _, err := extractZip(bytes.NewReader(data), int64(len(data)), dest); err == nil {
		t.Fatal("absolute entry path must be rejected")
	}
	remaining, err := os.ReadDir(dest)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if len(remaining) != 0 {
		t.Error("nothing may be written for a rejected archive")
	}
}

func TestExtractZip_SkipsDotSegmentEntries(t *testing.T) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, name := range []string{"../../escape.txt", "site/index.html"} {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("create entry: %v", err)
		}
		if _, err := entry.Write([]byte("content")); err != nil {
			t.Fatalf("write entry: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	dest := t.TempDir()
	data := buf.Bytes()
	if _, err := extractZip(bytes.NewReader(data), int64(len(data)), dest); err != nil {
		t.Fatalf("extractZip: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "site", "index.html")); err != nil {
		t.Errorf("clean entry not extracted: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(filepath.Dir(dest)), "escape.txt")); !os.IsNotExist(err) {
		t.Error("dot-segment entry must not be written")
	}
}

func TestExtractZip_InvalidArchive(t *testing.T) {
	data := []byte("this is not a zip")
	if _, err := extractZip(bytes.NewReader(data), int64(len(data)), t.TempDir()); err == nil {
		t.Error("garbage input must be rejected")
	}
}

func TestIsJunkEntry(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"index.html", false},
		{"site/app.js", false},
		{"__MACOSX/._index.html", true},
		{"site/__MACOSX/meta", true},
		{".DS_Store", true},
		{"site/.env", true},
	}
	for _, tt := range tests {
		if got := isJunkEntry(tt.name); got != tt.want {
			t.Errorf("isJunkEntry(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSafeJoin(t *testing.T) {
	dest := t.TempDir()

	if _, err := safeJoin(dest, "site/index.html"); err != nil {
		t.Errorf("relative path rejected: %v", err)
	}
	if _, err := safeJoin(dest, "../outside"); err == nil {
		t.Error("parent escape must be rejected")
	}
	if _, err := safeJoin(dest, "/etc/passwd"); err == nil {
		t.Error("absolute path must be rejected")
	}
}

func TestFindEntryHTML(t *testing.T) {
	root := t.TempDir()
	mustWrite := func(rel string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if _, ok := findEntryHTML(root); ok {
		t.Error("empty tree must have no entry page")
	}

	mustWrite("docs/about.html")
	if entry, ok := findEntryHTML(root); !ok || entry != "docs/about.html" {
		t.Errorf("entry = %q, want docs/about.html", entry)
	}

	mustWrite("docs/main-index.html")
	if entry, ok := findEntryHTML(root); !ok || entry != "docs/main-index.html" {
		t.Errorf("entry = %q, want the index-named page", entry)
	}

	mustWrite("site/index.html")
	if entry, ok := findEntryHTML(root); !ok || entry != "site/index.html" {
		t.Errorf("entry = %q, want site/index.html", entry)
	}
}
