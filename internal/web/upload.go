package web

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"

	apperrors "github.com/itech-institute/itech-site-go/internal/errors"
)

// extractZip extracts an uploaded archive into destDir and returns the
// number of bytes written. Directory entries, macOS metadata, dotfiles,
// and paths escaping destDir are skipped or rejected.
func extractZip(src io.ReaderAt, size int64, destDir string) (int64, error) {
	reader, err := zip.NewReader(src, size)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return 0, apperrors.NewUploadError("", fmt.Errorf("invalid zip archive: %w", err))
	}
	// ErrInsecurePath still yields a usable reader; suspicious entry
	// names are handled below per entry.

	var written int64
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if isJunkEntry(file.Name) {
			continue
		}

		target, err := safeJoin(destDir, file.Name)
		if err != nil {
			return written, apperrors.NewUploadError(file.Name, err)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, apperrors.NewUploadError(file.Name, err)
		}

		n, err := writeZipEntry(file, target)
		written += n
		if err != nil {
			return written, apperrors.NewUploadError(file.Name, err)
		}
	}
	return written, nil
}

func writeZipEntry(file *zip.File, target string) (int64, error) {
	in, err := file.Open()
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return n, err
}

// saveUploadedFile stores a single loose (non-zip) upload into destDir
// and returns the bytes written.
func saveUploadedFile(file *multipart.FileHeader, destDir string) (int64, error) {
	name := filepath.Base(file.Filename)
	if name == "" || name == "." || isJunkEntry(name) {
		return 0, apperrors.NewUploadError(file.Filename, fmt.Errorf("unusable filename"))
	}

	target, err := safeJoin(destDir, name)
	if err != nil {
		return 0, apperrors.NewUploadError(file.Filename, err)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, apperrors.NewUploadError(file.Filename, err)
	}

	in, err := file.Open()
	if err != nil {
		return 0, apperrors.NewUploadError(file.Filename, err)
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return 0, apperrors.NewUploadError(file.Filename, err)
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, apperrors.NewUploadError(file.Filename, err)
	}
	return n, nil
}

// isJunkEntry reports archive entries that should never be served:
// macOS resource forks and hidden files in any path segment.
func isJunkEntry(name string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(name), "/") {
		if segment == "__MACOSX" || strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

// safeJoin joins an archive entry path onto destDir, rejecting paths
// that would escape it.
func safeJoin(destDir, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes upload directory: %s", name)
	}
	return filepath.Join(destDir, cleaned), nil
}

// findEntryHTML picks the page to link for an extracted project:
// index.html first, then any file whose name contains "index", then any
// HTML file at all. Returns the path relative to root.
func findEntryHTML(root string) (string, bool) {
	var htmlFiles []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".html") {
			rel, relErr := filepath.Rel(root, path)
			if relErr == nil {
				htmlFiles = append(htmlFiles, filepath.ToSlash(rel))
			}
		}
		return nil
	})
	if len(htmlFiles) == 0 {
		return "", false
	}
	sort.Strings(htmlFiles)

	for _, f := range htmlFiles {
		if strings.EqualFold(filepath.Base(f), "index.html") {
			return f, true
		}
	}
	for _, f := range htmlFiles {
		if strings.Contains(strings.ToLower(filepath.Base(f)), "index") {
			return f, true
		}
	}
	return htmlFiles[0], true
}
