package web

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

var baseProjectFields = map[string]string{
	"student_name":        "Meera",
	"course":              "Web Development",
	"project_title":       "Portfolio Site",
	"project_category":    "web",
	"project_description": "A personal portfolio built in the web development course.",
}

// doMultipart posts a multipart form with the given fields and files.
// Each file entry maps a filename to its content.
func (e *testEnv) doMultipart(t *testing.T, path string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create form file %s: %v", name, err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// buildZip assembles an in-memory archive from name to content pairs.
func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range entries {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := io.WriteString(entry, content); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return buf.Bytes()
}

func TestCreateProject_MissingFields(t *testing.T) {
	env := newTestEnv(t, 10)

	rec := env.doMultipart(t, "/api/projects", map[string]string{
		"student_name": "Meera",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateProject_WithExternalURL(t *testing.T) {
	env := newTestEnv(t, 10)

	fields := map[string]string{"project_url": "https://example.com/demo"}
	for k, v := range baseProjectFields {
		fields[k] = v
	}

	rec := env.doMultipart(t, "/api/projects", fields, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["url"] != "https://example.com/demo" {
		t.Errorf("url = %v, want the external URL", body["url"])
	}
}

func TestCreateProject_WithZipUpload(t *testing.T) {
	env := newTestEnv(t, 10)

	archive := buildZip(t, map[string]string{
		"site/index.html": "<html><body>hi</body></html>",
		"site/style.css":  "body { margin: 0 }",
		"__MACOSX/._junk": "resource fork",
		"site/.hidden":    "secret",
	})

	rec := env.doMultipart(t, "/api/projects", baseProjectFields, map[string][]byte{
		"portfolio.zip": archive,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	url, _ := body["url"].(string)
	if !strings.HasPrefix(url, "/uploads/projects/") || !strings.HasSuffix(url, "/site/index.html") {
		t.Fatalf("url = %q, want hosted path ending in site/index.html", url)
	}

	dirName := strings.Split(strings.TrimPrefix(url, "/uploads/projects/"), "/")[0]
	if _, err := os.Stat(filepath.Join(env.uploadDir, dirName, "site", "style.css")); err != nil {
		t.Errorf("style.css not extracted: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.uploadDir, dirName, "__MACOSX")); !os.IsNotExist(err) {
		t.Error("macOS metadata must not be extracted")
	}
	if _, err := os.Stat(filepath.Join(env.uploadDir, dirName, "site", ".hidden")); !os.IsNotExist(err) {
		t.Error("hidden files must not be extracted")
	}
}

func TestCreateProject_WithLooseFiles(t *testing.T) {
	env := newTestEnv(t, 10)

	rec := env.doMultipart(t, "/api/projects", baseProjectFields, map[string][]byte{
		"index.html": []byte("<html></html>"),
		"app.js":     []byte("console.log('hi')"),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	url, _ := body["url"].(string)
	if !strings.HasSuffix(url, "/index.html") {
		t.Errorf("url = %q, want path ending in index.html", url)
	}
}

func TestProject_ViewLikeShare(t *testing.T) {
	env := newTestEnv(t, 10)

	created := env.doMultipart(t, "/api/projects", baseProjectFields, nil)
	if created.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", created.Code, created.Body.String())
	}
	id := itoa(int(decodeBody(t, created)["id"].(float64)))

	detail := env.doJSON(t, http.MethodGet, "/api/projects/"+id, nil, nil)
	if detail.Code != http.StatusOK {
		t.Fatalf("detail status = %d", detail.Code)
	}
	if views := decodeBody(t, detail)["views"].(float64); views != 1 {
		t.Errorf("views = %v, want 1", views)
	}

	if rec := env.doJSON(t, http.MethodPost, "/api/projects/"+id+"/like", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("like status = %d", rec.Code)
	}
	if rec := env.doJSON(t, http.MethodPost, "/api/projects/"+id+"/share", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("share status = %d", rec.Code)
	}

	detail = env.doJSON(t, http.MethodGet, "/api/projects/"+id, nil, nil)
	body := decodeBody(t, detail)
	if body["likes"].(float64) != 1 || body["shares"].(float64) != 1 {
		t.Errorf("likes = %v shares = %v, want 1 and 1", body["likes"], body["shares"])
	}

	if rec := env.doJSON(t, http.MethodGet, "/api/projects/999", nil, nil); rec.Code != http.StatusNotFound {
		t.Errorf("missing project status = %d, want 404", rec.Code)
	}
}

func TestProject_DeleteProtected(t *testing.T) {
	env := newTestEnv(t, 10)

	fields := map[string]string{"password": "s3cret-pass"}
	for k, v := range baseProjectFields {
		fields[k] = v
	}
	created := env.doMultipart(t, "/api/projects", fields, nil)
	if created.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", created.Code, created.Body.String())
	}
	id := itoa(int(decodeBody(t, created)["id"].(float64)))

	rec := env.doJSON(t, http.MethodDelete, "/api/projects/"+id, map[string]string{"password": "wrong"}, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrong password status = %d, want 403", rec.Code)
	}

	rec = env.doJSON(t, http.MethodDelete, "/api/projects/"+id, map[string]string{"password": "s3cret-pass"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = env.doJSON(t, http.MethodGet, "/api/projects/"+id, nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("deleted project status = %d, want 404", rec.Code)
	}
}

func TestProject_DeleteUnprotectedNeedsNoPassword(t *testing.T) {
	env := newTestEnv(t, 10)

	created := env.doMultipart(t, "/api/projects", baseProjectFields, nil)
	id := itoa(int(decodeBody(t, created)["id"].(float64)))

	rec := env.doJSON(t, http.MethodDelete, "/api/projects/"+id, nil, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("delete status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestProject_DeleteRemovesUploadedFiles(t *testing.T) {
	env := newTestEnv(t, 10)

	created := env.doMultipart(t, "/api/projects", baseProjectFields, map[string][]byte{
		"index.html": []byte("<html></html>"),
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", created.Code, created.Body.String())
	}
	body := decodeBody(t, created)
	id := itoa(int(body["id"].(float64)))
	url := body["url"].(string)
	dirName := strings.Split(strings.TrimPrefix(url, "/uploads/projects/"), "/")[0]

	rec := env.doJSON(t, http.MethodDelete, "/api/projects/"+id, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body.String())
	}

	if _, err := os.Stat(filepath.Join(env.uploadDir, dirName)); !os.IsNotExist(err) {
		t.Error("upload directory must be removed with the project")
	}
}
