package web

import (
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/itech-institute/itech-site-go/internal/storage"
)

// handleListProjects returns showcased projects, optionally filtered by
// category.
func (h *Handler) handleListProjects(c *gin.Context) {
	projects, err := h.repo.Projects(c.Request.Context(), strings.TrimSpace(c.Query("category")))
	if err != nil {
		h.respondStorageError(c, "projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// handleProjectByID returns one project and counts the view.
func (h *Handler) handleProjectByID(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.repo.IncrementProjectViews(ctx, id); err != nil {
		h.respondStorageError(c, "projects", err)
		return
	}

	project, err := h.repo.ProjectByID(ctx, id)
	if err != nil {
		h.respondStorageError(c, "projects", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// handleCreateProject accepts a multipart upload: project fields plus
// either a zip archive, loose files, or an external URL.
func (h *Handler) handleCreateProject(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes)

	project := storage.Project{
		StudentName: strings.TrimSpace(c.PostForm("student_name")),
		Course:      strings.TrimSpace(c.PostForm("course")),
		Title:       strings.TrimSpace(c.PostForm("project_title")),
		Category:    strings.TrimSpace(c.PostForm("project_category")),
		Description: strings.TrimSpace(c.PostForm("project_description")),
		URL:         strings.TrimSpace(c.PostForm("project_url")),
	}
	if project.StudentName == "" || project.Course == "" || project.Title == "" ||
		project.Category == "" || project.Description == "" {
		h.respondError(c, http.StatusBadRequest, "projects",
			"student_name, course, project_title, project_category, and project_description are required")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.metrics.RecordUpload("files", "error", 0)
		h.respondError(c, http.StatusBadRequest, "projects", "invalid multipart form")
		return
	}
	files := form.File["files"]

	kind := "url"
	if len(files) > 0 {
		dirName := uuid.NewString()
		destDir := filepath.Join(h.cfg.UploadDir, dirName)

		var written int64
		for _, file := range files {
			if strings.EqualFold(filepath.Ext(file.Filename), ".zip") {
				kind = "zip"
				n, err := h.extractZipUpload(file, destDir)
				written += n
				if err != nil {
					_ = os.RemoveAll(destDir)
					h.metrics.RecordUpload(kind, "error", 0)
					h.log.WithError(err).Warn("project zip extraction failed")
					h.respondError(c, http.StatusBadRequest, "projects", "could not extract zip archive")
					return
				}
				continue
			}

			if kind == "url" {
				kind = "files"
			}
			n, err := saveUploadedFile(file, destDir)
			written += n
			if err != nil {
				_ = os.RemoveAll(destDir)
				h.metrics.RecordUpload(kind, "error", 0)
				h.log.WithError(err).Warn("project file upload failed")
				h.respondError(c, http.StatusBadRequest, "projects", "could not store uploaded files")
				return
			}
		}

		if entry, ok := findEntryHTML(destDir); ok {
			project.URL = "/uploads/projects/" + dirName + "/" + entry
		}
		h.metrics.RecordUpload(kind, "success", written)
	} else if project.URL != "" {
		h.metrics.RecordUpload(kind, "success", 0)
	}

	id, err := h.repo.CreateProject(c.Request.Context(), project, c.PostForm("password"))
	if err != nil {
		h.metrics.RecordStorageWriteFailure("projects")
		h.respondStorageError(c, "projects", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "url": project.URL})
}

func (h *Handler) extractZipUpload(file *multipart.FileHeader, destDir string) (int64, error) {
	src, err := file.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()
	return extractZip(src, file.Size, destDir)
}

// handleLikeProject bumps the like counter.
func (h *Handler) handleLikeProject(c *gin.Context) {
	h.incrementProjectCounter(c, h.repo.IncrementProjectLikes)
}

// handleShareProject bumps the share counter.
func (h *Handler) handleShareProject(c *gin.Context) {
	h.incrementProjectCounter(c, h.repo.IncrementProjectShares)
}

func (h *Handler) incrementProjectCounter(c *gin.Context, increment func(ctx context.Context, id int64) error) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	if err := increment(c.Request.Context(), id); err != nil {
		h.respondStorageError(c, "projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type deleteProjectRequest struct {
	Password string `json:"password"`
}

// handleDeleteProject removes a project after checking its delete
// password, then cleans up its uploaded files.
func (h *Handler) handleDeleteProject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	var req deleteProjectRequest
	_ = c.ShouldBindJSON(&req) // body is optional for unprotected projects

	ctx := c.Request.Context()
	project, err := h.repo.ProjectByID(ctx, id)
	if err != nil {
		h.respondStorageError(c, "projects", err)
		return
	}

	if err := h.repo.DeleteProject(ctx, id, req.Password); err != nil {
		h.respondStorageError(c, "projects", err)
		return
	}

	h.removeProjectFiles(project.URL)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// removeProjectFiles deletes the upload directory referenced by a
// hosted project URL. External URLs are left alone.
func (h *Handler) removeProjectFiles(url string) {
	const prefix = "/uploads/projects/"
	if !strings.HasPrefix(url, prefix) {
		return
	}
	rest := strings.TrimPrefix(url, prefix)
	dirName, _, _ := strings.Cut(rest, "/")
	if dirName == "" || dirName == "." || dirName == ".." {
		return
	}
	if err := os.RemoveAll(filepath.Join(h.cfg.UploadDir, dirName)); err != nil {
		h.log.WithError(err).Warn("failed to remove project files")
	}
}

func (h *Handler) projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.respondError(c, http.StatusBadRequest, "projects", "invalid project id")
		return 0, false
	}
	return id, true
}
