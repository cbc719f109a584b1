package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itech-institute/itech-site-go/internal/catalog"
)

// handleListCourses returns the catalog, optionally filtered by a
// case-insensitive substring match on title or description.
func (h *Handler) handleListCourses(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	courses := catalog.Courses()
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"courses": courses})
		return
	}

	filtered := make([]catalog.Course, 0)
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.Title), query) ||
			strings.Contains(strings.ToLower(course.Description), query) {
			filtered = append(filtered, course)
		}
	}
	c.JSON(http.StatusOK, gin.H{"courses": filtered})
}

// handleCourseByID returns one course with its detailed description.
func (h *Handler) handleCourseByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "courses", "invalid course id")
		return
	}

	course, ok := catalog.CourseByID(id)
	if !ok {
		h.respondError(c, http.StatusNotFound, "courses", "course not found")
		return
	}
	c.JSON(http.StatusOK, course)
}

// handleSimilarCourses returns courses most similar to the given one,
// from the precomputed similarity index.
func (h *Handler) handleSimilarCourses(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "courses", "invalid course id")
		return
	}

	if _, ok := catalog.CourseByID(id); !ok {
		h.respondError(c, http.StatusNotFound, "courses", "course not found")
		return
	}

	limit := 3
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 10 {
			h.respondError(c, http.StatusBadRequest, "courses", "limit must be between 1 and 10")
			return
		}
		limit = parsed
	}

	similar := make([]catalog.Course, 0, limit)
	for _, similarID := range h.engine.Similar(id, limit) {
		if course, ok := catalog.CourseByID(similarID); ok {
			similar = append(similar, course)
		}
	}
	c.JSON(http.StatusOK, gin.H{"courses": similar})
}
