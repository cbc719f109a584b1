package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itech-institute/itech-site-go/internal/catalog"
	"github.com/itech-institute/itech-site-go/internal/storage"
)

type enrollRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	CourseID int    `json:"course_id"`
	Message  string `json:"message"`
}

// handleEnroll stores an enrollment request for a catalog course.
func (h *Handler) handleEnroll(c *gin.Context) {
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "enroll", "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" {
		h.respondError(c, http.StatusBadRequest, "enroll", "name is required")
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		h.respondError(c, http.StatusBadRequest, "enroll", "a valid email is required")
		return
	}
	if _, ok := catalog.CourseByID(req.CourseID); !ok {
		h.respondError(c, http.StatusBadRequest, "enroll", "unknown course")
		return
	}

	id, err := h.repo.CreateEnrollment(c.Request.Context(), storage.Enrollment{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    strings.TrimSpace(req.Phone),
		CourseID: req.CourseID,
		Message:  strings.TrimSpace(req.Message),
	})
	if err != nil {
		h.metrics.RecordStorageWriteFailure("enrollments")
		h.respondStorageError(c, "enroll", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "status": storage.RegistrationPending})
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// handleContact stores a contact form submission.
func (h *Handler) handleContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "contact", "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		h.respondError(c, http.StatusBadRequest, "contact", "name, email, and message are required")
		return
	}

	id, err := h.repo.SaveContactMessage(c.Request.Context(), storage.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	})
	if err != nil {
		h.metrics.RecordStorageWriteFailure("contact_messages")
		h.respondStorageError(c, "contact", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
