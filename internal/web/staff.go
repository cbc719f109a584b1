package web

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type staffRegisterRequest struct {
	Username      string `json:"username"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Password      string `json:"password"`
	Email         string `json:"email"`
	AdminPassword string `json:"admin_password"`
}

// handleStaffRegister creates a staff account. Gated by the admin
// registration password from the environment.
func (h *Handler) handleStaffRegister(c *gin.Context) {
	var req staffRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "staff", "invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.AdminPassword), []byte(h.cfg.AdminRegistrationPassword)) != 1 {
		h.respondError(c, http.StatusForbidden, "staff", "invalid admin registration password")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.TrimSpace(req.Role)
	if req.Username == "" || req.Name == "" || req.Role == "" {
		h.respondError(c, http.StatusBadRequest, "staff", "username, name, and role are required")
		return
	}
	if len(req.Password) < 8 {
		h.respondError(c, http.StatusBadRequest, "staff", "password must be at least 8 characters")
		return
	}

	id, err := h.repo.CreateStaff(c.Request.Context(),
		req.Username, req.Name, req.Role, req.Password, strings.TrimSpace(req.Email))
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "username": req.Username})
}

type staffLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleStaffLogin authenticates a staff member and issues a session
// cookie.
func (h *Handler) handleStaffLogin(c *gin.Context) {
	var req staffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "staff", "invalid request body")
		return
	}

	ctx := c.Request.Context()
	staff, err := h.repo.AuthenticateStaff(ctx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}

	token := h.staffSessions.Create(staff.ID)
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(staffCookieName, token, 0, "/", "", h.cfg.SecureCookies, true)

	if err := h.repo.LogStaffActivity(ctx, staff.ID, "login", "signed in"); err != nil {
		h.log.WithError(err).Warn("failed to log staff activity")
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       staff.ID,
		"username": staff.Username,
		"name":     staff.Name,
		"role":     staff.Role,
	})
}

// handleStaffLogout drops the staff session.
func (h *Handler) handleStaffLogout(c *gin.Context) {
	if token, err := c.Cookie(staffCookieName); err == nil && token != "" {
		h.staffSessions.Delete(token)
	}
	c.SetCookie(staffCookieName, "", -1, "/", "", h.cfg.SecureCookies, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleStaffDashboard aggregates site activity for the staff overview.
func (h *Handler) handleStaffDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	staff, err := h.repo.StaffByID(ctx, staffID(c))
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}

	enrollments, err := h.repo.CountEnrollments(ctx)
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}
	students, err := h.repo.CountUniqueStudents(ctx)
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}
	projects, err := h.repo.CountProjects(ctx)
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}
	contacts, err := h.repo.CountContactMessages(ctx)
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}
	eventStats, err := h.repo.EventRegistrationStats(ctx)
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}

	recentProjects, err := h.repo.RecentProjects(ctx, 5)
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}
	recentEnrollments, err := h.repo.RecentEnrollments(ctx, 5)
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}
	recentActivity, err := h.repo.RecentStaffActivity(ctx, 10)
	if err != nil {
		h.respondStorageError(c, "staff", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff": staff,
		"counts": gin.H{
			"enrollments":      enrollments,
			"unique_students":  students,
			"projects":         projects,
			"contact_messages": contacts,
			"registrations":    eventStats,
		},
		"recent_projects":    recentProjects,
		"recent_enrollments": recentEnrollments,
		"recent_activity":    recentActivity,
	})
}
