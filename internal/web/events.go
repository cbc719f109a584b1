package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itech-institute/itech-site-go/internal/storage"
)

type eventRegisterRequest struct {
	EventName           string `json:"event_name"`
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	ExperienceLevel     string `json:"experience_level"`
	SpecialRequirements string `json:"special_requirements"`
}

// handleEventRegister registers a visitor for an event. One
// registration per email per event.
func (h *Handler) handleEventRegister(c *gin.Context) {
	var req eventRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "events", "invalid request body")
		return
	}

	req.EventName = strings.TrimSpace(req.EventName)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.EventName == "" || req.FullName == "" || req.Email == "" || req.Phone == "" {
		h.respondError(c, http.StatusBadRequest, "events",
			"event_name, full_name, email, and phone are required")
		return
	}

	id, err := h.repo.CreateEventRegistration(c.Request.Context(), storage.EventRegistration{
		EventName:           req.EventName,
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		ExperienceLevel:     strings.TrimSpace(req.ExperienceLevel),
		SpecialRequirements: strings.TrimSpace(req.SpecialRequirements),
	})
	if err != nil {
		h.respondStorageError(c, "events", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "status": storage.RegistrationPending})
}

// handleEventRegistrations lists registrations for staff review.
func (h *Handler) handleEventRegistrations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.respondError(c, http.StatusBadRequest, "events", "invalid limit")
			return
		}
		limit = parsed
	}

	registrations, err := h.repo.EventRegistrations(c.Request.Context(), limit)
	if err != nil {
		h.respondStorageError(c, "events", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": registrations})
}

type registrationStatusRequest struct {
	Status string `json:"status"`
}

// handleEventRegistrationStatus moves a registration through the
// approval workflow and logs the staff action.
func (h *Handler) handleEventRegistrationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.respondError(c, http.StatusBadRequest, "events", "invalid registration id")
		return
	}

	var req registrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "events", "invalid request body")
		return
	}

	ctx := c.Request.Context()
	actingStaff := staffID(c)
	if err := h.repo.UpdateEventRegistrationStatus(ctx, id, req.Status, actingStaff); err != nil {
		h.respondStorageError(c, "events", err)
		return
	}

	if err := h.repo.LogStaffActivity(ctx, actingStaff, "registration_"+req.Status,
		"event registration #"+strconv.FormatInt(id, 10)); err != nil {
		h.log.WithError(err).Warn("failed to log staff activity")
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// handleEventStats returns registration totals for the dashboard.
func (h *Handler) handleEventStats(c *gin.Context) {
	stats, err := h.repo.EventRegistrationStats(c.Request.Context())
	if err != nil {
		h.respondStorageError(c, "events", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// handleClearEventRegistrations wipes all registrations. Manual staff
// operation, logged against the acting account.
func (h *Handler) handleClearEventRegistrations(c *gin.Context) {
	ctx := c.Request.Context()
	removed, err := h.repo.ClearEventRegistrations(ctx)
	if err != nil {
		h.respondStorageError(c, "events", err)
		return
	}

	if err := h.repo.LogStaffActivity(ctx, staffID(c), "registrations_cleared",
		strconv.FormatInt(removed, 10)+" registrations removed"); err != nil {
		h.log.WithError(err).Warn("failed to log staff activity")
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
