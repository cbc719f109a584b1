// Package web exposes the site's HTTP API: chat, course catalog,
// enrollment and contact forms, the student project showcase, event
// registrations, and the staff dashboard.
package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itech-institute/itech-site-go/internal/chatbot"
	apperrors "github.com/itech-institute/itech-site-go/internal/errors"
	"github.com/itech-institute/itech-site-go/internal/logger"
	"github.com/itech-institute/itech-site-go/internal/metrics"
	"github.com/itech-institute/itech-site-go/internal/ratelimit"
	"github.com/itech-institute/itech-site-go/internal/recommend"
	"github.com/itech-institute/itech-site-go/internal/storage"
)

// Config holds handler settings that come from the environment.
type Config struct {
	UploadDir                 string
	MaxUploadBytes            int64
	AdminRegistrationPassword string
	SecureCookies             bool
}

// Handler serves the JSON API.
type Handler struct {
	cfg           Config
	log           *logger.Logger
	metrics       *metrics.Metrics
	repo          *storage.Repository
	chat          *chatbot.Service
	engine        *recommend.Engine
	chatLimiter   *ratelimit.PerKeyLimiter
	staffSessions *StaffSessionStore
}

// New wires the API handler together.
func New(
	cfg Config,
	log *logger.Logger,
	m *metrics.Metrics,
	repo *storage.Repository,
	chat *chatbot.Service,
	engine *recommend.Engine,
	chatLimiter *ratelimit.PerKeyLimiter,
	staffSessions *StaffSessionStore,
) *Handler {
	return &Handler{
		cfg:           cfg,
		log:           log.WithModule("web"),
		metrics:       m,
		repo:          repo,
		chat:          chat,
		engine:        engine,
		chatLimiter:   chatLimiter,
		staffSessions: staffSessions,
	}
}

// RegisterRoutes attaches all API routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(h.sessionMiddleware())

	api.POST("/chat", h.handleChat)
	api.GET("/chat/history", h.handleChatHistory)

	api.GET("/courses", h.handleListCourses)
	api.GET("/courses/:id", h.handleCourseByID)
	api.GET("/courses/:id/similar", h.handleSimilarCourses)

	api.POST("/enroll", h.handleEnroll)
	api.POST("/contact", h.handleContact)

	api.GET("/projects", h.handleListProjects)
	api.GET("/projects/:id", h.handleProjectByID)
	api.POST("/projects", h.handleCreateProject)
	api.POST("/projects/:id/like", h.handleLikeProject)
	api.POST("/projects/:id/share", h.handleShareProject)
	api.DELETE("/projects/:id", h.handleDeleteProject)

	api.POST("/events/register", h.handleEventRegister)

	api.POST("/staff/register", h.handleStaffRegister)
	api.POST("/staff/login", h.handleStaffLogin)
	api.POST("/staff/logout", h.handleStaffLogout)

	staff := api.Group("")
	staff.Use(h.staffAuthMiddleware())
	staff.GET("/staff/dashboard", h.handleStaffDashboard)
	staff.GET("/events/registrations", h.handleEventRegistrations)
	staff.POST("/events/registrations/:id/status", h.handleEventRegistrationStatus)
	staff.GET("/events/stats", h.handleEventStats)
	staff.DELETE("/events/registrations", h.handleClearEventRegistrations)

	router.Static("/uploads/projects", h.cfg.UploadDir)
}

// respondError writes a JSON error body and records the error metric.
func (h *Handler) respondError(c *gin.Context, status int, module, message string) {
	h.metrics.RecordHTTPError(errorType(status), module)
	c.JSON(status, gin.H{"error": message})
}

// respondStorageError maps repository errors to HTTP statuses.
func (h *Handler) respondStorageError(c *gin.Context, module string, err error) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		h.respondError(c, http.StatusNotFound, module, "not found")
	case errors.Is(err, apperrors.ErrDuplicate):
		h.respondError(c, http.StatusConflict, module, "already exists")
	case errors.Is(err, apperrors.ErrWrongPassword):
		h.respondError(c, http.StatusForbidden, module, "wrong password")
	case errors.Is(err, apperrors.ErrUnauthorized):
		h.respondError(c, http.StatusUnauthorized, module, "unauthorized")
	case errors.As(err, &validationErr):
		h.respondError(c, http.StatusBadRequest, module, validationErr.Error())
	default:
		h.log.WithError(err).WithField("module", module).Error("request failed")
		h.respondError(c, http.StatusInternalServerError, module, "internal error")
	}
}

func errorType(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusUnauthorized:
		return "unauthorized"
	case status == http.StatusForbidden:
		return "forbidden"
	case status == http.StatusConflict:
		return "conflict"
	case status == http.StatusTooManyRequests:
		return "rate_limited"
	case status >= 500:
		return "internal"
	default:
		return "bad_request"
	}
}
