// Package main provides the institute site server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/itech-institute/itech-site-go/internal/catalog"
	"github.com/itech-institute/itech-site-go/internal/chatbot"
	"github.com/itech-institute/itech-site-go/internal/config"
	"github.com/itech-institute/itech-site-go/internal/logger"
	"github.com/itech-institute/itech-site-go/internal/metrics"
	"github.com/itech-institute/itech-site-go/internal/ratelimit"
	"github.com/itech-institute/itech-site-go/internal/recommend"
	"github.com/itech-institute/itech-site-go/internal/sentry"
	"github.com/itech-institute/itech-site-go/internal/storage"
	"github.com/itech-institute/itech-site-go/internal/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	log.Info("Starting institute site server")

	// Initialize error tracking (no-op without a DSN)
	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, error tracking disabled")
	} else if sentry.IsEnabled() {
		log.Info("Sentry error tracking enabled")
	}
	defer sentry.Flush(2 * time.Second)

	// Connect to database
	db, err := storage.New(cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer func() { _ = db.Close() }()
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	repo := storage.NewRepository(db)

	// Create Prometheus registry
	registry := prometheus.NewRegistry()

	// Register Go and process collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	// Create metrics
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Build the course recommendation engine over the static catalog
	engine, err := recommend.NewEngine(catalog.Courses())
	if err != nil {
		log.WithError(err).Fatal("Failed to build recommendation engine")
	}
	m.SetIndexDocuments(engine.IndexSize())
	log.WithField("courses", engine.IndexSize()).Info("Recommendation engine ready")

	// Create chatbot service
	matcher := chatbot.NewMatcher(catalog.Intents(), cfg.Chat.IntentThreshold)
	chatSessions := chatbot.NewSessionStore(cfg.SessionTTL, time.Hour)
	defer chatSessions.Stop()
	chatService := chatbot.NewService(matcher, engine, chatSessions, repo, log, m, cfg.Chat.RecommendationTop)
	log.Info("Chatbot service created")

	// Per-session rate limiter for the chat endpoint
	chatLimiter := ratelimit.NewPerKeyLimiter(ratelimit.PerKeyConfig{
		MaxTokens:     cfg.Chat.RateBurst,
		RefillRate:    cfg.Chat.RateRefillPerSec,
		CleanupPeriod: 10 * time.Minute,
	})
	chatLimiter.OnDrop(func() { m.RecordRateLimiterDrop("chat") })
	defer chatLimiter.Stop()

	// Staff sessions live in memory and expire with the configured TTL
	staffSessions := web.NewStaffSessionStore(cfg.SessionTTL)

	// Create API handler
	handler := web.New(web.Config{
		UploadDir:                 cfg.ProjectUploadDir(),
		MaxUploadBytes:            cfg.MaxUploadBytes,
		AdminRegistrationPassword: cfg.AdminRegistrationPassword,
		SecureCookies:             cfg.Environment == "production",
	}, log, m, repo, chatService, engine, chatLimiter, staffSessions)

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))

	// Setup routes
	setupRoutes(router, handler, db, engine, registry)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jobsDone := startJobs(ctx, repo, staffSessions, cfg, log)

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop background jobs
	cancel()
	select {
	case <-jobsDone:
		log.Info("Background jobs stopped")
	case <-time.After(5 * time.Second):
		log.Warn("Timeout waiting for background jobs to stop")
	}

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		log.WithError(err).Error("Failed to close database")
	}

	log.Info("Server stopped")
}
