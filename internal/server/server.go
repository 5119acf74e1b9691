// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"postdeck/internal/blob"
	"postdeck/internal/cache"
	"postdeck/internal/config"
	"postdeck/internal/middleware"
	"postdeck/internal/models"
	"postdeck/internal/notifications"
	"postdeck/internal/repository"
	"postdeck/internal/seed"
	"postdeck/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          blob.Store
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc

	postRepo     repository.PostRepository
	platformRepo repository.PlatformRepository

	notifier *notifications.Notifier
	hub      *notifications.Hub
	events   notifications.Broadcaster

	postService      *service.PostService
	platformService  *service.PlatformService
	inboxService     *service.InboxService
	analyticsService *service.AnalyticsService
}

// NewServer creates a new server instance with all dependencies derived from
// the configuration. The blob store backend is selected by STORE_BACKEND.
func NewServer(cfg *config.Config) (*Server, error) {
	var redisClient *redis.Client
	if cfg.StoreBackend == config.StoreRedis || cfg.RedisURL != "" {
		cache.InitRedis(cfg.RedisURL)
		redisClient = cache.GetClient()
	}

	store, err := newStore(cfg, redisClient)
	if err != nil {
		return nil, err
	}

	return NewServerWithDeps(cfg, store, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the store and Redis.
func NewServerWithDeps(cfg *config.Config, store blob.Store, redisClient *redis.Client) (*Server, error) {
	postRepo := repository.NewPostRepository(store, func() []*models.Post {
		return seed.Posts(time.Now())
	})
	platformRepo := repository.NewPlatformRepository(store, seed.Platforms)

	prom := middleware.InitMetrics("postdeck-api")

	server := &Server{
		config:         cfg,
		store:          store,
		redis:          redisClient,
		promMiddleware: prom,
		postRepo:       postRepo,
		platformRepo:   platformRepo,
		hub:            notifications.NewHub(),
	}

	server.notifier = notifications.NewNotifier(redisClient)
	server.events = notifications.NewPublisher(server.notifier, server.hub)

	server.postService = service.NewPostService(postRepo, platformRepo, server.events)
	server.platformService = service.NewPlatformService(platformRepo)
	server.inboxService = service.NewInboxService(seed.Messages(time.Now()))
	server.analyticsService = service.NewAnalyticsService()

	return server, nil
}

// newStore selects the blob store backend from configuration. When Redis is
// configured but unreachable the server degrades to an in-memory store so
// reads keep serving the seed collections.
func newStore(cfg *config.Config, redisClient *redis.Client) (blob.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		if redisClient == nil {
			slog.Warn("redis store unavailable, degrading to in-memory store")
			return blob.NewMemoryStore(), nil
		}
		return blob.NewRedisStore(redisClient, "postdeck"), nil
	case config.StoreFile:
		return blob.NewFileStore(cfg.DataDir)
	case config.StoreMemory:
		return blob.NewMemoryStore(), nil
	default:
		return nil, errors.New("unknown store backend: " + cfg.StoreBackend)
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Distributed tracing before context middleware so trace IDs are in locals
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Context Middleware to propagate request and trace IDs
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Postdeck Metrics Dashboard",
	}))

	// Post routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", middleware.RateLimit(
		s.redis, 30, time.Minute, "create_post"), s.CreatePost)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Post("/:id/publish", s.PublishPost)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", s.GetDashboardStats)
	dashboard.Get("/upcoming", s.GetUpcomingPosts)

	// Calendar routes
	api.Get("/calendar/day", s.GetCalendarDay)

	// Platform routes
	platforms := api.Group("/platforms")
	platforms.Get("/", s.GetPlatforms)
	platforms.Get("/summary", s.GetPlatformSummary)
	platforms.Post("/:id/toggle", s.TogglePlatform)

	// Inbox routes
	inbox := api.Group("/inbox")
	inbox.Get("/", s.GetMessages)
	inbox.Get("/unread-count", s.GetUnreadCount)
	inbox.Get("/breakdown", s.GetInboxBreakdown)
	inbox.Post("/:id/star", s.StarMessage)
	inbox.Post("/:id/read", s.ReadMessage)
	inbox.Post("/:id/archive", s.ArchiveMessage)
	inbox.Post("/:id/reply", s.ReplyToMessage)

	// Analytics routes
	api.Get("/analytics", s.GetAnalytics)

	// Websocket endpoint for dashboard refresh events
	ws := api.Group("/ws", s.WebsocketUpgradeRequired())
	ws.Get("/", s.WebsocketHandler())
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	storeStatus := "healthy"
	if _, err := s.store.Get(ctx, repository.PostsKey); err != nil && err != blob.ErrNotFound {
		// A missing blob is fine; reads fall back to seed data.
		storeStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis is optional; without it events stay in-process.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if storeStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Postdeck",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"store": storeStatus,
			"redis": redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	app := fiber.New(fiber.Config{
		AppName: "Postdeck API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.ErrorContext(c.UserContext(), "unhandled error", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	// Wire the hub to the Redis subscriber if available
	go func() {
		if err := s.hub.StartWiring(s.shutdownCtx, s.notifier); err != nil {
			slog.Error("failed to start hub wiring", "error", err)
		}
	}()

	slog.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Cancel the server-scoped context to stop all wiring goroutines
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	// Shutdown the HTTP/WS server
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			slog.Error("error shutting down HTTP server", "error", err)
		}
	}

	// Close WebSocket connections gracefully
	if s.hub != nil {
		if err := s.hub.Shutdown(ctx); err != nil {
			slog.Error("error shutting down hub", "error", err)
		}
	}

	// Close Redis connection
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			slog.Error("error closing redis", "error", rerr)
		}
	}

	slog.Info("server shutdown complete")
	return nil
}
