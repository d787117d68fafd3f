// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"chesnokuz/internal/cache"
	"chesnokuz/internal/config"
	"chesnokuz/internal/database"
	"chesnokuz/internal/middleware"
	"chesnokuz/internal/repository"
	"chesnokuz/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	categoryRepo   repository.CategoryRepository
	tagRepo        repository.TagRepository
	mediaRepo      repository.MediaRepository
	commentRepo    repository.CommentRepository
	professionRepo repository.ProfessionRepository
	searchRepo     repository.SearchRepository
	engagementRepo repository.EngagementRepository

	userService       *service.UserService
	postService       *service.PostService
	categoryService   *service.CategoryService
	tagService        *service.TagService
	mediaService      *service.MediaService
	commentService    *service.CommentService
	engagementService *service.EngagementService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("chesnokuz-api"),
		userRepo:       repository.NewUserRepository(db),
		postRepo:       repository.NewPostRepository(db),
		categoryRepo:   repository.NewCategoryRepository(db),
		tagRepo:        repository.NewTagRepository(db),
		mediaRepo:      repository.NewMediaRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		professionRepo: repository.NewProfessionRepository(db),
		searchRepo:     repository.NewSearchRepository(db),
		engagementRepo: repository.NewEngagementRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo, server.professionRepo, server.searchRepo)
	server.postService = service.NewPostService(server.postRepo, server.userRepo, server.categoryRepo)
	server.categoryService = service.NewCategoryService(server.categoryRepo)
	server.tagService = service.NewTagService(server.tagRepo)
	server.mediaService = service.NewMediaService(server.mediaRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.postRepo, server.userRepo)
	server.engagementService = service.NewEngagementService(server.engagementRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))

	// Global rate limiting (120 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
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
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Chesnokuz API Metrics Dashboard",
	}))

	// User routes. Literal segments go before the /:key catch-all so
	// "create" and "search" never resolve as lookup keys.
	users := app.Group("/users")
	users.Get("/", s.ListUsers)
	users.Get("/list/", s.ListUsers)
	users.Post("/create/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_user"), s.CreateUser)
	users.Put("/:id/", s.UpdateUser)
	users.Patch("/:id/", s.PatchUser)
	users.Delete("/:id/", s.DeleteUser)
	users.Get("/:key/", s.GetUser)

	// Post routes
	posts := app.Group("/posts")
	posts.Get("/", s.ListPosts)
	posts.Post("/create/", middleware.RateLimit(
		s.redis, 20, time.Minute, "create_post"), s.CreatePost)
	posts.Get("/author/:id/", s.ListPostsByAuthor)
	// Attachment routes before the generic /:id and /:slug routes.
	posts.Post("/:id/tags/:tagId/", s.AttachTag)
	posts.Delete("/:id/tags/:tagId/", s.DetachTag)
	posts.Post("/:id/media/:mediaId/", s.AttachMedia)
	posts.Delete("/:id/media/:mediaId/", s.DetachMedia)
	posts.Post("/:id/like/", s.LikePost)
	posts.Delete("/:id/like/", s.UnlikePost)
	posts.Get("/:id/comments/", s.ListComments)
	posts.Put("/:id/", s.UpdatePost)
	posts.Patch("/:id/", s.PatchPost)
	posts.Delete("/:id/", s.DeletePost)
	posts.Get("/:slug/", s.GetPost)

	// Comment routes
	comments := app.Group("/comments")
	comments.Post("/create/", middleware.RateLimit(
		s.redis, 30, time.Minute, "create_comment"), s.CreateComment)
	comments.Delete("/:id/", s.DeleteComment)

	// Category routes
	categories := app.Group("/categories")
	categories.Get("/list/", s.ListCategories)
	categories.Post("/create/", s.CreateCategory)
	categories.Put("/:id/", s.UpdateCategory)
	categories.Patch("/:id/", s.PatchCategory)
	categories.Delete("/:id/", s.DeleteCategory)
	categories.Get("/:slug/", s.GetCategory)

	// Tag routes
	tags := app.Group("/tag")
	tags.Get("/list/", s.ListTags)
	tags.Post("/create/", s.CreateTag)
	tags.Put("/:id/", s.UpdateTag)
	tags.Patch("/:id/", s.PatchTag)
	tags.Delete("/:id/", s.DeleteTag)
	tags.Get("/:slug/", s.GetTag)

	// Media routes
	media := app.Group("/media")
	media.Get("/list/", s.ListMedia)
	media.Post("/create/", s.CreateMedia)
	media.Get("/:id/", s.GetMedia)
	media.Post("/:id/", s.UpdateMedia)
	media.Delete("/:id/", s.DeleteMedia)

	// Profession routes
	professions := app.Group("/professions")
	professions.Get("/list/", s.ListProfessions)
	professions.Post("/create/", s.CreateProfession)

	// Search analytics
	app.Get("/search/terms/", s.ListSearchTerms)
}

// Shutdown releases server-held resources after the HTTP listener has
// stopped accepting requests.
func (s *Server) Shutdown(_ context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			return fmt.Errorf("closing sql DB: %w", cerr)
		}
	}
	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil {
			return fmt.Errorf("closing redis client: %w", cerr)
		}
	}
	return nil
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

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis is optional: the app degrades to uncached reads without it.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}
