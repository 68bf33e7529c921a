// Package server contains the HTTP handlers for the marketing-site API.
package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"northgate/internal/cache"
	"northgate/internal/config"
	"northgate/internal/database"
	"northgate/internal/demo"
	"northgate/internal/middleware"
	"northgate/internal/models"
	"northgate/internal/repository"
	"northgate/internal/seed"
	"northgate/internal/sheets"
)

const (
	jwtIssuer     = "northgate-api"
	jwtAudience   = "northgate-admin"
	adminTokenTTL = 12 * time.Hour
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config *config.Config
	db     *gorm.DB // nil in demo mode
	redis  *redis.Client

	contactRepo     repository.ContactRepository
	applicationRepo repository.ApplicationRepository
	getStartedRepo  repository.GetStartedRepository
	resumeRepo      repository.ResumeRepository
	newsletterRepo  repository.NewsletterRepository
	blogRepo        repository.BlogRepository
	jobRepo         repository.JobRepository

	sheets *sheets.Client

	// Demo-mode dependencies; all nil when a real database is configured.
	demoStore *demo.Store
	demoAuth  *demo.Auth
	objects   *demo.ObjectStore
}

// NewServer creates a server wired to either a real Postgres database or,
// when no DB_HOST is configured, the in-memory demo store.
func NewServer(cfg *config.Config) (*Server, error) {
	cache.InitRedis(cfg.RedisURL)

	s := &Server{
		config: cfg,
		redis:  cache.GetClient(),
		sheets: sheets.NewClient(cfg.SheetsSyncURL, cfg.SpreadsheetID),
	}

	if cfg.DemoMode() {
		middleware.Logger.Info("No database configured, running in demo mode")

		store := demo.NewStore()
		s.demoStore = store
		s.demoAuth = demo.NewAuth()
		s.objects = demo.NewObjectStore(cfg.PublicBaseURL)

		s.contactRepo = demo.NewContactRepo(store)
		s.applicationRepo = demo.NewApplicationRepo(store)
		s.getStartedRepo = demo.NewGetStartedRepo(store)
		s.resumeRepo = demo.NewResumeRepo(store)
		s.newsletterRepo = demo.NewNewsletterRepo(store)
		s.blogRepo = demo.NewBlogRepo(store)
		s.jobRepo = demo.NewJobRepo(store)

		if err := seed.DemoContent(context.Background(), s.blogRepo, s.jobRepo, s.contactRepo); err != nil {
			return nil, fmt.Errorf("seeding demo content: %w", err)
		}
		return s, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	s.db = db

	s.contactRepo = repository.NewContactRepository(db)
	s.applicationRepo = repository.NewApplicationRepository(db)
	s.getStartedRepo = repository.NewGetStartedRepository(db)
	s.resumeRepo = repository.NewResumeRepository(db)
	s.newsletterRepo = repository.NewNewsletterRepository(db)
	s.blogRepo = repository.NewBlogRepository(db)
	s.jobRepo = repository.NewJobRepository(db)

	return s, nil
}

// Deps bundles the injectable dependencies for NewServerWithDeps.
type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Sheets *sheets.Client

	ContactRepo     repository.ContactRepository
	ApplicationRepo repository.ApplicationRepository
	GetStartedRepo  repository.GetStartedRepository
	ResumeRepo      repository.ResumeRepository
	NewsletterRepo  repository.NewsletterRepository
	BlogRepo        repository.BlogRepository
	JobRepo         repository.JobRepository

	DemoStore *demo.Store
	DemoAuth  *demo.Auth
	Objects   *demo.ObjectStore
}

// NewServerWithDeps creates a server with explicit dependencies. Intended for tests.
func NewServerWithDeps(cfg *config.Config, deps Deps) *Server {
	return &Server{
		config:          cfg,
		db:              deps.DB,
		redis:           deps.Redis,
		sheets:          deps.Sheets,
		contactRepo:     deps.ContactRepo,
		applicationRepo: deps.ApplicationRepo,
		getStartedRepo:  deps.GetStartedRepo,
		resumeRepo:      deps.ResumeRepo,
		newsletterRepo:  deps.NewsletterRepo,
		blogRepo:        deps.BlogRepo,
		jobRepo:         deps.JobRepo,
		demoStore:       deps.DemoStore,
		demoAuth:        deps.DemoAuth,
		objects:         deps.Objects,
	}
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.WarnContext(ctx, "Redis close error", "error", err)
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())
	app.Use(middleware.TracingMiddleware())

	prom := middleware.InitMetrics("northgate")
	prom.RegisterAt(app, "/metrics")
	app.Use(middleware.MetricsMiddleware(prom))

	// Global rate limit (per IP); form endpoints have tighter Redis-backed limits.
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.Liveness)
	app.Get("/health/ready", s.Readiness)

	// Uploaded files are served straight from disk; demo mode only pretends
	// to store objects, so there is nothing to serve there.
	if !s.config.DemoMode() {
		app.Static("/uploads", s.config.UploadDir)
	}

	api := app.Group("/api")

	api.Get("/monitor", monitor.New(monitor.Config{
		Title: "Northgate Backend Metrics",
	}))

	// Public form submissions
	api.Post("/contacts", middleware.RateLimit(s.redis, 5, time.Minute, "contact_form"), s.SubmitContact)
	api.Post("/applications", middleware.RateLimit(s.redis, 5, time.Minute, "application_form"), s.SubmitApplication)
	api.Post("/get-started", middleware.RateLimit(s.redis, 5, time.Minute, "get_started_form"), s.SubmitGetStarted)
	api.Post("/resumes", middleware.RateLimit(s.redis, 5, time.Minute, "resume_form"), s.SubmitResume)
	api.Post("/newsletter", middleware.RateLimit(s.redis, 10, time.Minute, "newsletter_form"), s.SubscribeNewsletter)

	// File uploads
	api.Post("/upload/resume", middleware.RateLimit(s.redis, 10, time.Minute, "upload_resume"), s.UploadResume)
	api.Post("/upload/image", middleware.RateLimit(s.redis, 10, time.Minute, "upload_image"), s.UploadImage)

	// Public content
	blogs := api.Group("/blogs")
	blogs.Get("/", s.GetBlogs)
	blogs.Get("/:id", s.GetBlog)

	jobs := api.Group("/jobs")
	jobs.Get("/", s.GetJobs)
	jobs.Get("/:id", s.GetJob)

	// Demo-mode auth surface
	auth := api.Group("/auth")
	auth.Get("/session", s.AuthSession)
	auth.Post("/signup", middleware.RateLimit(s.redis, 3, 10*time.Minute, "signup"), s.AuthSignUp)
	auth.Post("/signin", middleware.RateLimit(s.redis, 10, 5*time.Minute, "signin"), s.AuthSignIn)
	auth.Post("/oauth", s.AuthOAuth)
	auth.Post("/signout", s.AuthSignOut)

	// Admin
	api.Post("/admin/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "admin_login"), s.AdminLogin)

	admin := api.Group("/admin", s.AdminRequired())
	admin.Get("/contacts", s.AdminListContacts)
	admin.Get("/applications", s.AdminListApplications)
	admin.Get("/get-started", s.AdminListGetStarted)
	admin.Get("/resumes", s.AdminListResumes)
	admin.Get("/newsletter", s.AdminListNewsletter)
	admin.Patch("/applications/:id/status", s.UpdateApplicationStatus)
	admin.Get("/sync/status", s.SyncStatus)
	admin.Get("/export/all.xlsx", s.ExportAllExcel)
	admin.Get("/export/:tab.csv", s.ExportCSV)
	admin.Get("/export/:tab.xlsx", s.ExportExcel)

	// Admin-gated content writes
	blogsAdmin := api.Group("/blogs", s.AdminRequired())
	blogsAdmin.Post("/", s.CreateBlog)
	blogsAdmin.Put("/:id", s.UpdateBlog)
	blogsAdmin.Delete("/:id", s.DeleteBlog)

	jobsAdmin := api.Group("/jobs", s.AdminRequired())
	jobsAdmin.Post("/", s.CreateJob)
	jobsAdmin.Put("/:id", s.UpdateJob)
	jobsAdmin.Patch("/:id/status", s.UpdateJobStatus)
	jobsAdmin.Delete("/:id", s.DeleteJob)

	// Sheet sync test surface for the admin dashboard
	sync := api.Group("/sync", s.AdminRequired())
	sync.Get("/status", s.SyncStatus)
	sync.Post("/contact", s.SyncTestContact)
	sync.Post("/job-application", s.SyncTestApplication)
	sync.Post("/get-started", s.SyncTestGetStarted)
	sync.Post("/resume-upload", s.SyncTestResume)
	sync.Post("/newsletter", s.SyncTestNewsletter)
}

// Liveness reports that the process is up.
func (s *Server) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
		"time":   time.Now(),
	})
}

// Readiness checks the database and Redis. Demo mode has no database and
// reports it as such without failing the check.
func (s *Server) Readiness(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "demo"
	if s.db != nil {
		dbStatus = "healthy"
		sqlDB, err := s.db.DB()
		if err != nil {
			dbStatus = "unhealthy"
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbStatus = "unhealthy"
		}
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": "ready",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AdminRequired returns middleware that validates the admin session token.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}
		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != jwtIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != jwtAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		return c.Next()
	}
}
