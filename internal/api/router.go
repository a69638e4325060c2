package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/courseify/course-api/internal/api/handler"
	"github.com/courseify/course-api/internal/api/middleware"
	"github.com/courseify/course-api/internal/core/domain"
	"github.com/courseify/course-api/internal/core/service"
	mongodb "github.com/courseify/course-api/internal/infrastructure/db/mongo"
	redisdb "github.com/courseify/course-api/internal/infrastructure/db/redis"
	"github.com/courseify/course-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when Redis was unreachable at startup; the catalog is then
// served uncached and readiness reports the outage.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("courseify"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)

	var cache service.CatalogCache
	if rdb != nil {
		cache = redisdb.NewCatalogCache(rdb, cfg.CatalogCacheTTL)
	}

	tokens := service.NewTokenAuthority(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accountRepo, tokens, log)
	catalogService := service.NewCatalogService(courseRepo, cache, log)
	purchaseService := service.NewPurchaseService(accountRepo, courseRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(catalogService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)

	authn := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	userOnly := middleware.RBAC(domain.RoleUser)

	// --- Admin routes ---
	admin := e.Group("/admin")
	admin.POST("/signup", authHandler.AdminSignup)
	admin.POST("/login", authHandler.AdminLogin)
	admin.POST("/courses", courseHandler.Create, authn, adminOnly)
	admin.PUT("/courses/:courseId", courseHandler.Update, authn, adminOnly)
	admin.GET("/courses", courseHandler.ListAll, authn, adminOnly)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/signup", authHandler.UserSignup)
	users.POST("/login", authHandler.UserLogin)
	users.GET("/courses", courseHandler.ListPublished, authn, userOnly)
	users.POST("/courses/:courseId", purchaseHandler.Purchase, authn, userOnly)
	users.GET("/purchasedCourses", purchaseHandler.ListPurchased, authn, userOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
