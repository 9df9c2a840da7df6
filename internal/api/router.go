package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Levezze/e-commerce-rest-api/internal/api/handler"
	"github.com/Levezze/e-commerce-rest-api/internal/api/middleware"
	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
	"github.com/Levezze/e-commerce-rest-api/internal/core/service"
	"github.com/Levezze/e-commerce-rest-api/internal/infrastructure/db/postgres"
	"github.com/Levezze/e-commerce-rest-api/internal/infrastructure/db/redis"
	"github.com/Levezze/e-commerce-rest-api/internal/infrastructure/http/handlers"
	"github.com/Levezze/e-commerce-rest-api/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, jwtSecret string, log zerolog.Logger, production bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, production)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	tokens := token.NewJWT(jwtSecret)
	limiter := redis.NewLoginLimiter(rdb)

	authService := service.NewAuthService(userRepo, tokens, limiter, log)
	userService := service.NewUserService(userRepo, log)
	itemService := service.NewItemService(itemRepo, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)

	requireAuth := middleware.Auth(tokens)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)
	requireCatalogRole := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)
	e.GET("/auth/me", authHandler.Me, requireAuth)
	e.PATCH("/auth/me", authHandler.UpdateMe, requireAuth)

	// --- Admin user management ---
	users := e.Group("/users", requireAuth, requireAdmin)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.DELETE("/:id", userHandler.Delete)

	// --- Catalog ---
	e.GET("/items", itemHandler.ListPublic)
	e.GET("/items/:id", itemHandler.GetPublic)

	items := e.Group("/items", requireAuth, requireCatalogRole)
	items.GET("/all", itemHandler.ListAll)
	items.POST("", itemHandler.Create)
	items.PUT("/:id", itemHandler.Update)
	items.DELETE("/:id", itemHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
