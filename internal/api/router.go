package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/findly-app/lostfound-api/internal/api/handler"
	"github.com/findly-app/lostfound-api/internal/api/middleware"
	"github.com/findly-app/lostfound-api/internal/core/service"
	mongodb "github.com/findly-app/lostfound-api/internal/infrastructure/db/mongo"
	redisdb "github.com/findly-app/lostfound-api/internal/infrastructure/db/redis"
	"github.com/findly-app/lostfound-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The sighting dispatcher is built in main because its worker lifecycle is
// tied to the process context.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	dispatcher handler.SightingDispatcher,
	tokens token.Maker,
	mapsAPIKey string,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("lostfound"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	profileCache := redisdb.NewProfileCache(rdb)

	authService := service.NewAuthService(userRepo, tokens, profileCache)
	itemService := service.NewItemService(itemRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	sightingHandler := handler.NewSightingHandler(dispatcher)
	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMiddleware)
	auth.PUT("/me", authHandler.UpdateMe, authMiddleware)
	auth.PUT("/change-password", authHandler.ChangePassword, authMiddleware)

	// --- Item routes ---
	// Single-item lookup and the nearby search stay public so anyone can
	// browse the map before signing in.
	e.GET("/api/items/nearby", itemHandler.Nearby)
	e.GET("/api/items/:id", itemHandler.Get)

	items := e.Group("/api/items", authMiddleware)
	items.POST("", itemHandler.Report)
	items.GET("", itemHandler.List)
	items.PUT("/:id/status", itemHandler.UpdateStatus)
	items.POST("/:id/sightings", sightingHandler.Receive)

	// --- Map rendering config (public; clients draw the map before login) ---
	mapHandler := handler.NewMapHandler(mapsAPIKey)
	e.GET("/api/map/config", mapHandler.Config)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", readyHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
