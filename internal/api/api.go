package api

import (
	"log"
	"log/slog"
	"strings"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/transcript-service/internal/api/middleware"
	"github.com/ethanbaker/transcript-service/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	health_module "github.com/ethanbaker/transcript-service/internal/api/modules/health"
	transcript_module "github.com/ethanbaker/transcript-service/internal/api/modules/transcript"
)

// NewEngine builds the gin engine with all middleware and modules attached
func NewEngine(cfg *utils.Config) (*gin.Engine, error) {
	// Add app level settings/routes
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(slog.Default()))
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes mount at the root so clients hit /health and /transcript directly
	baseGroup := &engine.RouterGroup

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)

	transcript_module.RegisterRoutes(baseGroup)
	if err := transcript_module.Init(cfg); err != nil {
		return nil, err
	}

	return engine, nil
}

// Start builds the engine and serves it until the process exits
func Start(cfg *utils.Config) {
	engine, err := NewEngine(cfg)
	if err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize API: ", err)
	}

	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8000")

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}
