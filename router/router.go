// Package router wires middleware and routes into the gin engine.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wanderai/wanderai-backend/config"
	"github.com/wanderai/wanderai-backend/handlers"
	"github.com/wanderai/wanderai-backend/middleware"
	"github.com/wanderai/wanderai-backend/services"
)

// Dependencies holds everything the router needs to mount the API surface.
type Dependencies struct {
	Config      *config.Config
	Auth        *services.AuthService
	Itineraries *handlers.ItineraryHandler
	AuthHandler *handlers.AuthHandler
	Health      *handlers.HealthHandler
}

// New builds the engine with the full middleware chain and route table.
func New(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(corsMiddleware(deps.Config))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	r.GET("/health", deps.Health.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/signup", deps.AuthHandler.Signup)
			auth.GET("/verify", middleware.RequireAuth(deps.Auth), deps.AuthHandler.Verify)
			auth.GET("/users", middleware.RequireAuth(deps.Auth), middleware.RequireAdmin(), deps.AuthHandler.ListUsers)
		}

		protected := v1.Group("")
		protected.Use(middleware.RequireAuth(deps.Auth))
		{
			protected.POST("/itinerary/generate", deps.Itineraries.Generate)
			protected.GET("/city/:city", deps.Itineraries.CityInfo)
			protected.GET("/config", middleware.RequireAdmin(), deps.Health.Config)
		}
	}

	return r
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	return cors.New(corsConfig)
}
