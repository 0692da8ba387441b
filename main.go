package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wanderai/wanderai-backend/config"
	"github.com/wanderai/wanderai-backend/handlers"
	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/pkg/googlemaps"
	"github.com/wanderai/wanderai-backend/pkg/openrouter"
	"github.com/wanderai/wanderai-backend/router"
	"github.com/wanderai/wanderai-backend/services"
	"github.com/wanderai/wanderai-backend/store"
	"github.com/wanderai/wanderai-backend/store/memory"
	"github.com/wanderai/wanderai-backend/store/postgres"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	timeout := time.Duration(cfg.ExternalServices.TimeoutSeconds) * time.Second

	// User store backend
	var users store.UserStore
	switch cfg.UserStore {
	case config.UserStorePostgres:
		pgStore, err := postgres.NewUserStore(context.Background(), cfg.Database.URL())
		if err != nil {
			log.Fatalf("Failed to initialize postgres user store: %v", err)
		}
		defer pgStore.Close()
		users = pgStore
	default:
		users = memory.NewSeededUserStore()
	}

	// Optional place cache
	var cache *services.PlaceCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		cache = services.NewPlaceCache(redisClient, time.Duration(cfg.Redis.CacheTTLMinutes)*time.Minute)
	}

	// External providers; absent keys disable the tier, never the service.
	var mapsClient googlemaps.ClientInterface
	if cfg.ExternalServices.GoogleMapsKey != "" {
		mapsClient = googlemaps.NewClient(cfg.ExternalServices.GoogleMapsKey, cfg.ExternalServices.MapsBaseURL, timeout)
	}
	var aiClient openrouter.ClientInterface
	if cfg.ExternalServices.OpenRouterKey != "" {
		aiClient = openrouter.NewClient(
			cfg.ExternalServices.OpenRouterKey,
			cfg.ExternalServices.AIBaseURL,
			cfg.ExternalServices.AIModel,
			timeout,
		)
	}

	curated := services.DefaultCuratedDataset()
	placeProvider := services.NewTieredPlaceProvider(mapsClient, curated, cache)
	narrativeProvider := services.NewChatNarrativeProvider(aiClient)
	converter := services.NewCurrencyConverter(cfg.Currency.USDRate)
	allocator := services.NewBudgetAllocator(services.DefaultCostTables())

	itineraryService := services.NewItineraryService(
		placeProvider,
		narrativeProvider,
		allocator,
		converter,
		services.DefaultHotelTemplates(),
		nil,
	)
	authService := services.NewAuthService(
		users,
		cfg.Server.JwtSecretKey,
		time.Duration(cfg.Server.TokenExpiryHours)*time.Hour,
		nil,
	)
	healthService := services.NewHealthService(
		cfg.Server.Version,
		mapsClient != nil,
		aiClient != nil,
		users,
		cache,
		cfg.Redis.Enabled,
		nil,
	)

	engine := router.New(router.Dependencies{
		Config:      cfg,
		Auth:        authService,
		Itineraries: handlers.NewItineraryHandler(itineraryService, services.NewCityInfoService(curated)),
		AuthHandler: handlers.NewAuthHandler(authService),
		Health:      handlers.NewHealthHandler(healthService, cfg),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Forced shutdown: %v", err)
	}
}
