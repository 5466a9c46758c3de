package main

// @title Scenic Tour API
// @version 1.0.0
// @description Сервис построения быстрых и живописных маршрутов.
// @description
// @description Основные возможности:
// @description - Быстрый маршрут через промежуточные точки в заданном порядке
// @description - Живописный маршрут через смотровые площадки, набережные и достопримечательности в пределах допуска по времени

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "github.com/scenic-tour/docs"
	"github.com/scenic-tour/internal/config"
	httpDelivery "github.com/scenic-tour/internal/delivery/http"
	"github.com/scenic-tour/internal/delivery/http/handler"
	"github.com/scenic-tour/internal/domain/repository"
	"github.com/scenic-tour/internal/infrastructure/google"
	"github.com/scenic-tour/internal/pkg/logger"
	"github.com/scenic-tour/internal/pkg/metrics"
	"github.com/scenic-tour/internal/repository/cache"
	"github.com/scenic-tour/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Scenic Tour service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 3. Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// 4. Mapping provider
	var gateway repository.RoutingGateway = google.NewClient(&cfg.Google, m, log)

	// 5. Optional Redis cache for place lookups
	var redisCheck handler.HealthChecker
	var redisClient *cache.Redis
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, running without cache", zap.Error(err))
			redisCheck = handler.UnavailableDependency(err)
		} else {
			cacheRepo := cache.NewCacheRepository(redisClient)
			redisCheck = cacheRepo
			gateway = cache.NewCachedGateway(gateway, cacheRepo, &cfg.Cache, log)
			log.Info("Place lookup cache enabled",
				zap.Duration("nearby_ttl", cfg.Cache.NearbyTTL),
				zap.Duration("details_ttl", cfg.Cache.DetailsTTL),
			)
		}
	}

	// 6. Initialize Use Cases
	collector, err := usecase.NewScenicCollector(gateway, &cfg.Scenic, log)
	if err != nil {
		log.Fatal("Invalid scenic configuration", zap.Error(err))
	}
	synthesizer := usecase.NewRouteSynthesizer(gateway, cfg.Scenic.MaxTrims, m, log)
	tourUC := usecase.NewTourUseCase(gateway, collector, synthesizer, cfg, m, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	tourHandler := handler.NewTourHandler(tourUC, cfg.Server.RequestTimeout, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"redis": redisCheck,
	}, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, tourHandler, healthHandler, registry)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
