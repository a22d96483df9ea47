package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"freight-cost/internal/core/cache"
	"freight-cost/internal/core/config"
	"freight-cost/internal/core/logger"
	"freight-cost/internal/core/server"
	cityadapter "freight-cost/internal/features/cities/adapters"
	cityhandler "freight-cost/internal/features/cities/handler"
	cityports "freight-cost/internal/features/cities/ports"
	cityservice "freight-cost/internal/features/cities/service"
	costhandler "freight-cost/internal/features/costmodel/handler"
	costservice "freight-cost/internal/features/costmodel/service"
	distancehandler "freight-cost/internal/features/distance/handler"
	distanceservice "freight-cost/internal/features/distance/service"
	quotehandler "freight-cost/internal/features/quotes/handler"
	quoteservice "freight-cost/internal/features/quotes/service"
	scenarioadapter "freight-cost/internal/features/scenarios/adapters"
	scenariohandler "freight-cost/internal/features/scenarios/handler"
	scenarioservice "freight-cost/internal/features/scenarios/service"

	"go.uber.org/zap"
)

const (
	cacheKeyPrefix  = "freight:"
	shutdownTimeout = 10 * time.Second
)

// @title Freight Cost API
// @version 1.0
// @description Multi-modal freight cost estimation: great-circle distances between cities and per-mode fuel, carbon and time penalty costs.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("city_store", cfg.Storage.CityStore),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Redis and run Health Check
	redisCache, err := cache.NewRedisAdapter(cfg.Storage.RedisURL, cacheKeyPrefix)
	if err != nil {
		l.Fatal("Failed to create Redis client", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize City Repository
	var cityRepo cityports.CityRepository
	switch cfg.Storage.CityStore {
	case config.CityStoreSQLite:
		sqliteRepo, err := cityadapter.OpenSQLiteCityRepository(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			l.Fatal("Failed to open SQLite city store", zap.String("path", cfg.Storage.SQLitePath), zap.Error(err))
		}
		defer sqliteRepo.Close()
		cityRepo = sqliteRepo
	default:
		cityRepo = cityadapter.NewRedisCityRepository(redisCache)
	}

	// Initialize Services
	citySvc := cityservice.NewCityService(cityRepo)

	matrixSvc, err := distanceservice.NewMatrixService(citySvc, cfg.Engine.MatrixCacheSize)
	if err != nil {
		l.Fatal("Failed to create matrix service", zap.Error(err))
	}

	scenarioSvc := scenarioservice.NewScenarioService(
		scenarioadapter.NewRedisScenarioRepository(redisCache),
		cfg.Storage.ScenarioTTLSeconds,
	)

	costSvc, err := costservice.NewCostService(costservice.ParametersFromConfig(cfg.CostModel), scenarioSvc)
	if err != nil {
		l.Fatal("Invalid cost model configuration", zap.Error(err))
	}

	quoteSvc := quoteservice.NewQuoteService(matrixSvc, costSvc, cfg.Engine.QuoteBatchConcurrency, cfg.Engine.QuoteBatchMaxItems)

	// Initialize Handlers
	cityHdl := cityhandler.NewCityHandler(citySvc)
	distanceHdl := distancehandler.NewDistanceHandler(matrixSvc)
	costHdl := costhandler.NewCostHandler(costSvc)
	scenarioHdl := scenariohandler.NewScenarioHandler(scenarioSvc)
	quoteHdl := quotehandler.NewQuoteHandler(quoteSvc)

	srv := server.New(cfg, map[string]server.Pinger{"redis": redisCache})

	// Register Routes
	srv.App.Get("/modes", costHdl.GetModes)
	srv.App.Get("/costs", costHdl.GetCosts)

	srv.App.Put("/cities", cityHdl.ReplaceCities)
	srv.App.Get("/cities", cityHdl.ListCities)
	srv.App.Get("/cities/:id", cityHdl.GetCity)

	srv.App.Get("/distances", distanceHdl.GetMatrix)
	srv.App.Get("/distances/:origin/:destination", distanceHdl.GetPair)

	srv.App.Get("/quotes", quoteHdl.GetQuote)
	srv.App.Post("/quotes/batch", quoteHdl.BatchQuotes)

	srv.App.Put("/scenarios/:name", scenarioHdl.SaveScenario)
	srv.App.Get("/scenarios/:name", scenarioHdl.GetScenario)
	srv.App.Delete("/scenarios/:name", scenarioHdl.RemoveScenario)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	case <-ctx.Done():
		l.Info("Shutting down")
		if err := srv.Shutdown(shutdownTimeout); err != nil {
			l.Error("Graceful shutdown failed", zap.Error(err))
		}
	}
}
