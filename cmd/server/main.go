// Package main is the entry point for the lost-and-found API server. It reads
// configuration, wires the MongoDB and Redis adapters, starts the sighting
// worker pool, and serves HTTP until the process is signalled to stop.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/findly-app/lostfound-api/internal/api"
	"github.com/findly-app/lostfound-api/internal/core/service"
	"github.com/findly-app/lostfound-api/internal/infrastructure/config"
	mongodb "github.com/findly-app/lostfound-api/internal/infrastructure/db/mongo"
	redisdb "github.com/findly-app/lostfound-api/internal/infrastructure/db/redis"
	"github.com/findly-app/lostfound-api/internal/infrastructure/queue"
	"github.com/findly-app/lostfound-api/internal/pkg/token"
	"github.com/findly-app/lostfound-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		logger.Get().Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting lost-and-found API")

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}
	itemRepo := mongodb.NewItemRepository(db)
	if err := itemRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure item indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:    cfg.Redis.Addr,
		DB:      cfg.Redis.DB,
		Timeout: cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Sighting pipeline ---
	sightingRepo := mongodb.NewSightingRepository(db)
	dedup := redisdb.NewSightingDedup(rdb)
	sightingService := service.NewSightingService(itemRepo, sightingRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.SightingWorkers, sightingService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	tokens := token.NewJWTMaker(cfg.JWTSecret, cfg.TokenTTL)
	e := api.NewRouter(db, rdb, dispatcher, tokens, cfg.MapsAPIKey, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}
