package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freelancehub/client-portal/internal/api"
	"github.com/freelancehub/client-portal/internal/core/ports"
	"github.com/freelancehub/client-portal/internal/infrastructure/config"
	"github.com/freelancehub/client-portal/internal/infrastructure/db/memory"
	mongodb "github.com/freelancehub/client-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/freelancehub/client-portal/internal/infrastructure/db/redis"
	"github.com/freelancehub/client-portal/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := api.Deps{Logger: log}

	// Backend selection happens once, at startup: MongoDB when a URI is
	// configured, otherwise the process-lifetime in-memory store.
	var store ports.Store
	if cfg.Mongo.URI != "" {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		mongoStore := mongodb.NewStore(db)
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}
		store = mongoStore
		deps.Mongo = db
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb store")
	} else {
		memStore := memory.NewStore()
		if cfg.SeedDemo {
			if err := memStore.Seed(ctx); err != nil {
				log.Fatal().Err(err).Msg("demo seed failed")
			}
			log.Info().Msg("demo fixtures loaded")
		}
		store = memStore
		log.Warn().Msg("no MONGO_URI set, using in-memory store (data is process-lifetime only)")
	}
	deps.Store = store

	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()

		deps.Redis = rdb
		deps.Cache = redisdb.NewStatsCache(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("stats cache enabled")
	}

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
