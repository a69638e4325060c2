package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/courseify/course-api/internal/api"
	mongodb "github.com/courseify/course-api/internal/infrastructure/db/mongo"
	redisdb "github.com/courseify/course-api/internal/infrastructure/db/redis"
	"github.com/courseify/course-api/internal/pkg/config"
	"github.com/courseify/course-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// An unreachable database is logged, not fatal: individual requests fail
	// and the readiness probe reports the outage until it recovers.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("mongodb unreachable at startup")
	} else {
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")
	}
	defer func() {
		if client != nil {
			_ = client.Disconnect(ctx)
		}
	}()

	if db != nil {
		if err := mongodb.NewAccountRepository(db).EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure account indexes")
		}
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unreachable, catalog cache disabled")
	}
	defer func() {
		if rdb != nil {
			_ = rdb.Close()
		}
	}()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("shutdown complete")
}
