package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Levezze/e-commerce-rest-api/internal/api"
	"github.com/Levezze/e-commerce-rest-api/internal/infrastructure/config"
	"github.com/Levezze/e-commerce-rest-api/internal/infrastructure/db/postgres"
	"github.com/Levezze/e-commerce-rest-api/internal/infrastructure/db/redis"
	"github.com/Levezze/e-commerce-rest-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Configuration failures (including a missing JWT_SECRET) are fatal
		// before any logger exists.
		log.Fatalf("load config: %v", err)
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		log.Fatalf("JWT_SECRET must not be empty")
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	pool, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to initialize postgres")
	}
	defer pool.Close()

	rdb, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to initialize redis")
	}
	defer rdb.Close()

	e := api.NewRouter(pool, rdb, cfg.JWTSecret, logg, cfg.Production())

	go func() {
		logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}
