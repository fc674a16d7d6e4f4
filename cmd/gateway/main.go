package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shopmesh/platform/internal/gateway"
	"github.com/shopmesh/platform/internal/infrastructure/config"
	"github.com/shopmesh/platform/pkg/logger"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()
	cfg := config.LoadGateway()

	log := logger.Init(logger.Options{
		Service: "api-gateway",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	e := gateway.NewRouter(cfg, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("users_backend", cfg.UsersServiceURL).
			Str("products_backend", cfg.ProductsServiceURL).
			Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("gateway stopped")
}
