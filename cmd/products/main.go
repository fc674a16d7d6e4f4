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

	"github.com/shopmesh/platform/internal/api"
	"github.com/shopmesh/platform/internal/infrastructure/config"
	"github.com/shopmesh/platform/pkg/logger"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()
	cfg := config.LoadService("3002")

	log := logger.Init(logger.Options{
		Service: "products-service",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	e := api.NewProductsRouter(log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("products service listening")
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
	log.Info().Msg("products service stopped")
}
