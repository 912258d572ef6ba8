package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aayushkuntal/piepay-server/internal/cache"
	"github.com/aayushkuntal/piepay-server/internal/config"
	"github.com/aayushkuntal/piepay-server/internal/database"
	"github.com/aayushkuntal/piepay-server/internal/handler"
	"github.com/aayushkuntal/piepay-server/internal/repository"
	"github.com/aayushkuntal/piepay-server/internal/router"
	"github.com/aayushkuntal/piepay-server/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting piepay API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Redis when configured, in-memory otherwise.
	var store cache.Cache
	if cfg.Cache.RedisEnabled {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			return fmt.Errorf("failed to initialize redis cache: %w", err)
		}
		defer redisCache.Close()
		store = redisCache
		logger.Info().Str("addr", cfg.Cache.RedisAddr).Msg("using redis cache")
	} else {
		store = cache.NewInMemoryCache()
		logger.Info().Msg("using in-memory cache (redis disabled)")
	}

	offerRepo := repository.NewOfferRepository(pool, logger)

	discountTTL := time.Duration(cfg.Cache.DiscountTTL) * time.Second
	offerService := service.NewOfferService(offerRepo, store, logger)
	discountService := service.NewDiscountService(offerRepo, store, discountTTL, logger)

	offerHandler := handler.NewOfferHandler(offerService, logger)
	discountHandler := handler.NewDiscountHandler(discountService, logger)

	mux := router.New(offerHandler, discountHandler, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
