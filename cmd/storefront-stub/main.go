package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/observability"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/ratelimit"
	"github.com/RoyceAzure/lab/storefront/internal/stub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "storefront-stub",
	Short:        "In-memory storefront backend for local development",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger := observability.NewLogger("storefront-stub", observability.WithLevel(cf.LogLevel))
		return serve(cmd.Context(), cf, logger)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (.env or yaml)")
}

// newLimiter redis 模式下多個 stub 共用同一個 bucket, 回傳的 closer 負責關閉連線
func newLimiter(cf *config.Config) (ratelimit.ILimiter, func() error) {
	limiterConfig := &ratelimit.LimiterConfig{
		Capacity:     cf.StubRateCapacity,
		RefillAmount: 1,
		RefillRate:   cf.StubRateRefill,
	}
	if cf.StubRateBackend != "redis" {
		return ratelimit.NewTokenBucket(limiterConfig), func() error { return nil }
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cf.RedisAddr,
		Password: cf.RedisPassword,
		DB:       cf.RedisDB,
	})
	return ratelimit.NewRedisTokenBucket(client, limiterConfig), client.Close
}

func buildHandler(cf *config.Config, logger zerolog.Logger, limiter ratelimit.ILimiter) (http.Handler, error) {
	seed := stub.DefaultSeed()
	if cf.StubSeedFile != "" {
		var err error
		if seed, err = stub.LoadSeed(cf.StubSeedFile); err != nil {
			return nil, err
		}
	}
	store, err := stub.NewStore(seed)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return stub.NewRouter(store,
		stub.WithLogger(logger),
		stub.WithLimiter(limiter),
		stub.WithMetrics(reg),
		stub.WithRequestMetrics(reg),
	), nil
}

func serve(ctx context.Context, cf *config.Config, logger zerolog.Logger) error {
	limiter, closeLimiter := newLimiter(cf)
	defer closeLimiter()

	handler, err := buildHandler(cf, logger, limiter)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cf.StubAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutDownCompleted := make(chan struct{})
	go func() {
		defer close(shutDownCompleted)
		<-ctx.Done()
		logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("stub server starting")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		stop()
		<-shutDownCompleted
		return err
	}
	<-shutDownCompleted
	logger.Info().Msg("closed completed")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
