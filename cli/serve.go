package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mortgage-planner/config"
	httpLayer "mortgage-planner/http"
	"mortgage-planner/repository"
	"mortgage-planner/service"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mortgage API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), a.cfg, a.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	cache, closeCache, err := newCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	mortgageService := service.NewMortgageService(logger)
	handler := httpLayer.NewMortgageHandler(mortgageService, cache, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(handler, rateLimiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("api listening", "addr", cfg.Server.Addr, "cache", cfg.Cache.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", cfg.Server.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}

// newCache returns a nil cache for the "none" backend.
func newCache(
	ctx context.Context,
	cfg config.CacheConfig,
	logger *slog.Logger,
) (repository.CacheRepository, func(), error) {

	switch cfg.Backend {
	case "none":
		return nil, func() {}, nil
	case "redis":
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.TTL)
		if err := redisCache.Ping(ctx); err != nil {
			redisCache.Close()
			return nil, nil, fmt.Errorf("redis cache at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("using redis cache", "addr", cfg.RedisAddr, "ttl", cfg.TTL)
		return redisCache, func() {
			if err := redisCache.Close(); err != nil {
				logger.Warn("closing redis cache", "error", err)
			}
		}, nil
	default:
		memoryCache := repository.NewMemoryCache(cfg.TTL)
		return memoryCache, memoryCache.Stop, nil
	}
}
