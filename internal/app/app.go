package app

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/SouthBennett/pizza/internal/config"
	"github.com/SouthBennett/pizza/internal/entity"
	"github.com/SouthBennett/pizza/internal/repository"
	"github.com/SouthBennett/pizza/internal/service"
	httpt "github.com/SouthBennett/pizza/internal/transport/http"
	"github.com/SouthBennett/pizza/pkg/cache"
	"github.com/SouthBennett/pizza/pkg/logger"
	"github.com/SouthBennett/pizza/pkg/metric"
	"github.com/SouthBennett/pizza/pkg/storage/postgres"

	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	orderRepo, closeStore, storeErr := initOrderStore(cfg, log, metrics)
	if storeErr != nil {
		return storeErr
	}
	defer closeStore()

	emailCache, cacheErr := initCache(&cfg.Cache, log, metrics)
	if cacheErr != nil {
		return cacheErr
	}
	defer stopCache(emailCache)

	orderService := service.NewOrderService(
		orderRepo,
		log.With("component", "order service"),
		emailCache,
		cfg.Cache.TTL,
	)

	if err := orderService.WarmEmailCache(ctx); err != nil {
		log.Errorw("failed to warm email cache from store", "error", err)
	}

	if serverErr := initHTTPServer(ctx, eg, &cfg.HTTP, orderService, log, metrics); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

// initOrderStore picks the persistence backend. The returned cleanup
// func is a no-op for the memory backend.
func initOrderStore(
	cfg *config.Config,
	log logger.Logger,
	metrics metric.Factory,
) (service.OrderRepository, func(), error) {
	if cfg.Store.Backend == config.StoreBackendMemory {
		log.Infow("using in-memory order store")
		return repository.NewMemoryOrderRepository(), func() {}, nil
	}

	db, err := postgres.NewPostgres(
		&cfg.Postgres,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.Postgres.PoolMax),
		postgres.MaxConnAttempts(cfg.Postgres.ConnAttempts),
		postgres.BaseRetryDelay(cfg.Postgres.BaseRetryDelay),
		postgres.MaxRetryDelay(cfg.Postgres.MaxRetryDelay),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("app.initOrderStore: %w", err)
	}

	return repository.NewPostgresOrderRepository(db, metrics.Storage()), db.Close, nil
}

func initCache(
	cfg *config.Cache,
	log logger.Logger,
	metrics metric.Factory,
) (cache.Cache[string, *entity.Order], error) {
	emailCache, err := cache.NewLRUCache[string, *entity.Order](
		"orders",
		cfg.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initCache: %w", err)
	}
	emailCache.StartCleanup(cfg.CleanupInterval)
	return emailCache, nil
}

func stopCache(emailCache cache.Cache[string, *entity.Order]) {
	if emailCache != nil {
		emailCache.StopCleanup()
	}
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	orderService *service.OrderService,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer, err := httpt.NewHTTPServer(
		httpt.NewOrderHandler(orderService, log, metrics.HTTP(), cfg),
		cfg,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
