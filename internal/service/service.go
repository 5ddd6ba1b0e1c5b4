package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SouthBennett/pizza/internal/entity"
	"github.com/SouthBennett/pizza/internal/validation"
	"github.com/SouthBennett/pizza/pkg/cache"
	"github.com/SouthBennett/pizza/pkg/logger"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
	_slowOpThreshold       = 200 * time.Millisecond
)

type (
	OrderRepository interface {
		Create(ctx context.Context, order *entity.Order) (*entity.Order, error)
		List(ctx context.Context) ([]*entity.Order, error)
	}

	OrderService struct {
		orderRepo OrderRepository
		logger    logger.Logger
		cache     cache.Cache[string, *entity.Order]
		cacheTTL  time.Duration
	}
)

func NewOrderService(
	orderRepo OrderRepository,
	logger logger.Logger,
	cache cache.Cache[string, *entity.Order],
	cacheTTL time.Duration,
) *OrderService {
	cache.SetOnEvicted(func(key string, value *entity.Order) {
		logger.Infow("cache eviction",
			"key", key,
			"type", fmt.Sprintf("%T", value),
		)
	})

	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// WarmEmailCache seeds the duplicate-check cache with the emails of
// orders already on record. Failures here are not fatal; the database
// constraint remains the source of truth.
func (os *OrderService) WarmEmailCache(ctx context.Context) error {
	const op = "service.WarmEmailCache"
	log := os.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "starting email cache warmup from store")

	orders, err := os.listOrdersFromStore(ctx)
	if err != nil {
		return fmt.Errorf("%s: list orders: %w", op, err)
	}

	if len(orders) == 0 {
		log.LogAttrs(ctx, logger.InfoLevel, "no orders on record, cache warmup skipped")
		return nil
	}

	var warmedCount int
	for _, order := range orders {
		if warmedCount >= os.cache.Capacity() {
			break
		}
		os.cache.Put(order.Email, order, os.cacheTTL)
		warmedCount++
	}

	log.LogAttrs(ctx, logger.InfoLevel, "email cache warmup finished",
		logger.Int("total_orders_on_record", len(orders)),
		logger.Int("warmed_to_cache", warmedCount),
	)

	return nil
}

// SubmitOrder validates the raw form, normalizes it and persists the
// result. Validation failures are returned as *entity.ValidationError
// with every violation collected; a repeated email returns
// entity.ErrDuplicateEmail.
func (os *OrderService) SubmitOrder(
	ctx context.Context,
	form *entity.OrderForm,
) (*entity.Order, error) {
	const op = "service.SubmitOrder"
	log := os.logger.Ctx(ctx)

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > _slowOpThreshold {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.String("email", form.Email),
				logger.String("duration", duration.String()),
			)
		}
	}()

	if result := validation.ValidateOrderForm(form); !result.IsValid {
		log.LogAttrs(ctx, logger.InfoLevel, "order form rejected",
			logger.String("op", op),
			logger.Int("violations", len(result.Errors)),
		)
		return nil, &entity.ValidationError{Messages: result.Errors}
	}

	order := form.Normalize()

	if os.cache.Has(order.Email) {
		log.LogAttrs(ctx, logger.InfoLevel, "duplicate email served from cache",
			logger.String("op", op),
			logger.String("email", order.Email),
		)
		return nil, entity.ErrDuplicateEmail
	}

	createdOrder, err := os.createOrder(ctx, order)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			log.LogAttrs(ctx, logger.WarnLevel, "duplicate email rejected by store",
				logger.String("op", op),
				logger.String("email", order.Email),
			)
			os.cache.Put(order.Email, order, os.cacheTTL)
			return nil, entity.ErrDuplicateEmail
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "order creation failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("email", order.Email),
		)
		return nil, fmt.Errorf("%s: create order: %w", op, err)
	}

	os.cache.Put(createdOrder.Email, createdOrder, os.cacheTTL)

	duration := time.Since(startTime)
	log.LogAttrs(ctx, logger.InfoLevel, "order created successfully",
		logger.String("op", op),
		logger.Int64("order_id", createdOrder.ID),
		logger.String("email", createdOrder.Email),
		logger.String("duration", duration.String()),
	)

	return createdOrder, nil
}

func (os *OrderService) createOrder(
	ctx context.Context,
	order *entity.Order,
) (*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	return os.orderRepo.Create(ctx, order)
}

// ListOrders returns every order on record, newest first.
func (os *OrderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	const op = "service.ListOrders"
	log := os.logger.Ctx(ctx)

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > _slowOpThreshold {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.String("duration", duration.String()),
			)
		}
	}()

	orders, err := os.listOrdersFromStore(ctx)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "failed to list orders",
			logger.String("op", op),
			logger.Any("error", err),
		)
		return nil, fmt.Errorf("%s: list orders: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "orders listed",
		logger.String("op", op),
		logger.Int("count", len(orders)),
	)

	return orders, nil
}

func (os *OrderService) listOrdersFromStore(ctx context.Context) ([]*entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	return os.orderRepo.List(ctx)
}
