package repository

import (
	"context"
	"sync"

	"github.com/SouthBennett/pizza/internal/entity"
)

// MemoryOrderRepository keeps orders in process memory. It enforces
// the same email uniqueness rule as the relational backend so the two
// are interchangeable behind the service.
type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders []*entity.Order
	emails map[string]struct{}
	nextID int64
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		emails: make(map[string]struct{}),
		nextID: 1,
	}
}

func (r *MemoryOrderRepository) Create(_ context.Context, order *entity.Order) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emails[order.Email]; exists {
		return nil, entity.ErrDuplicateEmail
	}

	stored := *order
	stored.ID = r.nextID
	r.nextID++

	r.orders = append(r.orders, &stored)
	r.emails[order.Email] = struct{}{}

	result := stored
	return &result, nil
}

func (r *MemoryOrderRepository) List(_ context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Orders are appended in arrival order; newest first mirrors the
	// relational backend's sort.
	orders := make([]*entity.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		order := *r.orders[i]
		orders = append(orders, &order)
	}
	return orders, nil
}
