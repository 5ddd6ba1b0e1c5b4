package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SouthBennett/pizza/internal/entity"
	"github.com/SouthBennett/pizza/internal/repository"
	"github.com/SouthBennett/pizza/internal/service"
	"github.com/SouthBennett/pizza/pkg/cache"
	"github.com/SouthBennett/pizza/pkg/logger"
	"github.com/SouthBennett/pizza/pkg/metric"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStorageDown = errors.New("storage down")

type failingOrderRepository struct{}

func (failingOrderRepository) Create(context.Context, *entity.Order) (*entity.Order, error) {
	return nil, errStorageDown
}

func (failingOrderRepository) List(context.Context) ([]*entity.Order, error) {
	return nil, errStorageDown
}

// recordingLogger captures LogAttrs lines so tests can assert on what
// was logged.
type recordingLogger struct {
	logger.Logger
	mu      sync.Mutex
	entries []string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{Logger: logger.NewNop()}
}

func (l *recordingLogger) Ctx(context.Context) logger.Logger { return l }

func (l *recordingLogger) LogAttrs(_ context.Context, _ logger.Level, msg string, attrs ...logger.Attr) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := msg
	for _, a := range attrs {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
	}
	l.entries = append(l.entries, line)
}

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, entry := range l.entries {
		if strings.Contains(entry, substr) {
			return true
		}
	}
	return false
}

func newEmailCache(t *testing.T) cache.Cache[string, *entity.Order] {
	t.Helper()

	c, err := cache.NewLRUCache[string, *entity.Order](
		"orders",
		100,
		logger.NewNop(),
		metric.NewNopFactory().Cache(),
	)
	require.NoError(t, err)
	return c
}

func newOrderService(t *testing.T, repo service.OrderRepository) *service.OrderService {
	t.Helper()
	return service.NewOrderService(repo, logger.NewNop(), newEmailCache(t), time.Minute)
}

func validForm() *entity.OrderForm {
	return &entity.OrderForm{
		FirstName: "Al",
		LastName:  "Pacino",
		Email:     "al@pacino.com",
		Method:    "delivery",
		Size:      "large",
		Toppings:  []string{"pepperoni", "sausage"},
	}
}

func TestOrderService_SubmitOrder(t *testing.T) {
	t.Parallel()

	svc := newOrderService(t, repository.NewMemoryOrderRepository())

	order, err := svc.SubmitOrder(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, "al@pacino.com", order.Email)
	assert.Equal(t, "pepperoni, sausage", order.Toppings)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrderService_SubmitOrder_ValidationFailure(t *testing.T) {
	t.Parallel()

	svc := newOrderService(t, repository.NewMemoryOrderRepository())

	form := validForm()
	form.FirstName = "  "
	form.Method = "carrier-pigeon"
	form.Toppings = []string{"pepperoni", "anchovies"}

	_, err := svc.SubmitOrder(context.Background(), form)

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"First name is required",
		"Method is invalid",
		`Topping "anchovies" is invalid`,
	}, validationErr.Messages)

	// Nothing reaches the store when validation fails.
	orders, listErr := svc.ListOrders(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, orders)
}

func TestOrderService_SubmitOrder_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newOrderService(t, repository.NewMemoryOrderRepository())
	ctx := context.Background()

	_, err := svc.SubmitOrder(ctx, validForm())
	require.NoError(t, err)

	_, err = svc.SubmitOrder(ctx, validForm())
	require.ErrorIs(t, err, entity.ErrDuplicateEmail)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_SubmitOrder_DuplicateInStoreOnly(t *testing.T) {
	t.Parallel()

	// The store already holds the email but the cache does not, so the
	// duplicate is detected by the repository constraint.
	repo := repository.NewMemoryOrderRepository()
	_, err := repo.Create(context.Background(), validForm().Normalize())
	require.NoError(t, err)

	svc := newOrderService(t, repo)

	_, err = svc.SubmitOrder(context.Background(), validForm())
	require.ErrorIs(t, err, entity.ErrDuplicateEmail)
}

func TestOrderService_SubmitOrder_StoreDuplicateLogsEmail(t *testing.T) {
	t.Parallel()

	// The cache is cold, so the duplicate is caught by the store; the
	// rejection log line must still name the conflicting email.
	repo := repository.NewMemoryOrderRepository()
	_, err := repo.Create(context.Background(), validForm().Normalize())
	require.NoError(t, err)

	log := newRecordingLogger()
	svc := service.NewOrderService(repo, log, newEmailCache(t), time.Minute)

	_, err = svc.SubmitOrder(context.Background(), validForm())
	require.ErrorIs(t, err, entity.ErrDuplicateEmail)

	assert.True(t, log.contains("al@pacino.com"),
		"rejection log should name the conflicting email, got: %v", log.entries)
}

func TestOrderService_SubmitOrder_StorageFailure(t *testing.T) {
	t.Parallel()

	svc := newOrderService(t, failingOrderRepository{})

	_, err := svc.SubmitOrder(context.Background(), validForm())
	require.Error(t, err)
	require.ErrorIs(t, err, errStorageDown)

	var validationErr *entity.ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.False(t, errors.Is(err, entity.ErrDuplicateEmail))
}

func TestOrderService_ListOrders(t *testing.T) {
	t.Parallel()

	svc := newOrderService(t, repository.NewMemoryOrderRepository())
	ctx := context.Background()

	emails := []string{"first@example.com", "second@example.com", "third@example.com"}
	for _, email := range emails {
		form := validForm()
		form.Email = email
		_, err := svc.SubmitOrder(ctx, form)
		require.NoError(t, err)
	}

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "third@example.com", orders[0].Email)
	assert.Equal(t, "first@example.com", orders[2].Email)
}

func TestOrderService_ListOrders_StorageFailure(t *testing.T) {
	t.Parallel()

	svc := newOrderService(t, failingOrderRepository{})

	_, err := svc.ListOrders(context.Background())
	require.ErrorIs(t, err, errStorageDown)
}

func TestOrderService_WarmEmailCache(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryOrderRepository()
	_, err := repo.Create(context.Background(), validForm().Normalize())
	require.NoError(t, err)

	emailCache := newEmailCache(t)
	svc := service.NewOrderService(repo, logger.NewNop(), emailCache, time.Minute)

	require.NoError(t, svc.WarmEmailCache(context.Background()))
	assert.True(t, emailCache.Has("al@pacino.com"))
}

func TestOrderService_WarmEmailCache_StorageFailure(t *testing.T) {
	t.Parallel()

	svc := newOrderService(t, failingOrderRepository{})

	err := svc.WarmEmailCache(context.Background())
	require.ErrorIs(t, err, errStorageDown)
}
