package commands_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTailorRepository struct{ mock.Mock }

func (m *MockTailorRepository) Add(ctx context.Context, t *tailor.Tailor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTailorRepository) Update(ctx context.Context, t *tailor.Tailor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tailor.Tailor), args.Error(1)
}

func (m *MockTailorRepository) GetAll(ctx context.Context, activeOnly bool) ([]*tailor.Tailor, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tailor.Tailor), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTailorUoW struct{ mock.Mock }

func (m *MockTailorUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTailorUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTailorUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTailorUoW) TailorRepository() ports.TailorRepository {
	args := m.Called()
	return args.Get(0).(ports.TailorRepository)
}

type MockTailorUoWFactory struct{ mock.Mock }

func (m *MockTailorUoWFactory) Create() commands.TailorUoW {
	args := m.Called()
	return args.Get(0).(commands.TailorUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TailorRepository() ports.TailorRepository {
	args := m.Called()
	return args.Get(0).(ports.TailorRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Test data helpers shared by the handler tests.

type stubCalculator struct {
	total int64
	err   error
}

func (c stubCalculator) Total(order.GarmentConfig, order.DesignSpec) (kernel.Money, error) {
	if c.err != nil {
		return kernel.Money{}, c.err
	}
	return kernel.NewMoney(c.total)
}

func mustActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(role, kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func mustConfig(t *testing.T) order.GarmentConfig {
	t.Helper()
	config, err := order.NewGarmentConfig(order.ClothingTShirt, order.SizeL, "black", 2, "")
	require.NoError(t, err)
	return config
}

func mustPendingOrder(t *testing.T, customer kernel.Actor) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), customer, mustConfig(t), order.EmptyDesignSpec(), stubCalculator{total: 5600})
	require.NoError(t, err)
	return o
}

func mustAssignedOrder(t *testing.T, customer kernel.Actor, tailorID kernel.UUID) *order.Order {
	t.Helper()
	o := mustPendingOrder(t, customer)
	require.NoError(t, o.Assign(tailorID, mustActor(t, kernel.RoleAdmin)))
	return o
}

func mustTailor(t *testing.T, active bool) *tailor.Tailor {
	t.Helper()
	created, err := tailor.NewTailor(kernel.NewUUID(), "Mira Voss", "+31201234567", []string{"embroidery"})
	require.NoError(t, err)
	created.SetActive(active)
	return created
}
