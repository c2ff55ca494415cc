package queries_test

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker without a unit
// of work; the query tests seed data through the repositories directly.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type stubCalculator struct{ total int64 }

func (c stubCalculator) Total(order.GarmentConfig, order.DesignSpec) (kernel.Money, error) {
	return kernel.NewMoney(c.total)
}

func startPostgres(s *suite.Suite) (*postgres.PostgresContainer, *gorm.DB) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)

	return container, db
}

func newActor(s *suite.Suite, role kernel.Role) kernel.Actor {
	actor, err := kernel.NewActor(role, kernel.NewUUID())
	s.Require().NoError(err)
	return actor
}

func newPendingOrder(s *suite.Suite, customer kernel.Actor) *order.Order {
	config, err := order.NewGarmentConfig(order.ClothingTShirt, order.SizeL, "black", 2, "")
	s.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), customer, config, order.EmptyDesignSpec(), stubCalculator{total: 5600})
	s.Require().NoError(err)
	return o
}
