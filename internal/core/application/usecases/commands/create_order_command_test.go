package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customer := mustActor(t, kernel.RoleCustomer)
		config := mustConfig(t)

		cmd, err := commands.NewCreateOrderCommand(orderID, customer, config, order.EmptyDesignSpec())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, orderID.IsEqual(cmd.OrderID()))
		assert.True(t, customer.IsEqual(cmd.Customer()))
		assert.Equal(t, config.ClothingType(), cmd.Config().ClothingType())
	})

	t.Run("should reject zero order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, mustActor(t, kernel.RoleCustomer), mustConfig(t), order.EmptyDesignSpec())

		require.Error(t, err)
	})

	t.Run("should reject not constructed actor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.Actor{}, mustConfig(t), order.EmptyDesignSpec())

		require.Error(t, err)
	})

	t.Run("should reject not constructed configuration", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), mustActor(t, kernel.RoleCustomer), order.GarmentConfig{}, order.EmptyDesignSpec())

		require.Error(t, err)
	})

	t.Run("should reject not constructed design", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), mustActor(t, kernel.RoleCustomer), mustConfig(t), order.DesignSpec{})

		require.Error(t, err)
	})

	t.Run("should return error when command is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestNewTransitionOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		actor := mustActor(t, kernel.RoleTailor)

		cmd, err := commands.NewTransitionOrderCommand(orderID, order.Accepted, actor)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, orderID.IsEqual(cmd.OrderID()))
		assert.Equal(t, order.Accepted, cmd.Target())
		assert.True(t, actor.IsEqual(cmd.Actor()))
	})

	t.Run("should reject unknown target status", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(
			kernel.NewUUID(), order.Unknown, mustActor(t, kernel.RoleTailor))

		require.Error(t, err)
	})

	t.Run("should return error when command is not constructed", func(t *testing.T) {
		var cmd commands.TransitionOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
	})
}
