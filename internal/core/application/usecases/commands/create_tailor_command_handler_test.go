package commands_test

import (
	"errors"
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTailorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tailorID := kernel.NewUUID()
	cmd, err := commands.NewCreateTailorCommand(
		tailorID, "Mira Voss", "+31201234567", []string{"embroidery"}, mustActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	tailorRepo := new(MockTailorRepository)
	uow := new(MockTailorUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		tailorRepo.On("Add", ctx, mock.AnythingOfType("*tailor.Tailor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTailorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTailorCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, tailorID.IsEqual(created.ID()))
	assert.True(t, created.IsActive())
	tailorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateTailorCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTailorCommand(
		kernel.NewUUID(), "Mira Voss", "", nil, mustActor(t, kernel.RoleCustomer))
	require.NoError(t, err)

	factory := new(MockTailorUoWFactory)
	handler := commands.NewCreateTailorCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTailorCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateTailorCommand{} // not constructed properly

	factory := new(MockTailorUoWFactory)
	handler := commands.NewCreateTailorCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateTailorCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTailorCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTailorCommand(
		kernel.NewUUID(), "Mira Voss", "", nil, mustActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	tailorRepo := new(MockTailorRepository)
	uow := new(MockTailorUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		tailorRepo.On("Add", ctx, mock.AnythingOfType("*tailor.Tailor")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTailorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTailorCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", ctx)
}
