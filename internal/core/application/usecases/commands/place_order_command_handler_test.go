package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/application/usecases/commands"
	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/core/domain/model/product"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/core/ports"
	"schoollunch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var monday = kernel.NewDate(2025, 3, 10)

func newPlaceOrderCommand(t *testing.T, deliveryDate kernel.Date) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand("student-1", kernel.NewUUID(), deliveryDate, []services.OrderItem{
		{ProductID: "curry", Quantity: 2},
	})
	require.NoError(t, err)
	return cmd
}

type placeOrderFixture struct {
	uow        *MockUoW
	orders     *MockOrderRepository
	products   *MockProductRepository
	factory    *MockPlaceOrderUoWFactory
	authorizer *MockAuthorizer
	locker     *MockLocker
	handler    commands.PlaceOrderCommandHandler
}

func newPlaceOrderFixture() placeOrderFixture {
	f := placeOrderFixture{
		uow:        new(MockUoW),
		orders:     new(MockOrderRepository),
		products:   new(MockProductRepository),
		factory:    new(MockPlaceOrderUoWFactory),
		authorizer: new(MockAuthorizer),
		locker:     new(MockLocker),
	}
	f.handler = commands.NewPlaceOrderCommandHandler(
		f.factory, f.authorizer, newLifecycle(), f.locker, clock, slog.New(slog.DiscardHandler),
	)
	return f
}

func (f placeOrderFixture) assert(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.products.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.authorizer.AssertExpectations(t)
	f.locker.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newPlaceOrderCommand(t, monday)
	f := newPlaceOrderFixture()

	catalog := map[string]*product.Product{"curry": mustProduct("curry", 450, true)}

	mock.InOrder(
		f.authorizer.On("Authorize", ctx, "student-1", access.PlaceOrder).Return(access.Actor{ID: "student-1"}, nil).Once(),
		f.locker.On("Lock", ctx, "student-1", monday).Return(noopRelease, nil).Once(),
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("HasActive", ctx, "student-1", monday).Return(false, nil).Once(),
		f.uow.On("ProductRepository").Return(f.products).Once(),
		f.products.On("GetMany", ctx, []string{"curry"}).Return(catalog, nil).Once(),
		f.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(cmd.OrderID()) && o.TotalAmount() == 900 && o.Status() == order.Active
		})).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	f := newPlaceOrderFixture()
	err := f.handler.Handle(t.Context(), commands.PlaceOrderCommand{})
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	cmd := newPlaceOrderCommand(t, monday)
	f := newPlaceOrderFixture()

	f.authorizer.On("Authorize", ctx, "student-1", access.PlaceOrder).
		Return(access.Actor{}, errs.NewForbiddenError("student-1", access.PlaceOrder.String())).Once()

	err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_SlotBusy(t *testing.T) {
	ctx := t.Context()
	cmd := newPlaceOrderCommand(t, monday)
	f := newPlaceOrderFixture()

	f.authorizer.On("Authorize", ctx, "student-1", access.PlaceOrder).Return(access.Actor{ID: "student-1"}, nil).Once()
	f.locker.On("Lock", ctx, "student-1", monday).Return(nil, ports.ErrOrderSlotBusy).Once()

	err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, ports.ErrOrderSlotBusy)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_DuplicateActiveOrder(t *testing.T) {
	ctx := t.Context()
	cmd := newPlaceOrderCommand(t, monday)
	f := newPlaceOrderFixture()

	released := false
	release := func(_ context.Context) error {
		released = true
		return nil
	}

	mock.InOrder(
		f.authorizer.On("Authorize", ctx, "student-1", access.PlaceOrder).Return(access.Actor{ID: "student-1"}, nil).Once(),
		f.locker.On("Lock", ctx, "student-1", monday).Return(release, nil).Once(),
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("HasActive", ctx, "student-1", monday).Return(true, nil).Once(),
		f.uow.On("ProductRepository").Return(f.products).Once(),
		f.products.On("GetMany", ctx, []string{"curry"}).
			Return(map[string]*product.Product{"curry": mustProduct("curry", 450, true)}, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrDuplicateActiveOrder)
	assert.True(t, released)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_DeadlinePassed(t *testing.T) {
	ctx := t.Context()
	thursday := kernel.NewDate(2025, 3, 6)
	cmd := newPlaceOrderCommand(t, thursday)
	f := newPlaceOrderFixture()

	mock.InOrder(
		f.authorizer.On("Authorize", ctx, "student-1", access.PlaceOrder).Return(access.Actor{ID: "student-1"}, nil).Once(),
		f.locker.On("Lock", ctx, "student-1", thursday).Return(noopRelease, nil).Once(),
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("HasActive", ctx, "student-1", thursday).Return(false, nil).Once(),
		f.uow.On("ProductRepository").Return(f.products).Once(),
		f.products.On("GetMany", ctx, []string{"curry"}).
			Return(map[string]*product.Product{"curry": mustProduct("curry", 450, true)}, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrDeadlinePassed)
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_AddFailureIsHidden(t *testing.T) {
	ctx := t.Context()
	cmd := newPlaceOrderCommand(t, monday)
	f := newPlaceOrderFixture()

	mock.InOrder(
		f.authorizer.On("Authorize", ctx, "student-1", access.PlaceOrder).Return(access.Actor{ID: "student-1"}, nil).Once(),
		f.locker.On("Lock", ctx, "student-1", monday).Return(noopRelease, nil).Once(),
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.orders.On("HasActive", ctx, "student-1", monday).Return(false, nil).Once(),
		f.uow.On("ProductRepository").Return(f.products).Once(),
		f.products.On("GetMany", ctx, []string{"curry"}).
			Return(map[string]*product.Product{"curry": mustProduct("curry", 450, true)}, nil).Once(),
		f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("connection reset")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOperationFailed)
	assert.NotContains(t, err.Error(), "connection reset")
	f.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newPlaceOrderCommand(t, monday)
	f := newPlaceOrderFixture()

	mock.InOrder(
		f.authorizer.On("Authorize", ctx, "student-1", access.PlaceOrder).Return(access.Actor{ID: "student-1"}, nil).Once(),
		f.locker.On("Lock", ctx, "student-1", monday).Return(noopRelease, nil).Once(),
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOperationFailed)
	f.assert(t)
}
