package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/application/usecases/commands"
	"schoollunch/internal/core/domain/model/admin"
	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		prepare func(o *order.Order)
		wantErr error
		updated bool
	}{
		{name: "owner before deadline", actorID: "student-1", updated: true},
		{name: "someone else's order", actorID: "student-2", wantErr: errs.ErrForbidden},
		{
			name:    "already cancelled",
			actorID: "student-1",
			prepare: func(o *order.Order) { require.NoError(t, o.Cancel()) },
			wantErr: order.ErrAlreadyCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := mustOrder("student-1", monday)
			if tt.prepare != nil {
				tt.prepare(o)
			}

			cmd, err := commands.NewCancelOrderCommand(tt.actorID, o.ID())
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)
			authorizer := new(MockAuthorizer)

			authorizer.On("Authorize", ctx, tt.actorID, access.CancelOrder).Return(access.Actor{ID: tt.actorID}, nil).Once()
			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
			if tt.updated {
				repo.On("Update", ctx, o).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}
			uow.On("Rollback", ctx).Return(nil).Once()

			h := commands.NewCancelOrderCommandHandler(factory, authorizer, newLifecycle(), clock, discard)
			err = h.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, o.Status())
			}
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
			factory.AssertExpectations(t)
			authorizer.AssertExpectations(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand("student-1", id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	authorizer := new(MockAuthorizer)

	mock.InOrder(
		authorizer.On("Authorize", ctx, "student-1", access.CancelOrder).Return(access.Actor{ID: "student-1"}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory, authorizer, newLifecycle(), clock, discard)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestReceiveOrderCommandHandler_Handle(t *testing.T) {
	staff, err := admin.NewAdmin("teacher-1", admin.Staff)
	require.NoError(t, err)

	tests := []struct {
		name    string
		actor   access.Actor
		wantErr error
	}{
		{name: "owner", actor: access.Actor{ID: "student-1"}},
		{name: "staff", actor: access.Actor{ID: "teacher-1", Admin: staff}},
		{name: "another student", actor: access.Actor{ID: "student-2"}, wantErr: errs.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := mustOrder("student-1", monday)
			cmd, err := commands.NewReceiveOrderCommand(tt.actor.ID, o.ID())
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)
			authorizer := new(MockAuthorizer)

			authorizer.On("Authorize", ctx, tt.actor.ID, access.ReceiveOrder).Return(tt.actor, nil).Once()
			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
			if tt.wantErr == nil {
				repo.On("Update", ctx, o).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}
			uow.On("Rollback", ctx).Return(nil).Once()

			h := commands.NewReceiveOrderCommandHandler(factory, authorizer, newLifecycle(), discard)
			err = h.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, o.IsReceived())
			} else {
				require.NoError(t, err)
				assert.True(t, o.IsReceived())
			}
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestReceiveOrderCommandHandler_Handle_AlreadyReceived(t *testing.T) {
	ctx := t.Context()
	o := mustOrder("student-1", monday)
	require.NoError(t, o.MarkReceived())

	cmd, err := commands.NewReceiveOrderCommand("student-1", o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	authorizer := new(MockAuthorizer)

	authorizer.On("Authorize", ctx, "student-1", access.ReceiveOrder).Return(access.Actor{ID: "student-1"}, nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewReceiveOrderCommandHandler(factory, authorizer, newLifecycle(), discard)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrAlreadyReceived)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestResetReceivedCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	o := mustOrder("student-1", monday)
	require.NoError(t, o.MarkReceived())

	cmd, err := commands.NewResetReceivedCommand("teacher-1", o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	authorizer := new(MockAuthorizer)

	mock.InOrder(
		authorizer.On("Authorize", ctx, "teacher-1", access.ManageOrders).Return(access.Actor{ID: "teacher-1"}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewResetReceivedCommandHandler(factory, authorizer, newLifecycle(), discard)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.False(t, o.IsReceived())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestResetReceivedCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewResetReceivedCommand("teacher-1", id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	authorizer := new(MockAuthorizer)

	mock.InOrder(
		authorizer.On("Authorize", ctx, "teacher-1", access.ManageOrders).Return(access.Actor{ID: "teacher-1"}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewResetReceivedCommandHandler(factory, authorizer, newLifecycle(), discard)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestResetReceivedCommandHandler_Handle_StudentIsForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewResetReceivedCommand("student-1", kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	authorizer := new(MockAuthorizer)
	authorizer.On("Authorize", ctx, "student-1", access.ManageOrders).
		Return(access.Actor{}, errs.NewForbiddenError("student-1", access.ManageOrders.String())).Once()

	h := commands.NewResetReceivedCommandHandler(factory, authorizer, newLifecycle(), discard)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand("teacher-1", id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	authorizer := new(MockAuthorizer)

	mock.InOrder(
		authorizer.On("Authorize", ctx, "teacher-1", access.ManageOrders).Return(access.Actor{ID: "teacher-1"}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(factory, authorizer, discard)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand("teacher-1", id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	authorizer := new(MockAuthorizer)

	mock.InOrder(
		authorizer.On("Authorize", ctx, "teacher-1", access.ManageOrders).Return(access.Actor{ID: "teacher-1"}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(factory, authorizer, discard)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOperationFailed)
	uow.AssertExpectations(t)
}

func TestBulkDeleteOrdersCommandHandler_Handle(t *testing.T) {
	date := kernel.NewDate(2025, 3, 10)

	tests := []struct {
		name      string
		scope     commands.BulkDeleteScope
		date      *kernel.Date
		deleted   int64
		wantErr   error
		committed bool
	}{
		{name: "all", scope: commands.BulkDeleteAll, deleted: 12, committed: true},
		{name: "by delivery date", scope: commands.BulkDeleteByDeliveryDate, date: &date, deleted: 3, committed: true},
		{name: "nothing matched", scope: commands.BulkDeleteByDeliveryDate, date: &date, wantErr: errs.ErrObjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewBulkDeleteOrdersCommand("teacher-1", tt.scope, tt.date)
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)
			authorizer := new(MockAuthorizer)

			authorizer.On("Authorize", ctx, "teacher-1", access.ManageOrders).Return(access.Actor{ID: "teacher-1"}, nil).Once()
			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("DeleteAll", ctx, tt.date).Return(tt.deleted, nil).Once()
			if tt.committed {
				uow.On("Commit", ctx).Return(nil).Once()
			}
			uow.On("Rollback", ctx).Return(nil).Once()

			h := commands.NewBulkDeleteOrdersCommandHandler(factory, authorizer, discard)
			count, err := h.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, count)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.deleted, count)
			}
			uow.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}
