package commands

import (
	"context"
	"log/slog"
	"time"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order before its deadline.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer Authorizer
	lifecycle  services.OrderLifecycle
	now        func() time.Time
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// now is compared against the delivery date's deadline.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer Authorizer,
	lifecycle services.OrderLifecycle,
	now func() time.Time,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		lifecycle:  lifecycle,
		now:        now,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

// Handle fails with errs.ErrObjectNotFound, errs.ErrForbidden,
// order.ErrAlreadyCancelled or order.ErrDeadlinePassed, in that order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.CancelOrder); err != nil {
		return failed(ctx, h.logger, "authorize", err)
	}

	return failed(ctx, h.logger, "cancel order", h.cancel(ctx, cmd))
}

func (h CancelOrderCommandHandler) cancel(ctx context.Context, cmd CancelOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.lifecycle.Cancel(o, cmd.ActorID(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
