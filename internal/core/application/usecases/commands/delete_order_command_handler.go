package commands

import (
	"context"
	"log/slog"

	"schoollunch/internal/core/application/access"
)

// DeleteOrderCommandHandler hard-deletes a single order. Staff only.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer Authorizer
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, authorizer Authorizer, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		logger:     logger.With("component", "delete_order_handler"),
	}
}

// Handle removes the order and its lines in one transaction.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ManageOrders); err != nil {
		return failed(ctx, h.logger, "authorize", err)
	}

	return failed(ctx, h.logger, "delete order", h.delete(ctx, cmd))
}

func (h DeleteOrderCommandHandler) delete(ctx context.Context, cmd DeleteOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order deleted", "order_id", cmd.OrderID().String(), "actor_id", cmd.ActorID())
	return nil
}
