package commands

import (
	"context"
	"log/slog"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/pkg/errs"
)

// BulkDeleteOrdersCommandHandler removes every order, or every order for one
// delivery date, in a single transaction.
//
// Example:
//
//	handler := NewBulkDeleteOrdersCommandHandler(uowFactory, authorizer, logger)
//	cmd, _ := NewBulkDeleteOrdersCommand("admin_1", BulkDeleteByDeliveryDate, &deliveryDate)
//
//	deleted, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing was ordered for that date
//	}
type BulkDeleteOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer Authorizer
	logger     *slog.Logger
}

// NewBulkDeleteOrdersCommandHandler creates a handler for bulk order deletion.
func NewBulkDeleteOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer Authorizer,
	logger *slog.Logger,
) BulkDeleteOrdersCommandHandler {
	return BulkDeleteOrdersCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		logger:     logger.With("component", "bulk_delete_orders_handler"),
	}
}

// Handle returns the number of deleted orders. Nothing to delete is
// reported as errs.ErrObjectNotFound.
func (h BulkDeleteOrdersCommandHandler) Handle(ctx context.Context, cmd BulkDeleteOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ManageOrders); err != nil {
		return 0, failed(ctx, h.logger, "authorize", err)
	}

	count, err := h.deleteAll(ctx, cmd)
	return count, failed(ctx, h.logger, "bulk delete orders", err)
}

func (h BulkDeleteOrdersCommandHandler) deleteAll(ctx context.Context, cmd BulkDeleteOrdersCommand) (int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.OrderRepository().DeleteAll(ctx, cmd.DeliveryDate())
	if err != nil {
		return 0, err
	}
	if count == 0 {
		target := "all"
		if d := cmd.DeliveryDate(); d != nil {
			target = d.String()
		}
		return 0, errs.NewObjectNotFoundError("deliveryDate", target)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.InfoContext(ctx, "orders deleted", "scope", string(cmd.Scope()), "count", count, "actor_id", cmd.ActorID())
	return count, nil
}
