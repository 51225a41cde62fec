package commands

import (
	"context"
	"log/slog"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/services"
)

// ResetReceivedCommandHandler undoes a receipt confirmation. Staff only.
//
// Example:
//
//	handler := NewResetReceivedCommandHandler(uowFactory, authorizer, lifecycle, logger)
//	cmd, _ := NewResetReceivedCommand("admin_1", orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("reset receipt: %w", err)
//	}
type ResetReceivedCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer Authorizer
	lifecycle  services.OrderLifecycle
	logger     *slog.Logger
}

// NewResetReceivedCommandHandler creates a handler for receipt resets.
func NewResetReceivedCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer Authorizer,
	lifecycle services.OrderLifecycle,
	logger *slog.Logger,
) ResetReceivedCommandHandler {
	return ResetReceivedCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		lifecycle:  lifecycle,
		logger:     logger.With("component", "reset_received_handler"),
	}
}

// Handle clears the received flag. The order must exist
// (errs.ErrObjectNotFound) and the actor must manage orders (errs.ErrForbidden).
// Nothing is written when either check fails.
func (h ResetReceivedCommandHandler) Handle(ctx context.Context, cmd ResetReceivedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ManageOrders); err != nil {
		return failed(ctx, h.logger, "authorize", err)
	}

	return failed(ctx, h.logger, "reset receipt", h.reset(ctx, cmd))
}

func (h ResetReceivedCommandHandler) reset(ctx context.Context, cmd ResetReceivedCommand) error {
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

	if err = h.lifecycle.ResetReceived(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
