package commands

import (
	"context"
	"log/slog"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/services"
)

// ReceiveOrderCommandHandler records that a lunch was handed out.
// A student may confirm only their own order; staff may confirm any order.
//
// Example:
//
//	handler := NewReceiveOrderCommandHandler(uowFactory, authorizer, lifecycle, logger)
//	cmd, _ := NewReceiveOrderCommand("user_42", orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("receive order: %w", err)
//	}
//	// The order now reports IsReceived() == true
type ReceiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer Authorizer
	lifecycle  services.OrderLifecycle
	logger     *slog.Logger
}

// NewReceiveOrderCommandHandler creates a handler for receipt confirmations.
// The lifecycle decides whether the actor owns the order.
func NewReceiveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer Authorizer,
	lifecycle services.OrderLifecycle,
	logger *slog.Logger,
) ReceiveOrderCommandHandler {
	return ReceiveOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		lifecycle:  lifecycle,
		logger:     logger.With("component", "receive_order_handler"),
	}
}

// Handle marks the order received inside one transaction.
// Fails with errs.ErrObjectNotFound for an unknown order, errs.ErrForbidden
// when a student confirms someone else's order, order.ErrAlreadyCancelled or
// order.ErrAlreadyReceived when the status does not allow it.
func (h ReceiveOrderCommandHandler) Handle(ctx context.Context, cmd ReceiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ReceiveOrder)
	if err != nil {
		return failed(ctx, h.logger, "authorize", err)
	}

	return failed(ctx, h.logger, "receive order", h.receive(ctx, cmd, actor))
}

func (h ReceiveOrderCommandHandler) receive(ctx context.Context, cmd ReceiveOrderCommand, actor access.Actor) error {
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

	if err = h.lifecycle.MarkReceived(o, actor.ID, actor.IsAdmin()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
