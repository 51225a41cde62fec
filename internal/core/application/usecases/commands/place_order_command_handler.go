package commands

import (
	"context"
	"log/slog"
	"time"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/core/ports"
)

// PlaceOrderCommandHandler places an order for the calling student.
//
// A second active order for the same delivery date is refused twice over:
// the per-slot lock serializes concurrent requests across instances, and
// the storage-level unique index rejects whatever slips through.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	authorizer Authorizer
	lifecycle  services.OrderLifecycle
	locker     ports.OrderSlotLocker
	now        func() time.Time
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// locker guards the (student, delivery date) slot; now feeds the deadline check.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	authorizer Authorizer,
	lifecycle services.OrderLifecycle,
	locker ports.OrderSlotLocker,
	now func() time.Time,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		lifecycle:  lifecycle,
		locker:     locker,
		now:        now,
		logger:     logger.With("component", "place_order_handler"),
	}
}

// Handle locks the order slot, then validates and stores the order in one
// transaction. Business failures come back unwrapped: order.ErrNotDeliveryDay,
// order.ErrDeadlinePassed, order.ErrDuplicateActiveOrder,
// order.ErrProductNotFound or order.ErrProductUnavailable.
// Everything else is wrapped as ErrOperationFailed.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.PlaceOrder); err != nil {
		return failed(ctx, h.logger, "authorize", err)
	}

	release, err := h.locker.Lock(ctx, cmd.ActorID(), cmd.DeliveryDate())
	if err != nil {
		return failed(ctx, h.logger, "lock order slot", err)
	}
	defer func() {
		if releaseErr := release(context.WithoutCancel(ctx)); releaseErr != nil {
			h.logger.WarnContext(ctx, "release order slot", "error", releaseErr)
		}
	}()

	return failed(ctx, h.logger, "place order", h.place(ctx, cmd))
}

func (h PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	hasActive, err := orderRepo.HasActive(ctx, cmd.ActorID(), cmd.DeliveryDate())
	if err != nil {
		return err
	}

	catalog, err := uow.ProductRepository().GetMany(ctx, cmd.ProductIDs())
	if err != nil {
		return err
	}

	o, err := h.lifecycle.Place(services.PlaceOrderRequest{
		OrderID:      cmd.OrderID(),
		StudentID:    cmd.ActorID(),
		DeliveryDate: cmd.DeliveryDate(),
		Items:        cmd.Items(),
	}, catalog, hasActive, h.now())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order placed",
		"order_id", o.ID().String(),
		"delivery_date", o.DeliveryDate().String(),
		"total_amount", o.TotalAmount(),
	)
	return nil
}
