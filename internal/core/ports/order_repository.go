package ports

import (
	"context"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their lines.
type OrderRepository interface {
	// Add stores a new order. A second active order for the same student and
	// delivery date fails with order.ErrDuplicateActiveOrder.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores status and receipt changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// HasActive reports whether the student already holds an active order
	// for the delivery date.
	HasActive(ctx context.Context, studentID string, deliveryDate kernel.Date) (bool, error)

	// Delete removes an order and its lines.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every order delivered on deliveryDate, or every order
	// when deliveryDate is nil. Returns the number of orders removed.
	DeleteAll(ctx context.Context, deliveryDate *kernel.Date) (int64, error)
}
