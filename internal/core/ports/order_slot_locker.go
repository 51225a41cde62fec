package ports

import (
	"context"
	"errors"

	"schoollunch/internal/core/domain/model/kernel"
)

// ErrOrderSlotBusy is returned when another request holds the slot.
var ErrOrderSlotBusy = errors.New("another order for this delivery date is being placed")

// OrderSlotLocker serializes order placement per (student, delivery date)
// across service instances.
type OrderSlotLocker interface {
	// Lock returns a release func that must be called once the order is
	// committed or abandoned.
	Lock(ctx context.Context, studentID string, deliveryDate kernel.Date) (release func(context.Context) error, err error)
}
