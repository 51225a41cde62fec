package order

import "errors"

// Rule violations of the ordering flow. Each one is reported to the caller
// as is and never retried.
var (
	ErrDeadlinePassed       = errors.New("order deadline has passed")
	ErrDuplicateActiveOrder = errors.New("an active order already exists for this delivery date")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductUnavailable   = errors.New("product is not available")
	ErrNotDeliveryDay       = errors.New("delivery date is not a business day")
	ErrAlreadyCancelled     = errors.New("order is already cancelled")
	ErrAlreadyReceived      = errors.New("order is already received")
)
