package commands

import (
	"errors"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand asks to cancel one of the caller's own orders.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actorID string
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(actorID string, orderID kernel.UUID) (CancelOrderCommand, error) {
	if actorID == "" {
		return CancelOrderCommand{}, ErrActorIsRequired
	}
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		actorID: actorID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) ActorID() string      { return c.actorID }
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
