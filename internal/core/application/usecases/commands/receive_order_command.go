package commands

import (
	"errors"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/pkg/guard"
)

var ErrReceiveOrderCommandIsNotConstructed = errors.New(
	"ReceiveOrderCommand must be created via NewReceiveOrderCommand constructor",
)

// ReceiveOrderCommand records that an order was handed out. Students confirm their own orders; staff may confirm any.
type ReceiveOrderCommand struct { //nolint:recvcheck //using for validation
	actorID string
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewReceiveOrderCommand(actorID string, orderID kernel.UUID) (ReceiveOrderCommand, error) {
	if actorID == "" {
		return ReceiveOrderCommand{}, ErrActorIsRequired
	}
	if err := orderID.Validate(); err != nil {
		return ReceiveOrderCommand{}, err
	}

	return ReceiveOrderCommand{
		actorID: actorID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReceiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrReceiveOrderCommandIsNotConstructed)
}

func (c ReceiveOrderCommand) ActorID() string      { return c.actorID }
func (c ReceiveOrderCommand) OrderID() kernel.UUID { return c.orderID }
