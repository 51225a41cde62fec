package commands

import (
	"errors"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand permanently removes an order and its lines. Staff only.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actorID string
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(actorID string, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if actorID == "" {
		return DeleteOrderCommand{}, ErrActorIsRequired
	}
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		actorID: actorID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) ActorID() string      { return c.actorID }
func (c DeleteOrderCommand) OrderID() kernel.UUID { return c.orderID }
