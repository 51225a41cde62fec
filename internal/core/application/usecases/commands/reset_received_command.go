package commands

import (
	"errors"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/pkg/guard"
)

var ErrResetReceivedCommandIsNotConstructed = errors.New(
	"ResetReceivedCommand must be created via NewResetReceivedCommand constructor",
)

// ResetReceivedCommand clears the receipt flag of an order. Staff only.
type ResetReceivedCommand struct { //nolint:recvcheck //using for validation
	actorID string
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResetReceivedCommand(actorID string, orderID kernel.UUID) (ResetReceivedCommand, error) {
	if actorID == "" {
		return ResetReceivedCommand{}, ErrActorIsRequired
	}
	if err := orderID.Validate(); err != nil {
		return ResetReceivedCommand{}, err
	}

	return ResetReceivedCommand{
		actorID: actorID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ResetReceivedCommand) Validate() error {
	return c.guard.Validate(ErrResetReceivedCommandIsNotConstructed)
}

func (c ResetReceivedCommand) ActorID() string      { return c.actorID }
func (c ResetReceivedCommand) OrderID() kernel.UUID { return c.orderID }
