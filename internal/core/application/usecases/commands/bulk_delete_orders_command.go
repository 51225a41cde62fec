package commands

import (
	"errors"
	"fmt"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"
)

var ErrBulkDeleteOrdersCommandIsNotConstructed = errors.New(
	"BulkDeleteOrdersCommand must be created via NewBulkDeleteOrdersCommand constructor",
)

// BulkDeleteScope selects which orders a bulk delete removes.
type BulkDeleteScope string

const (
	BulkDeleteAll            BulkDeleteScope = "all"
	BulkDeleteByDeliveryDate BulkDeleteScope = "byDeliveryDate"
)

// BulkDeleteOrdersCommand removes every order, or every order of one
// delivery date, regardless of status.
type BulkDeleteOrdersCommand struct { //nolint:recvcheck //using for validation
	actorID      string
	scope        BulkDeleteScope
	deliveryDate *kernel.Date

	guard guard.ConstructorGuard
}

// NewBulkDeleteOrdersCommand requires deliveryDate for BulkDeleteByDeliveryDate
// and ignores it for BulkDeleteAll.
func NewBulkDeleteOrdersCommand(actorID string, scope BulkDeleteScope, deliveryDate *kernel.Date) (BulkDeleteOrdersCommand, error) {
	if actorID == "" {
		return BulkDeleteOrdersCommand{}, ErrActorIsRequired
	}

	cmd := BulkDeleteOrdersCommand{
		actorID: actorID,
		scope:   scope,
		guard:   guard.NewConstructorGuard(),
	}

	switch scope {
	case BulkDeleteAll:
	case BulkDeleteByDeliveryDate:
		if deliveryDate == nil || deliveryDate.IsZero() {
			return BulkDeleteOrdersCommand{}, errs.NewValueIsRequiredError("deliveryDate")
		}
		d := *deliveryDate
		cmd.deliveryDate = &d
	default:
		return BulkDeleteOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a bulk delete type", scope))
	}

	return cmd, nil
}

func (c BulkDeleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkDeleteOrdersCommandIsNotConstructed)
}

func (c BulkDeleteOrdersCommand) ActorID() string        { return c.actorID }
func (c BulkDeleteOrdersCommand) Scope() BulkDeleteScope { return c.scope }

// DeliveryDate is nil for BulkDeleteAll.
func (c BulkDeleteOrdersCommand) DeliveryDate() *kernel.Date {
	if c.deliveryDate == nil {
		return nil
	}
	d := *c.deliveryDate
	return &d
}
