package commands

import (
	"errors"
	"fmt"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrActorIsRequired = errs.NewValueIsRequiredError("actorId")
)

// PlaceOrderCommand asks to order lunch for the calling student.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand("user_42", orderID, deliveryDate, []services.OrderItem{
//	    {ProductID: "curry", Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actorID      string
	orderID      kernel.UUID
	deliveryDate kernel.Date
	items        []services.OrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand rejects an empty item list, non-positive quantities
// and the same product twice.
func NewPlaceOrderCommand(
	actorID string,
	orderID kernel.UUID,
	deliveryDate kernel.Date,
	items []services.OrderItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setOrderID(orderID),
		cmd.setDeliveryDate(deliveryDate),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) ActorID() string           { return c.actorID }
func (c PlaceOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c PlaceOrderCommand) DeliveryDate() kernel.Date { return c.deliveryDate }

func (c PlaceOrderCommand) Items() []services.OrderItem {
	out := make([]services.OrderItem, len(c.items))
	copy(out, c.items)
	return out
}

// ProductIDs lists the requested products in request order.
func (c PlaceOrderCommand) ProductIDs() []string {
	ids := make([]string, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

func (c *PlaceOrderCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIsRequired
	}
	c.actorID = actorID
	return nil
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryDate(d kernel.Date) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	c.deliveryDate = d
	return nil
}

func (c *PlaceOrderCommand) setItems(items []services.OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("items", errors.New("at least one product is required"))
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return errs.NewValueIsRequiredError("productId")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0 for %s", item.Quantity, item.ProductID))
		}
		if _, dup := seen[item.ProductID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %s appears more than once", item.ProductID))
		}
		seen[item.ProductID] = struct{}{}
	}

	c.items = make([]services.OrderItem, len(items))
	copy(c.items, items)
	return nil
}
