package services

import (
	"errors"
	"fmt"
	"time"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/core/domain/model/product"
	"schoollunch/internal/core/domain/model/schedule"
	"schoollunch/internal/pkg/errs"
)

var ErrOrderLifecycleNotConstructed = errors.New("OrderLifecycle must be created via NewOrderLifecycle")

// OrderItem is a requested product and quantity before prices are captured.
type OrderItem struct {
	ProductID string
	Quantity  int
}

// PlaceOrderRequest carries everything Place needs besides the catalog and clock.
type PlaceOrderRequest struct {
	OrderID      kernel.UUID
	StudentID    string
	DeliveryDate kernel.Date
	Items        []OrderItem
}

// OrderLifecycle enforces every state change of an order against the
// delivery calendar. It is the only code that creates, cancels or changes
// receipt of orders; use case handlers load the inputs and persist the
// result.
//
// now is always passed in, so rules are evaluated against a single instant
// per request.
type OrderLifecycle struct {
	calendar *schedule.Calculator
}

func NewOrderLifecycle(calendar *schedule.Calculator) (OrderLifecycle, error) {
	if err := calendar.Validate(); err != nil {
		return OrderLifecycle{}, err
	}
	return OrderLifecycle{calendar: calendar}, nil
}

func (l OrderLifecycle) Validate() error {
	if l.calendar == nil {
		return ErrOrderLifecycleNotConstructed
	}
	return nil
}

// Place creates an order. Checks run in this order:
//   - delivery date is a business day (ErrNotDeliveryDay)
//   - the deadline has not passed (ErrDeadlinePassed)
//   - no active order exists for the same student and date (ErrDuplicateActiveOrder)
//   - every product exists (ErrProductNotFound) and is orderable (ErrProductUnavailable)
//
// Unit prices are copied from catalog, keyed by product id.
func (l OrderLifecycle) Place(
	req PlaceOrderRequest,
	catalog map[string]*product.Product,
	hasActiveOrder bool,
	now time.Time,
) (*order.Order, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if !l.calendar.IsBusinessDay(req.DeliveryDate) {
		return nil, fmt.Errorf("%w: %s", order.ErrNotDeliveryDay, req.DeliveryDate)
	}
	if err := l.checkDeadline(req.DeliveryDate, now); err != nil {
		return nil, err
	}
	if hasActiveOrder {
		return nil, fmt.Errorf("%w: student %s, %s", order.ErrDuplicateActiveOrder, req.StudentID, req.DeliveryDate)
	}

	for _, item := range req.Items {
		if _, ok := catalog[item.ProductID]; !ok {
			return nil, fmt.Errorf("%w: %s", order.ErrProductNotFound, item.ProductID)
		}
	}

	lines := make([]order.Line, 0, len(req.Items))
	for _, item := range req.Items {
		p := catalog[item.ProductID]
		if !p.IsAvailable() {
			return nil, fmt.Errorf("%w: %s", order.ErrProductUnavailable, p.ID())
		}
		line, err := order.NewLine(p.ID(), item.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.NewOrder(req.OrderID, req.StudentID, req.DeliveryDate, lines, now)
}

// Cancel cancels o on behalf of its owner. Checks run in this order:
// ownership (errs.ErrForbidden), status (ErrAlreadyCancelled), deadline
// (ErrDeadlinePassed).
func (l OrderLifecycle) Cancel(o *order.Order, requesterID string, now time.Time) error {
	if err := errors.Join(l.Validate(), o.Validate()); err != nil {
		return err
	}

	if !o.IsOwnedBy(requesterID) {
		return errs.NewForbiddenError(requesterID, "cancel order "+o.ID().String())
	}
	if o.Status() == order.Cancelled {
		return order.ErrAlreadyCancelled
	}
	if err := l.checkDeadline(o.DeliveryDate(), now); err != nil {
		return err
	}

	return o.Cancel()
}

// MarkReceived records pickup. A student may only mark their own order;
// staff (asStaff) may mark any.
func (l OrderLifecycle) MarkReceived(o *order.Order, actorID string, asStaff bool) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !asStaff && !o.IsOwnedBy(actorID) {
		return errs.NewForbiddenError(actorID, "receive order "+o.ID().String())
	}
	return o.MarkReceived()
}

// ResetReceived clears receipt. There is no deadline or status gate.
func (l OrderLifecycle) ResetReceived(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.ResetReceived()
	return nil
}

func (l OrderLifecycle) checkDeadline(d kernel.Date, now time.Time) error {
	if l.calendar.IsActionable(d, now) {
		return nil
	}
	return fmt.Errorf("%w: %s closed at %s",
		order.ErrDeadlinePassed, d, l.calendar.Deadline(d).Format(time.RFC3339))
}
