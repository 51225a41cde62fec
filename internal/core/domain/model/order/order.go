package order

import (
	"errors"
	"fmt"
	"time"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order built without NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a student's lunch order for one delivery date. It is the
// aggregate root for its lines.
//
// Invariants:
//   - at least one line, each product at most once
//   - totalAmount is the sum of line amounts, fixed at creation
//   - a cancelled order is never received again
//
// Deadline and uniqueness rules depend on the calendar and on other orders,
// so they live in services.OrderLifecycle rather than here.
type Order struct {
	id           kernel.UUID
	studentID    string
	deliveryDate kernel.Date
	status       Status
	isReceived   bool
	lines        []Line
	totalAmount  int
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates an active, unreceived order and computes its total.
//
//	line, _ := order.NewLine("curry", 2, 450)
//	o, err := order.NewOrder(kernel.NewUUID(), "user_42", kernel.NewDate(2025, 3, 10), []order.Line{line}, now)
func NewOrder(id kernel.UUID, studentID string, deliveryDate kernel.Date, lines []Line, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Active,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStudentID(studentID),
		o.setDeliveryDate(deliveryDate),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	for _, l := range o.lines {
		o.totalAmount += l.Amount()
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. The stored total is kept as
// is, even if product prices changed since.
func RestoreOrder(
	id kernel.UUID,
	studentID string,
	deliveryDate kernel.Date,
	status Status,
	isReceived bool,
	lines []Line,
	totalAmount int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isReceived:    isReceived,
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStudentID(studentID),
		o.setDeliveryDate(deliveryDate),
		o.setStatus(status),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) StudentID() string         { return o.studentID }
func (o *Order) DeliveryDate() kernel.Date { return o.deliveryDate }
func (o *Order) Status() Status            { return o.status }
func (o *Order) IsReceived() bool          { return o.isReceived }
func (o *Order) TotalAmount() int          { return o.totalAmount }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) IsOwnedBy(studentID string) bool {
	return o.studentID == studentID
}

// Cancel moves an active order to Cancelled. Returns ErrAlreadyCancelled
// for a cancelled one.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkReceived records that the student picked the order up.
func (o *Order) MarkReceived() error {
	if err := o.status.ValidateReceive(); err != nil {
		return err
	}
	if o.isReceived {
		return ErrAlreadyReceived
	}
	o.isReceived = true
	return nil
}

// ResetReceived clears the receipt flag regardless of status.
func (o *Order) ResetReceived() {
	o.isReceived = false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStudentID(studentID string) error {
	if studentID == "" {
		return errs.NewValueIsRequiredError("studentId")
	}
	o.studentID = studentID
	return nil
}

func (o *Order) setDeliveryDate(d kernel.Date) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	o.deliveryDate = d
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("lines", errors.New("an order needs at least one product"))
	}

	seen := make(map[string]struct{}, len(lines))
	for i, l := range lines {
		if l.productID == "" || l.quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("line %d was not created via NewLine", i))
		}
		if _, dup := seen[l.productID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("product %s appears more than once", l.productID))
		}
		seen[l.productID] = struct{}{}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
