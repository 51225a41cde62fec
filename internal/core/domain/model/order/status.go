package order

import (
	"fmt"

	"schoollunch/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Active ──> Cancelled
//
// Cancelled is terminal. Receipt is tracked separately from Status.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Active
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:    "active",
		Cancelled: "cancelled",
	}
}

// ParseStatus maps the wire form ("active", "cancelled") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) IsActive() bool {
	return s == Active
}

// Cancel transitions Active to Cancelled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Active:
		return Cancelled, nil
	case Cancelled:
		return 0, ErrAlreadyCancelled
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
}

// ValidateReceive reports whether an order in this status may be handed out.
func (s Status) ValidateReceive() error {
	switch s {
	case Active:
		return nil
	case Cancelled:
		return ErrAlreadyCancelled
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to receive", s.String()),
		)
	}
}
