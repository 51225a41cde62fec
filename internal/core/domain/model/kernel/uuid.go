package kernel

import (
	"schoollunch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID identifies orders. The zero value is invalid.
//
//	orderID := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString(c.Param("orderId"))
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the standard, braced, urn and unhyphenated forms.
// A malformed or nil identifier yields a ValueIsInvalidError.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if id == uuid.Nil {
		return UUID{}, errs.NewValueIsInvalidError("id")
	}
	return UUID{id: id}, nil
}

// UUIDFromGoogle wraps an identifier read back from storage.
func UUIDFromGoogle(id uuid.UUID) UUID {
	return UUID{id: id}
}

func (u UUID) String() string {
	return u.id.String()
}

// Google returns the underlying value for persistence adapters.
func (u UUID) Google() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
