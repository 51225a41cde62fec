package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in
// commands and domain objects whose zero value is not usable:
//
//	type CancelOrderCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c CancelOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelOrderCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// for a zero-value guard, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
