// Package guard provides the constructor-guard pattern used by commands and
// value objects to detect zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it as a
// private field and set it via NewConstructorGuard inside the constructor;
// a zero-value struct then fails Validate.
//
// Example:
//
//	type ConsolidateOrderCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewConsolidateOrderCommand(orderID string) (ConsolidateOrderCommand, error) {
//	    ...
//	    return ConsolidateOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
