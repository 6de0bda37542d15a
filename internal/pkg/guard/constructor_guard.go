// Package guard provides the constructor guard shared by commands, queries and
// domain objects that must only be created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value instances of a struct. Embed it, set it
// with NewConstructorGuard in the constructor and call Validate before use.
//
// Example:
//
//	type AllocateCommand struct {
//	    requestID kernel.ID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AllocateCommand) Validate() error {
//	    return c.guard.Validate(ErrAllocateCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// for a guard that was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
