package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when
// a nil validation error is passed. Validation always fails with a meaningful
// message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created
// through their designated constructor functions. A zero-value struct that
// embeds a guard fails validation, so unvalidated instances are detected
// before any work is done on them.
//
// Example usage:
//
//	type ProcessOrdersCommand struct {
//	    status int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewProcessOrdersCommand(status int) (ProcessOrdersCommand, error) {
//	    return ProcessOrdersCommand{
//	        status: status,
//	        guard:  guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c ProcessOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil when properly constructed, the provided
// validationError otherwise, or ErrDefaultConstructorGuard when
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
