// Package guard provides a defensive-programming helper that ensures value
// objects, entities, and commands are only created through their designated
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate when a nil error is passed as the validation
// error. This ensures validation always fails with a meaningful message even
// if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its
// constructor or as a zero value. Embedding a ConstructorGuard in a struct
// and checking it in Validate prevents bypassing constructor validation by
// direct struct initialization.
//
// Example:
//
//	var ErrAddressNotConstructed = errors.New("Address must be created via NewAddress")
//
//	type Address struct {
//	    city  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAddress(city string) (Address, error) {
//	    if city == "" {
//	        return Address{}, errors.New("city is required")
//	    }
//	    return Address{city: city, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (a Address) Validate() error {
//	    return a.guard.Validate(ErrAddressNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of domain objects so they can be
// distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns validationError for zero-value instances, or
// ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
