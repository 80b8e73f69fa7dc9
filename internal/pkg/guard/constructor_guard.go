// Package guard provides ConstructorGuard, a marker that lets commands, queries
// and value objects detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is not usable.
// Only NewConstructorGuard produces a guard that validates.
//
// Example usage:
//
//	var ErrTrackOrderQueryIsNotConstructed = errors.New("TrackOrderQuery must be created via NewTrackOrderQuery")
//
//	type TrackOrderQuery struct {
//	    key   string
//	    guard guard.ConstructorGuard
//	}
//
//	func (q TrackOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
