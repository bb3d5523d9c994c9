package models

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyShared is returned when a share pair already exists.
	ErrAlreadyShared = errors.New("item already shared with user")

	// ErrNotShared is returned when a share pair to remove does not exist.
	ErrNotShared = errors.New("item not shared with user")

	// ErrSelfShareForbidden is returned when an owner tries to share an
	// item with themselves.
	ErrSelfShareForbidden = errors.New("cannot share an item with its owner")

	// ErrConflict is returned when a write lost a race with a concurrent
	// transaction. The operation had no effect and may be retried.
	ErrConflict = errors.New("write conflict, retry")
)

// NotFoundError is returned when an addressed entity does not exist.
type NotFoundError struct {
	Entity string // "user", "board" or "item"
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// DuplicateTitleError is returned when a title collides inside its
// uniqueness scope: board titles per owner, item titles per board.
type DuplicateTitleError struct {
	Scope string // description of the colliding scope, e.g. `board "Home"`
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("title %q already exists in %s", e.Title, e.Scope)
}

// InvalidAttributeError is returned when an attribute fails validation.
type InvalidAttributeError struct {
	Field  string
	Reason string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageFaultError wraps an unexpected fault from the persistence
// layer. The failed operation had no partial effect. Fatal for the
// request; never retried automatically and never swallowed.
type StorageFaultError struct {
	Err error
}

func (e *StorageFaultError) Error() string {
	return fmt.Sprintf("storage fault: %v", e.Err)
}

func (e *StorageFaultError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDuplicateTitle reports whether err is a DuplicateTitleError.
func IsDuplicateTitle(err error) bool {
	var dup *DuplicateTitleError
	return errors.As(err, &dup)
}

// IsInvalidAttribute reports whether err is an InvalidAttributeError.
func IsInvalidAttribute(err error) bool {
	var inv *InvalidAttributeError
	return errors.As(err, &inv)
}
