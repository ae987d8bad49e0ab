package booking

import (
	"errors"
	"fmt"
)

// ValidationError rejects malformed or missing input before storage is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError signals the slot was taken by a concurrent or earlier booking.
// The caller should re-resolve availability and retry with a different slot.
type ConflictError struct {
	Date     string
	TimeSlot string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("slot %s on %s is no longer available", e.TimeSlot, e.Date)
}

// NotFoundError signals the referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// IllegalStateError signals a transition that is not valid from the current
// status; the caller holds a stale view and should refresh.
type IllegalStateError struct {
	Current  string
	Expected string
}

func (e IllegalStateError) Error() string {
	return fmt.Sprintf("appointment is %s, expected %s", e.Current, e.Expected)
}

// StorageError wraps a transient storage failure; the whole operation is safe
// to retry since the unique index makes a replayed insert collide harmlessly.
type StorageError struct {
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage unavailable: %v", e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries the ValidationError kind.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err carries the ConflictError kind.
func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err carries the NotFoundError kind.
func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// IsIllegalState reports whether err carries the IllegalStateError kind.
func IsIllegalState(err error) bool {
	var ie IllegalStateError
	return errors.As(err, &ie)
}

// IsStorage reports whether err carries the StorageError kind.
func IsStorage(err error) bool {
	var se StorageError
	return errors.As(err, &se)
}
