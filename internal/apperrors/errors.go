package apperrors

import "errors"

// ErrNotFound indicates that a referenced resource does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidFormat indicates that an imported backup document is structurally invalid.
var ErrInvalidFormat = errors.New("invalid backup format")

// ErrEmptyClosure indicates that a cash-register closure was requested with
// nothing in the current working sets.
var ErrEmptyClosure = errors.New("no sales to close")

// ErrInsufficientStock indicates that a checkout would drive stock negative
// while the store is configured to reject that.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrPersistence indicates that the durable write-through failed. The
// in-memory state remains authoritative; callers treat this as a warning.
var ErrPersistence = errors.New("persistence failure")
