package models

import "fmt"

// ValidationError represents an out-of-range input value.
// Explicit error classification: recoverable, reported to the caller
// for user correction, never fatal.
type ValidationError struct {
	Field   string
	Value   float64
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsTransient returns false as validation errors are permanent
func (e *ValidationError) IsTransient() bool {
	return false
}

// GeometryError represents pipe dimensions that describe no physical pipe,
// such as a wall thickness that leaves no inner diameter.
type GeometryError struct {
	Field   string
	Value   float64
	Message string
}

func (e *GeometryError) Error() string {
	return e.Message
}

// IsTransient returns false as geometry errors are permanent
func (e *GeometryError) IsTransient() bool {
	return false
}

// EmptyStateError signals that an operation was requested with zero
// calibration points. It means "nothing to show", not a computation failure.
type EmptyStateError struct {
	Operation string
}

func (e *EmptyStateError) Error() string {
	return fmt.Sprintf("%s requires at least one calibration point", e.Operation)
}
