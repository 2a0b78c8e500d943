package simplestrings

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrInvalidInput indicates a missing, wrong-typed or malformed input
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists indicates a record with the same digest is already stored
	ErrAlreadyExists = errors.New("string already exists")

	// ErrNotFound indicates no record exists for the requested digest
	ErrNotFound = errors.New("string not found")

	// ErrUnparseableQuery indicates a natural-language query matched no rule
	ErrUnparseableQuery = errors.New("unable to parse natural language query")

	// ErrConflictingFilters indicates the derived filters cannot all hold
	ErrConflictingFilters = errors.New("query parsed but resulted in conflicting filters")
)

// RecordError represents an error related to a record operation
type RecordError struct {
	ID  string
	Op  string
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("string operation %s failed for %s: %v", e.Op, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// invalidInput wraps ErrInvalidInput with a caller-facing message.
func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
