package errs

import "fmt"

// ValidationError covers missing or malformed caller input. The operation had
// no side effects.
type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %v", e.Err)
}

func (e ValidationError) Unwrap() error { return e.Err }

// NotFoundError covers a missing target row or a missing referenced parent.
type NotFoundError struct {
	Err error
}

func (e NotFoundError) Error() string {
	return e.Err.Error()
}

func (e NotFoundError) Unwrap() error { return e.Err }

// StorageError is an opaque substrate failure; the transaction was rolled back.
type StorageError struct {
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage error: %v", e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }
