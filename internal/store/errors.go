package store

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the requested key is not in the store.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Key %q not found.", e.Key)
}

// AlreadyExistsError indicates a set without --force hit an existing key.
type AlreadyExistsError struct {
	Key string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("Key %q already present. (Use --force to overwrite.)", e.Key)
}

// InvalidDataError indicates the store file parsed as JSON but does not have
// the expected shape: the top-level value is not an object, or a stored value
// is not a string.
type InvalidDataError struct {
	Message string
}

func (e *InvalidDataError) Error() string {
	return e.Message
}

// errNotObject is the invalid-data error for a non-object top level.
func errNotObject() *InvalidDataError {
	return &InvalidDataError{Message: "Data in file was not an object."}
}

// errNotString is the invalid-data error for a non-string value.
func errNotString(key string) *InvalidDataError {
	return &InvalidDataError{Message: fmt.Sprintf("Value for key %q is not a string.", key)}
}

// IsNotFound returns true if the error indicates a missing key.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAlreadyExists returns true if the error indicates an overwrite-protected key.
func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}

// IsInvalidData returns true if the error indicates a malformed store shape.
func IsInvalidData(err error) bool {
	var id *InvalidDataError
	return errors.As(err, &id)
}
