package simpledrop

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrObjectNotFound indicates the key does not exist in the blob store,
	// either because it never did or because the object expired.
	ErrObjectNotFound = errors.New("object not found")
)

// StorageError represents an error related to blob store operations
type StorageError struct {
	Key string
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
