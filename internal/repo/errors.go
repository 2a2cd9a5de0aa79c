package repo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidID means the id string is not well formed for the backend.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound is only returned by Get.
	ErrNotFound = errors.New("not found")
	// ErrStorageUnavailable covers every failure talking to the store.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

func InvalidID(id string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return fmt.Errorf("%w: %q: %v", ErrInvalidID, id, cause)
}

func NotFound(id string) error {
	return fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// Unavailable wraps a driver error so it matches ErrStorageUnavailable
// while keeping the driver error reachable through errors.As.
func Unavailable(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, cause)
}
