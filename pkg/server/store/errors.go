package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced entity does not exist.
// Callers wrap it with entity context and the HTTP layer maps it to 404.
var ErrNotFound = errors.New("not found")

// NotFound wraps ErrNotFound with the entity kind and identifier.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
