package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced link or tag identifier does not
// exist. Recoverable: the caller decides how to surface it.
var ErrNotFound = errors.New("not found")

// ReferentialError reports an association referencing a nonexistent link or
// tag row. Given the facade's call order it should not occur in normal
// operation, but the core checks for it rather than trusting the storage
// engine's constraint enforcement, which SQLite leaves off unless asked.
type ReferentialError struct {
	Relation string
	ID       int64
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("no %s row with id %d", e.Relation, e.ID)
}
