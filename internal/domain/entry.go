package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyLink is returned when an entry is submitted without link text
var ErrEmptyLink = errors.New("link text is required")

// Entry is the transient unit of input for adding a link. It exists only
// for the duration of a single add call and is translated into one Link
// row, zero or more new Tag rows, and their associations.
type Entry struct {
	Link    string
	Comment string
	Tags    []string
}

// Validate checks the entry before it reaches storage: link text must be
// present and no tag may be the empty string
func (e *Entry) Validate() error {
	if e.Link == "" {
		return ErrEmptyLink
	}
	for i, tag := range e.Tags {
		if tag == "" {
			return fmt.Errorf("tag %d is empty", i)
		}
	}
	return nil
}
