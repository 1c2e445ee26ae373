package repository

import (
	"context"

	"linkpile/internal/domain"
)

// ListFilter narrows ListLinks by archive state
type ListFilter struct {
	// State filters to a single archive state when non-nil
	State *domain.ArchiveState
}

// Store defines the interface for link and tag data access
type Store interface {
	// Composite add: link insert, tag resolution, and associations in a
	// single transaction
	AddEntry(ctx context.Context, entry domain.Entry) (int64, error)

	// Link operations
	GetLink(ctx context.Context, id int64) (*domain.Link, error)
	MarkRead(ctx context.Context, id int64) error
	ListLinks(ctx context.Context, filter ListFilter) ([]*domain.Link, error)

	// Tag operations
	ListTags(ctx context.Context) ([]string, error)
	TagsForLink(ctx context.Context, linkID int64) ([]string, error)
	LinksForTag(ctx context.Context, tag string) ([]*domain.Link, error)

	// Close releases resources
	Close() error
}
