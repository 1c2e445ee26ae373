package service

import (
	"context"

	"linkpile/internal/domain"
	"linkpile/internal/repository"
)

// EntryService provides the caller-facing operations over the store. It
// validates input before anything touches storage and returns structured
// values only; rendering is the CLI's job.
type EntryService struct {
	store repository.Store
}

// NewEntryService creates a new entry service
func NewEntryService(store repository.Store) *EntryService {
	return &EntryService{store: store}
}

// Add validates the entry and stores it with its tags in one atomic
// operation, returning the new link id
func (s *EntryService) Add(ctx context.Context, entry domain.Entry) (int64, error) {
	if err := entry.Validate(); err != nil {
		return 0, err
	}
	return s.store.AddEntry(ctx, entry)
}

// MarkRead archives the link and returns its current record.
// A nonexistent id yields repository.ErrNotFound.
func (s *EntryService) MarkRead(ctx context.Context, id int64) (*domain.Link, error) {
	if err := s.store.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	return s.store.GetLink(ctx, id)
}

// Tags returns all tag texts in creation order
func (s *EntryService) Tags(ctx context.Context) ([]string, error) {
	return s.store.ListTags(ctx)
}

// TagsForLink returns the tags on a single link in association order
func (s *EntryService) TagsForLink(ctx context.Context, id int64) ([]string, error) {
	return s.store.TagsForLink(ctx, id)
}

// List returns links filtered by archive state; a nil state means all
func (s *EntryService) List(ctx context.Context, state *domain.ArchiveState) ([]*domain.Link, error) {
	return s.store.ListLinks(ctx, repository.ListFilter{State: state})
}

// ByTag returns every link carrying the given tag
func (s *EntryService) ByTag(ctx context.Context, tag string) ([]*domain.Link, error) {
	return s.store.LinksForTag(ctx, tag)
}
