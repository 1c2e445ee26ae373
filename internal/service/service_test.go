package service

import (
	"context"
	"errors"
	"testing"

	"linkpile/internal/domain"
	"linkpile/internal/repository"
	"linkpile/internal/repository/sqlite"
)

func newTestService(t *testing.T) *EntryService {
	t.Helper()
	store, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return NewEntryService(store)
}

func TestAddRejectsEmptyLink(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(context.Background(), domain.Entry{Tags: []string{"news"}})
	if !errors.Is(err, domain.ErrEmptyLink) {
		t.Fatalf("expected ErrEmptyLink, got %v", err)
	}

	// Nothing should have been stored
	tags, err := svc.Tags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("expected no tags after rejected add, got %v", tags)
	}
}

func TestAddRejectsEmptyTag(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(context.Background(), domain.Entry{
		Link: "http://example.com",
		Tags: []string{"news", ""},
	})
	if err == nil {
		t.Fatal("expected error for empty tag text")
	}
}

func TestAddAndMarkRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Add(ctx, domain.Entry{
		Link:    "http://example.com",
		Comment: "worth a look",
		Tags:    []string{"news"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	link, err := svc.MarkRead(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.Archive != domain.StateArchived {
		t.Errorf("expected archived state, got %s", link.Archive)
	}

	if _, err := svc.MarkRead(ctx, id+1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, domain.Entry{Link: "http://one.example"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Add(ctx, domain.Entry{Link: "http://two.example"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.MarkRead(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	queue := domain.StateQueue
	links, err := svc.List(ctx, &queue)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(links) != 1 || links[0].Link != "http://two.example" {
		t.Errorf("expected only the unread link in the queue, got %v", links)
	}

	all, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 links in total, got %d", len(all))
	}
}

func TestByTag(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Add(ctx, domain.Entry{
		Link: "http://example.com",
		Tags: []string{"tech"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	links, err := svc.ByTag(ctx, "tech")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(links) != 1 || links[0].ID != id {
		t.Errorf("expected the tagged link, got %v", links)
	}
}
