package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"linkpile/internal/domain"
	"linkpile/internal/repository"

	_ "modernc.org/sqlite"
)

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// same repository code runs inside or outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements repository.Store using SQLite
type Store struct {
	db    *sql.DB
	links *linkRepo
	tags  *tagRepo
	rel   *linkTagRepo
}

// New opens the database at path, creating it if needed, and ensures the
// schema exists. A failure here is unrecoverable storage fault territory:
// callers are expected to treat it as fatal.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single-writer store. One connection also keeps :memory: databases
	// coherent across the database/sql pool.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:    db,
		links: &linkRepo{db: db},
		tags:  &tagRepo{db: db},
		rel:   &linkTagRepo{db: db},
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS links (
		link_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		link      TEXT NOT NULL,
		comment   TEXT NOT NULL DEFAULT '',
		archive   INTEGER NOT NULL DEFAULT 0,
		timestamp TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tags (
		tag_id INTEGER PRIMARY KEY AUTOINCREMENT,
		tag    TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS linktags (
		link_id INTEGER NOT NULL,
		tag_id  INTEGER NOT NULL,
		FOREIGN KEY (link_id) REFERENCES links(link_id),
		FOREIGN KEY (tag_id) REFERENCES tags(tag_id)
	);

	CREATE INDEX IF NOT EXISTS idx_linktags_link ON linktags(link_id);
	CREATE INDEX IF NOT EXISTS idx_tags_tag ON tags(tag);
	`

	_, err := s.db.Exec(schema)
	return err
}

// AddEntry inserts the link, resolves each tag (creating it if absent), and
// creates the associations, all inside a single transaction. Either every
// row from the entry becomes visible together or none do.
func (s *Store) AddEntry(ctx context.Context, entry domain.Entry) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	links := &linkRepo{db: tx}
	tags := &tagRepo{db: tx}
	rel := &linkTagRepo{db: tx}

	linkID, err := links.Create(ctx, entry.Link, entry.Comment)
	if err != nil {
		return 0, err
	}

	for _, tag := range entry.Tags {
		tagID, created, err := tags.CreateIfAbsent(ctx, tag)
		if err != nil {
			return 0, err
		}
		if !created {
			// The insert path does not disclose an existing id; look it up.
			id, ok, err := tags.Find(ctx, tag)
			if err != nil {
				return 0, err
			}
			if !ok {
				return 0, fmt.Errorf("tag %q vanished during add: %w", tag, repository.ErrNotFound)
			}
			tagID = id
		}

		if err := rel.Attach(ctx, linkID, tagID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return linkID, nil
}

// GetLink retrieves a single link by id
func (s *Store) GetLink(ctx context.Context, id int64) (*domain.Link, error) {
	return s.links.Get(ctx, id)
}

// MarkRead transitions a link from the queue to the archive
func (s *Store) MarkRead(ctx context.Context, id int64) error {
	return s.links.MarkRead(ctx, id)
}

// ListLinks returns links in id order, optionally filtered by archive state
func (s *Store) ListLinks(ctx context.Context, filter repository.ListFilter) ([]*domain.Link, error) {
	return s.links.List(ctx, filter)
}

// ListTags returns all tag texts in the order the tags were first created
func (s *Store) ListTags(ctx context.Context) ([]string, error) {
	return s.tags.List(ctx)
}

// TagsForLink returns the tags associated with a link, in association order
func (s *Store) TagsForLink(ctx context.Context, linkID int64) ([]string, error) {
	return s.rel.TagsForLink(ctx, linkID)
}

// LinksForTag returns all links carrying the given tag
func (s *Store) LinksForTag(ctx context.Context, tag string) ([]*domain.Link, error) {
	return s.rel.LinksForTag(ctx, tag)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

var _ repository.Store = (*Store)(nil)
