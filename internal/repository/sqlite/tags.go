package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// tagRepo owns the tags relation and its uniqueness invariant: no two rows
// ever share the same text. Matching is byte-exact (SQLite BINARY
// collation); the core performs no trimming or case folding.
type tagRepo struct {
	db dbtx
}

// Find returns the id of the tag with exactly the given text, if present
func (r *tagRepo) Find(ctx context.Context, tag string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		SELECT tag_id FROM tags WHERE tag = ?
	`, tag).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query tag: %w", err)
	}
	return id, true, nil
}

// Exists reports whether a tag with the given text is present
func (r *tagRepo) Exists(ctx context.Context, tag string) (bool, error) {
	_, ok, err := r.Find(ctx, tag)
	return ok, err
}

// CreateIfAbsent inserts the tag unless a row with that text already
// exists. The returned id is only meaningful when created is true; callers
// needing the id of a pre-existing tag look it up with Find. Check-then-act
// is safe here under the single-writer model.
func (r *tagRepo) CreateIfAbsent(ctx context.Context, tag string) (int64, bool, error) {
	ok, err := r.Exists(ctx, tag)
	if err != nil {
		return 0, false, err
	}
	if ok {
		return 0, false, nil
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tags (tag) VALUES (?)
	`, tag)
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert tag: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read tag id: %w", err)
	}
	return id, true, nil
}

// List returns all tag texts, ordered by first creation
func (r *tagRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tag FROM tags ORDER BY tag_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}
	return tags, nil
}
