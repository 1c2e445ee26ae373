package sqlite

import (
	"context"
	"fmt"

	"linkpile/internal/domain"
	"linkpile/internal/repository"
)

// linkTagRepo owns the linktags join relation. Pairs behave as a set:
// attaching the same (link, tag) twice leaves a single row. Referential
// integrity is checked here rather than delegated to the engine, since
// SQLite does not enforce foreign keys unless the pragma is enabled.
type linkTagRepo struct {
	db dbtx
}

// Attach associates a tag with a link. Both ids must reference existing
// rows; a dangling side yields a repository.ReferentialError.
func (r *linkTagRepo) Attach(ctx context.Context, linkID, tagID int64) error {
	if err := r.checkExists(ctx, "links", "link_id", linkID); err != nil {
		return err
	}
	if err := r.checkExists(ctx, "tags", "tag_id", tagID); err != nil {
		return err
	}

	var n int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM linktags WHERE link_id = ? AND tag_id = ?
	`, linkID, tagID).Scan(&n)
	if err != nil {
		return fmt.Errorf("failed to query association: %w", err)
	}
	if n > 0 {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO linktags (link_id, tag_id) VALUES (?, ?)
	`, linkID, tagID); err != nil {
		return fmt.Errorf("failed to insert association: %w", err)
	}
	return nil
}

func (r *linkTagRepo) checkExists(ctx context.Context, table, column string, id int64) error {
	var n int64
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = ?`, table, column), id,
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}
	if n == 0 {
		return &repository.ReferentialError{Relation: table, ID: id}
	}
	return nil
}

// TagsForLink returns the tag texts associated with a link, in the order
// the associations were created
func (r *linkTagRepo) TagsForLink(ctx context.Context, linkID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.tag
		FROM linktags lt
		JOIN tags t ON t.tag_id = lt.tag_id
		WHERE lt.link_id = ?
		ORDER BY lt.rowid
	`, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query link tags: %w", err)
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
		return nil, fmt.Errorf("error iterating link tags: %w", err)
	}
	return tags, nil
}

// LinksForTag returns every link carrying the given tag text, in id order
func (r *linkTagRepo) LinksForTag(ctx context.Context, tag string) ([]*domain.Link, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.link_id, l.link, l.comment, l.archive, l.timestamp
		FROM links l
		JOIN linktags lt ON lt.link_id = l.link_id
		JOIN tags t ON t.tag_id = lt.tag_id
		WHERE t.tag = ?
		ORDER BY l.link_id
	`, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to query links by tag: %w", err)
	}
	defer rows.Close()

	return collectLinks(rows)
}
