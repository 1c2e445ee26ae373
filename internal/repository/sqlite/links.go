package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"linkpile/internal/domain"
	"linkpile/internal/repository"
)

// linkRepo owns the links relation. Rows are created once and only the
// archive column is ever updated afterwards.
type linkRepo struct {
	db dbtx
}

// Create inserts a new link in the queue state with the current timestamp
// and returns the assigned id. An absent comment is stored as the empty
// string, never NULL, so the column stays queryable as text.
func (r *linkRepo) Create(ctx context.Context, link, comment string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO links (link, comment, archive, timestamp)
		VALUES (?, ?, ?, ?)
	`, link, comment, archiveToInt(domain.StateQueue), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to insert link: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read link id: %w", err)
	}
	return id, nil
}

// Get retrieves a link by id, or repository.ErrNotFound
func (r *linkRepo) Get(ctx context.Context, id int64) (*domain.Link, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT link_id, link, comment, archive, timestamp
		FROM links WHERE link_id = ?
	`, id)

	link, err := scanLink(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("link %d: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query link: %w", err)
	}
	return link, nil
}

// MarkRead transitions a link from queue to archived. A missing id is
// repository.ErrNotFound; re-marking an already-archived link is a no-op.
func (r *linkRepo) MarkRead(ctx context.Context, id int64) error {
	var archive int64
	err := r.db.QueryRowContext(ctx, `
		SELECT archive FROM links WHERE link_id = ?
	`, id).Scan(&archive)
	if err == sql.ErrNoRows {
		return fmt.Errorf("link %d: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to query link: %w", err)
	}

	if intToArchive(archive) == domain.StateArchived {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, `
		UPDATE links SET archive = ? WHERE link_id = ?
	`, archiveToInt(domain.StateArchived), id); err != nil {
		return fmt.Errorf("failed to mark link read: %w", err)
	}
	return nil
}

// List returns links in id order, optionally filtered by archive state
func (r *linkRepo) List(ctx context.Context, filter repository.ListFilter) ([]*domain.Link, error) {
	query := `
		SELECT link_id, link, comment, archive, timestamp
		FROM links
	`
	var args []any
	if filter.State != nil {
		query += ` WHERE archive = ?`
		args = append(args, archiveToInt(*filter.State))
	}
	query += ` ORDER BY link_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	return collectLinks(rows)
}

// scanLink builds a domain.Link from one row of the canonical five-column
// SELECT, converting the stored archive integer and RFC 3339 timestamp
func scanLink(scan func(...any) error) (*domain.Link, error) {
	var (
		id, archive   int64
		link, comment string
		timestamp     string
	)
	if err := scan(&id, &link, &comment, &archive, &timestamp); err != nil {
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp %q: %w", timestamp, err)
	}

	return &domain.Link{
		ID:        id,
		Link:      link,
		Comment:   comment,
		Archive:   intToArchive(archive),
		CreatedAt: createdAt,
	}, nil
}

func collectLinks(rows *sql.Rows) ([]*domain.Link, error) {
	var links []*domain.Link
	for rows.Next() {
		link, err := scanLink(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}
	return links, nil
}

// The archive enum crosses the storage boundary as a small integer; the
// mapping lives here and nowhere else.

func archiveToInt(s domain.ArchiveState) int64 {
	if s == domain.StateArchived {
		return 1
	}
	return 0
}

func intToArchive(n int64) domain.ArchiveState {
	if n == 1 {
		return domain.StateArchived
	}
	return domain.StateQueue
}
