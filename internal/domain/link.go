package domain

import "time"

// ArchiveState marks where we "are" in reading a link: still waiting in the
// queue, or read and filed away. It is an enum rather than a bool so that
// further states (in-progress, re-read-later) can be added without touching
// callers.
type ArchiveState int

const (
	StateQueue ArchiveState = iota
	StateArchived
)

// String returns the human-readable name of the state
func (s ArchiveState) String() string {
	switch s {
	case StateQueue:
		return "queue"
	case StateArchived:
		return "archived"
	default:
		return "unknown"
	}
}

// ParseArchiveState maps a state name back to its ArchiveState.
// Unrecognized input defaults to StateQueue.
func ParseArchiveState(s string) ArchiveState {
	if s == "archived" {
		return StateArchived
	}
	return StateQueue
}

// Link represents a saved link: the link text itself, an optional comment,
// the archive state, and when it was added
type Link struct {
	ID        int64
	Link      string
	Comment   string
	Archive   ArchiveState
	CreatedAt time.Time
}

// IsRead reports whether the link has been read and archived
func (l *Link) IsRead() bool {
	return l.Archive == StateArchived
}
