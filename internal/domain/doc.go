// Package domain defines the core domain types for the linkpile link tracker.
//
// # Core Types
//
// Link represents a saved link with its comment, archive state, and
// creation time. Tag is a unique grouping string. Entry is the transient
// input bundling a link, optional comment, and optional tag list for a
// single add operation.
//
// # Archive State
//
// A link starts in the queue (StateQueue) and transitions to StateArchived
// when marked read. Archived is terminal: nothing transitions a link back.
// The enum is mapped to a stored integer at the storage boundary only; the
// stored representation never leaks into this package.
//
// # Design Principles
//
// - No database or external dependencies
// - Pure domain logic without infrastructure concerns
// - Mutation only through defined transitions
package domain
