// Package repository defines the data access interfaces for linkpile.
//
// This package provides the repository abstraction layer for persisting
// and retrieving domain entities. The actual implementation is in the
// sqlite subpackage.
//
// # Store Interface
//
// The Store interface defines all data access methods for links, tags, and
// the many-to-many associations between them, plus the composite AddEntry
// operation that creates a link with its tags atomically.
//
// # Error Kinds
//
// Storage engine failures are wrapped and propagated unmodified in kind.
// ErrNotFound signals a missing link or tag identifier and is tested with
// errors.Is. ReferentialError signals an association pointing at a row that
// does not exist and is tested with errors.As.
//
// # SQLite Implementation
//
// The sqlite implementation keeps three relations (links, tags, linktags)
// and migrates the schema idempotently on startup. AddEntry runs inside a
// single transaction so a failure partway through leaves no partial rows.
//
// # Testing
//
// The sqlite store is tested against in-memory databases, including a
// simulated mid-entry fault to verify the all-or-nothing guarantee.
package repository
