/*
store.go - Persistence contract for the override overlay

PURPOSE:
  Defines the narrow interface the engine needs from storage. Implemented
  by store/sqlite (production) and store/memory (tests/dev).

CONTRACT:
  - Put upserts a single record keyed by date (merge semantics: last
    write wins, no history).
  - Delete is idempotent: deleting a date with no record is a success.
  - List returns the full override set; the dataset is bounded by the
    number of future Saturdays ever toggled, so no pagination.

ATOMICITY:
  Each call touches exactly one record; implementations guarantee
  per-record atomicity and nothing more. No cross-record transactions
  are required.

SEE ALSO:
  - store/sqlite/sqlite.go: SQLite implementation
  - store/memory/memory.go: In-memory implementation
*/
package leave

import "context"

// OverrideStore persists the sparse Saturday overlay.
type OverrideStore interface {
	// Put creates or replaces the override for rec.Date.
	Put(ctx context.Context, rec Override) error

	// Delete removes the override for date. Removing a non-existent
	// override is not an error.
	Delete(ctx context.Context, date string) error

	// List returns all overrides keyed by date.
	List(ctx context.Context) (map[string]Override, error)
}
