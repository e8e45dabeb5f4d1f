// Package catalog holds the three datasets in an in-memory SQLite database.
//
// The Store creates series_summary, episode_ratings and top_seasons with
// primary and foreign keys, and Load replaces their contents in a single
// transaction. Key constraints are checked in Go before any write (Validate)
// and again by SQLite with foreign_keys enabled, so orphan or duplicate rows
// never reach the tables. Both paths report failure.ErrConstraint.
//
// The store is read-only after Load. Query returns structured Results and
// Prepare compiles a statement without executing it.
package catalog
