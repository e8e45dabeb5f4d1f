package catalog

import (
	"context"
	"errors"
	"testing"

	"seriesreport/internal/dataset"
	"seriesreport/internal/failure"
)

func TestForeignKeysEnforcedBySQLite(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	var enabled int
	if err := store.db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("read pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", enabled)
	}

	// Bypass Validate to prove the database itself rejects orphans.
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = insertEpisodes(ctx, tx, []dataset.Episode{{Code: "missing", Season: 1, Episode: 1, Rating: 3}})
	if err == nil {
		t.Fatal("expected foreign key failure")
	}
	if !errors.Is(err, failure.ErrConstraint) {
		t.Fatalf("expected constraint marker, got %v", err)
	}
}

func TestPrimaryKeyEnforcedBySQLite(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows := []dataset.Series{{Code: "S1", Title: "Foo"}, {Code: "S1", Title: "Foo again"}}
	if err := insertSeries(ctx, tx, rows); !errors.Is(err, failure.ErrConstraint) {
		t.Fatalf("expected constraint error for duplicate code, got %v", err)
	}
}
