package testsupport

import (
	"context"
	"testing"

	"seriesreport/internal/catalog"
	"seriesreport/internal/dataset"
)

// MustOpenStore opens an empty catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(context.Background(), nil)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustLoadStore opens a store and loads ds into it.
func MustLoadStore(t testing.TB, ds *dataset.Dataset) *catalog.Store {
	t.Helper()

	store := MustOpenStore(t)
	if err := store.Load(context.Background(), ds); err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	return store
}
