package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}()

	ctx := context.Background()

	data, err := store.Load(ctx, KeyTasks)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil for absent key, got %q", data)
	}

	doc := []byte(`[{"title":"Essay draft","priority":"high"}]`)
	if err := store.Save(ctx, KeyTasks, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(ctx, KeyTasks)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(loaded, doc) {
		t.Errorf("Load() = %q, want %q", loaded, doc)
	}

	// Save replaces, including with the empty collection.
	if err := store.Save(ctx, KeyTasks, []byte(`[]`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err = store.Load(ctx, KeyTasks)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(loaded) != `[]` {
		t.Errorf("expected empty collection, got %q", loaded)
	}
}

func TestSQLiteStore_CreatesDataDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "planner.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSQLiteStore_RequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := NewSQLiteStore(""); err == nil {
		t.Error("expected an error for an empty path")
	}
}
