package storage

import (
	"context"
	"errors"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "progress", []byte("blob-a")); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, "progress")
	if err != nil || string(got) != "blob-a" {
		t.Fatalf("load: %q err=%v", got, err)
	}

	if err := store.Save(ctx, "progress", []byte("blob-b")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = store.Load(ctx, "progress")
	if string(got) != "blob-b" {
		t.Fatalf("expected latest value, got %q", got)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	if _, err := store.Load(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreDeleteIdempotent(t *testing.T) {
	store, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "settings", []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "settings"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "settings"); err != nil {
		t.Fatalf("delete of missing key must be a no-op, got %v", err)
	}
	if err := store.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("delete of never-written key must be a no-op, got %v", err)
	}
}

func TestOpenFileStoreRejectsEmptyPath(t *testing.T) {
	if _, err := OpenFileStore(""); err == nil {
		t.Fatal("expected error for empty base path")
	}
}
