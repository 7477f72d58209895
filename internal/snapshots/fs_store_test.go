package snapshots

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFSStoreLoadsWrittenSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	if err := NewWriter(path).WriteSnapshot(sampleViews()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	views, err := NewFSStore(path).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(views) != 2 || views[0].Team != "POR" || *views[0].HomeScore != 1 {
		t.Fatalf("unexpected views %+v", views)
	}
}

func TestFSStoreMissingFile(t *testing.T) {
	_, err := NewFSStore(filepath.Join(t.TempDir(), "missing.json")).Load()
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestFSStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	if err := os.WriteFile(path, []byte("[{"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := NewFSStore(path).Load()
	if err == nil || errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestFSStoreNotConfigured(t *testing.T) {
	var s *FSStore
	if _, err := s.Load(); err == nil {
		t.Fatal("expected error for nil store")
	}
}
