package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

func sampleViews() []domaingames.TeamView {
	return []domaingames.TeamView{
		{EventID: "1", Date: "2025-06-01T19:00:00.000", State: domaingames.StateLive, Location: domaingames.LocationAway, Team: "POR", AwayScore: domaingames.Score(0), HomeScore: domaingames.Score(1)},
		{EventID: "1", Date: "2025-06-01T19:00:00.000", State: domaingames.StateLive, Location: domaingames.LocationHome, Team: "SD", AwayScore: domaingames.Score(0), HomeScore: domaingames.Score(1)},
	}
}

func TestWriterWritesIndentedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "schedule.json")
	w := NewWriter(path)

	if err := w.WriteSnapshot(sampleViews()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected snapshot file, got err %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n  {") {
		t.Fatalf("expected indented JSON array, got %s", data)
	}
	var decoded []domaingames.TeamView
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Team != "SD" {
		t.Fatalf("unexpected content %+v", decoded)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be gone, got %v", err)
	}
}

func TestWriterSetsWorldWritableMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	if err := NewWriter(path).WriteSnapshot(sampleViews()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != snapshotMode {
		t.Fatalf("expected mode %v, got %v", snapshotMode, info.Mode().Perm())
	}
}

func TestWriterReplacesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	w := NewWriter(path)
	if err := w.WriteSnapshot(sampleViews()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := w.WriteSnapshot(sampleViews()[:1]); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	views, err := NewFSStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected replaced snapshot, got %d views", len(views))
	}
}

func TestWriterEncodesNilAsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	if err := NewWriter(path).WriteSnapshot(nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %q", data)
	}
}

func TestWriterHandlesNilAndEmptyPath(t *testing.T) {
	var w *Writer
	if err := w.WriteSnapshot(sampleViews()); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if w.Path() != "" {
		t.Fatalf("expected empty path for nil writer")
	}
	if err := NewWriter("").WriteSnapshot(sampleViews()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
