package testutil

import (
	"path/filepath"
	"testing"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/snapshots"
)

// NewTempWriter returns a snapshot writer targeting a file in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(filepath.Join(t.TempDir(), "schedule.json"))
}

// WriteSnapshot writes views, failing the test on error.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, views []domaingames.TeamView) {
	t.Helper()
	if err := w.WriteSnapshot(views); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", w.Path(), err)
	}
}
