// Package snapshots persists the selected team views as a single JSON file shared between processes.
package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

// snapshotMode lets a display process running as another user replace the file.
const snapshotMode os.FileMode = 0o666

var errWriterNotConfigured = errors.New("snapshot writer not configured")

// Writer replaces the snapshot file atomically.
type Writer struct {
	path string
}

// NewWriter constructs a writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path exposes the snapshot location.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// WriteSnapshot writes views as an indented JSON array. Readers never observe a partial file:
// content goes to a sibling temp file that is renamed over the target.
func (w *Writer) WriteSnapshot(views []domaingames.TeamView) error {
	if w == nil || w.path == "" {
		return errWriterNotConfigured
	}
	if views == nil {
		views = []domaingames.TeamView{}
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(w.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, snapshotMode); err != nil {
		return err
	}
	// WriteFile honours the umask; chmod explicitly.
	if err := os.Chmod(tmp, snapshotMode); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
