package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

// ErrNoSnapshot reports that the snapshot file does not exist yet.
var ErrNoSnapshot = errors.New("snapshot not found")

// Loader reads the current snapshot.
type Loader interface {
	Load() ([]domaingames.TeamView, error)
}

// FSStore loads the snapshot from the filesystem.
type FSStore struct {
	path string
}

// NewFSStore constructs an FS-backed snapshot store reading path.
func NewFSStore(path string) *FSStore {
	return &FSStore{path: path}
}

// Load reads and decodes the snapshot file.
func (s *FSStore) Load() ([]domaingames.TeamView, error) {
	if s == nil || s.path == "" {
		return nil, errors.New("snapshot store not configured")
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	defer f.Close()

	var views []domaingames.TeamView
	if err := json.NewDecoder(f).Decode(&views); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}
	return views, nil
}
