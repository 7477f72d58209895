package config

import (
	"flag"
	"strings"
)

// ParseFlags applies command-line overrides on top of cfg. Only flags that were set override.
func ParseFlags(cfg Config, name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	tz := fs.String("tz", cfg.Timezone, "IANA timezone used for display times")
	team := fs.String("team", cfg.FavoriteTeam, "favorite team: code or name, e.g. POR or thorns")
	snapshot := fs.String("snapshot", cfg.SnapshotPath, "path of the shared snapshot file")
	rosterPath := fs.String("roster", cfg.RosterPath, "YAML team table (defaults to the built-in roster)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Timezone = strings.TrimSpace(*tz)
	cfg.FavoriteTeam = strings.TrimSpace(*team)
	cfg.SnapshotPath = strings.TrimSpace(*snapshot)
	cfg.RosterPath = strings.TrimSpace(*rosterPath)
	return cfg, nil
}
