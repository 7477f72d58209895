package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds runtime configuration for both processes.
type Config struct {
	Port           string
	PollInterval   Duration
	ReloadInterval Duration
	DwellTime      Duration
	GoalDuration   Duration
	IdleWait       Duration
	Timezone       string
	FavoriteTeam   string
	SnapshotPath   string
	LookbackDays   int
	LookaheadDays  int
	Provider       string
	ESPN           ESPNConfig
	RosterPath     string
	FontDir        string
	AdminToken     string
	Log            LogConfig
	Metrics        MetricsConfig
}

// ESPNConfig controls how we talk to the ESPN scoreboard feed.
type ESPNConfig struct {
	BaseURL           string
	RequestsPerSecond float64
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		PollInterval:   durationEnvOrDefault(envPollInterval, defaultPollInterval),
		ReloadInterval: durationEnvOrDefault(envReloadInterval, defaultReloadInterval),
		DwellTime:      durationEnvOrDefault(envDwellTime, defaultDwellTime),
		GoalDuration:   durationEnvOrDefault(envGoalDuration, defaultGoalDuration),
		IdleWait:       durationEnvOrDefault(envIdleWait, defaultIdleWait),
		Timezone:       envOrDefault(envTimezone, defaultTimezone),
		FavoriteTeam:   strings.ToUpper(strings.TrimSpace(envOrDefault(envFavoriteTeam, ""))),
		SnapshotPath:   envOrDefault(envSnapshotPath, defaultSnapshotPath),
		LookbackDays:   nonNegativeIntEnvOrDefault(envLookbackDays, defaultLookbackDays),
		LookaheadDays:  nonNegativeIntEnvOrDefault(envLookaheadDays, defaultLookaheadDays),
		Provider:       strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		ESPN: ESPNConfig{
			BaseURL:           envOrDefault(envESPNBaseURL, ""),
			RequestsPerSecond: floatEnvOrDefault(envESPNRate, defaultESPNRate),
		},
		RosterPath: envOrDefault(envRosterPath, ""),
		FontDir:    envOrDefault(envFontDir, ""),
		AdminToken: envOrDefault(envAdminToken, ""),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

// Location resolves the display timezone. An unknown zone is a startup error.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
