package config

import "time"

const (
	envPort           = "PORT"
	envPollInterval   = "POLL_INTERVAL"
	envReloadInterval = "RELOAD_INTERVAL"
	envDwellTime      = "DWELL_TIME"
	envGoalDuration   = "GOAL_DURATION"
	envIdleWait       = "IDLE_WAIT"
	envTimezone       = "TIMEZONE"
	envFavoriteTeam   = "FAVORITE_TEAM"
	envSnapshotPath   = "SNAPSHOT_PATH"
	envLookbackDays   = "LOOKBACK_DAYS"
	envLookaheadDays  = "LOOKAHEAD_DAYS"
	envProvider       = "PROVIDER"
	envESPNBaseURL    = "ESPN_BASE_URL"
	envESPNRate       = "ESPN_REQUESTS_PER_SECOND"
	envRosterPath     = "ROSTER_PATH"
	envFontDir        = "FONT_DIR"
	envAdminToken     = "ADMIN_TOKEN"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envMetricsPath    = "METRICS_PATH"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort           = "4000"
	defaultPollInterval   = 45 * Duration(time.Second)
	defaultReloadInterval = 45 * Duration(time.Second)
	defaultDwellTime      = 5 * Duration(time.Second)
	defaultGoalDuration   = 2 * Duration(time.Second)
	defaultIdleWait       = 10 * Duration(time.Second)
	defaultTimezone       = "America/Los_Angeles"
	defaultSnapshotPath   = "/tmp/nwsl_schedule.json"
	defaultLookbackDays   = 14
	defaultLookaheadDays  = 14
	defaultProvider       = "espn"
	// The feed tolerates bursts; 5/s keeps a 29-day window under six seconds.
	defaultESPNRate    = 5.0
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultMetricsPath = "/metrics"
	defaultService     = "nwsl-scoreboard"
)
