package config

import "strings"

// MetricsConfig controls telemetry export. Only the refresher serves metrics; when Port equals the
// app port the handler is mounted on the main router at Path.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	Path         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	path := strings.TrimSpace(envOrDefault(envMetricsPath, defaultMetricsPath))
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		Path:         path,
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultService),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
