package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/config"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/teststubs"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/testutil"
)

func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return metrics.NewRecorder(), handler, func(context.Context) error { return nil }, nil
}

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig(t)
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv := newServerWithProvider(cfg, nil, nil, &teststubs.StubProvider{})
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsSetup(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics = config.MetricsConfig{Enabled: false}

	srv := newServerWithProvider(cfg, nil, nil, &teststubs.StubProvider{})
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	cfg := testConfig(t)
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv := newServerWithMetrics(cfg, nil, nil, nil, &teststubs.StubProvider{}, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no shutdown hook for injected recorder")
	}
}

func TestBuildMetricsSeparatePortStartsServer(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	rec, srv, inline, stop := buildMetrics(config.Config{
		Port:    "4000",
		Metrics: config.MetricsConfig{Enabled: true, Port: "9999"},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if inline != nil {
		t.Fatalf("expected no inline handler with a dedicated port")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("unexpected metrics addr %s", srv.Addr())
	}
}

func TestBuildMetricsSharedPortMountsOnRouter(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	cfg := testConfig(t)
	cfg.Port = "4000"
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "4000", Path: "/internal/metrics"}

	srv := newServerWithProvider(cfg, nil, nil, &teststubs.StubProvider{})
	if srv.metricsServer != nil {
		t.Fatalf("expected metrics served inline")
	}
	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/internal/metrics", nil), http.StatusOK)
}
