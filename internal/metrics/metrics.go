package metrics

import (
	"sync"
	"time"
)

type displayStats struct {
	goals          map[string]int
	reloads        int
	reloadFailures int
	lastSelected   int
	snapshotWrites int
}

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastWait        time.Duration
	lastCallLatency time.Duration
}

// Recorder captures in-memory counters and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	display displayStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*providerStats),
		display: displayStats{goals: make(map[string]int)},
		otel:    otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a call waited on the client-side limiter and stores the last wait.
func (r *Recorder) RecordRateLimit(provider string, wait time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if wait > 0 {
		stats.lastWait = wait
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRateLimit(provider, wait)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastLimiterWait returns the most recent limiter wait recorded for a provider.
func (r *Recorder) LastLimiterWait(provider string) time.Duration {
	return r.Snapshot(provider).LastLimiterWait
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastLimiterWait  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastLimiterWait:  stats.lastWait,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// RecordSelection tracks how many events a refresh selected and whether the snapshot was written.
func (r *Recorder) RecordSelection(selected int, written bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.display.lastSelected = selected
	if written {
		r.display.snapshotWrites++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSelection(selected, written)
	}
}

// RecordSnapshotReload tracks consumer reloads; a failed reload keeps the previous copy.
func (r *Recorder) RecordSnapshotReload(err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.display.reloads++
	if err != nil {
		r.display.reloadFailures++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordReload(err)
	}
}

// RecordGoal counts a detected goal for a team.
func (r *Recorder) RecordGoal(team string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.display.goals[team]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGoal(team)
	}
}

// Goals returns the goals recorded for a team.
func (r *Recorder) Goals(team string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.display.goals[team]
}

// Reloads returns total and failed snapshot reloads.
func (r *Recorder) Reloads() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.display.reloads, r.display.reloadFailures
}

// SnapshotWrites returns how many refreshes wrote a snapshot, and the size of the latest selection.
func (r *Recorder) SnapshotWrites() (writes, lastSelected int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.display.snapshotWrites, r.display.lastSelected
}

// ensureStatsLocked requires r.mu to be held.
func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
