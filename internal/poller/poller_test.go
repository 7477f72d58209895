package poller

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/providers"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/store"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/teststubs"
)

var fixedNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func liveGame() domaingames.GameRecord {
	return domaingames.GameRecord{
		EventID:   "live-1",
		Date:      fixedNow.Add(-30 * time.Minute),
		HomeTeam:  "SD",
		AwayTeam:  "POR",
		HomeScore: domaingames.Score(1),
		AwayScore: domaingames.Score(0),
		State:     domaingames.StateLive,
	}
}

func testConfig() Config {
	return Config{
		Roster: []string{"SD", "POR", "KC"},
		Window: providers.Window{LookbackDays: 1, LookaheadDays: 1},
		Meta: func(team string) domaingames.TeamMeta {
			return domaingames.TeamMeta{BgColor: "#" + team}
		},
		Interval: time.Hour,
	}
}

func newTestPoller(provider providers.GameProvider, writer SnapshotWriter, sink ViewSink, logger *slog.Logger, rec *metrics.Recorder) *Poller {
	p := New(provider, writer, sink, logger, rec, testConfig())
	p.now = func() time.Time { return fixedNow }
	return p
}

func TestRunOnceFetchesWindowAndWritesSnapshot(t *testing.T) {
	provider := &teststubs.StubProvider{ByDate: map[string][]domaingames.GameRecord{
		"2025-06-15": {liveGame()},
	}}
	writer := &teststubs.StubSnapshotWriter{}
	sink := store.NewMemoryStore()
	rec := metrics.NewRecorder()

	p := newTestPoller(provider, writer, sink, nil, rec)
	if err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dates := provider.SeenDates()
	if len(dates) != 3 || dates[0] != "2025-06-14" || dates[2] != "2025-06-16" {
		t.Fatalf("expected three-day window, got %v", dates)
	}
	if writer.Writes() != 1 {
		t.Fatalf("expected one write, got %d", writer.Writes())
	}
	views := writer.Last()
	if len(views) != 2 || views[0].Team != "POR" || views[1].Team != "SD" {
		t.Fatalf("expected away then home views, got %+v", views)
	}
	if views[1].BgColor != "#SD" {
		t.Fatalf("expected metadata joined, got %+v", views[1])
	}
	if len(sink.ListViews()) != 2 || !sink.UpdatedAt().Equal(fixedNow) {
		t.Fatalf("expected sink updated")
	}
	if writes, selected := rec.SnapshotWrites(); writes != 1 || selected != 1 {
		t.Fatalf("expected 1 write of 1 event, got %d/%d", writes, selected)
	}
	if p.Status().LastViews != 2 || !p.Status().IsReady() {
		t.Fatalf("unexpected status %+v", p.Status())
	}
}

func TestRunOnceEmptyWindowKeepsPreviousSnapshot(t *testing.T) {
	provider := &teststubs.StubProvider{ByDate: map[string][]domaingames.GameRecord{}}
	writer := &teststubs.StubSnapshotWriter{}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := newTestPoller(provider, writer, nil, logger, nil)
	if err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("empty window should not be an error: %v", err)
	}
	if writer.Writes() != 0 {
		t.Fatalf("expected no write for empty window")
	}
	if !strings.Contains(buf.String(), "no games found in date range") {
		t.Fatalf("expected empty-window log, got %s", buf.String())
	}
	if !p.Status().IsReady() {
		t.Fatalf("empty window is still a healthy cycle")
	}
}

func TestRunOnceSkipsFailingDays(t *testing.T) {
	provider := &teststubs.StubProvider{
		ByDate:   map[string][]domaingames.GameRecord{"2025-06-15": {liveGame()}},
		ErrDates: map[string]error{"2025-06-14": errors.New("502")},
	}
	writer := &teststubs.StubSnapshotWriter{}

	p := newTestPoller(provider, writer, nil, nil, nil)
	if err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.Writes() != 1 {
		t.Fatalf("expected snapshot from remaining days")
	}
}

func TestRunOnceWriteFailureCountsAsFailure(t *testing.T) {
	provider := &teststubs.StubProvider{Games: []domaingames.GameRecord{liveGame()}}
	writer := &teststubs.StubSnapshotWriter{Err: errors.New("disk full")}
	sink := store.NewMemoryStore()

	p := newTestPoller(provider, writer, sink, nil, nil)
	if err := p.RunOnce(context.Background()); err == nil {
		t.Fatal("expected write error")
	}
	status := p.Status()
	if status.ConsecutiveFailures != 1 || status.LastError != "disk full" || status.IsReady() {
		t.Fatalf("unexpected status %+v", status)
	}
	if len(sink.ListViews()) != 0 {
		t.Fatalf("sink should not see unwritten snapshot")
	}

	writer.Err = nil
	if err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status().ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset")
	}
}

func TestRunOnceCancelledContext(t *testing.T) {
	provider := &teststubs.StubProvider{Games: []domaingames.GameRecord{liveGame()}}
	writer := &teststubs.StubSnapshotWriter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newTestPoller(provider, writer, nil, nil, nil)
	if err := p.RunOnce(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if writer.Writes() != 0 {
		t.Fatalf("expected no write after cancellation")
	}
}

func TestRunOnceTagsLogsWithCycleID(t *testing.T) {
	provider := &teststubs.StubProvider{Games: []domaingames.GameRecord{liveGame()}}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := newTestPoller(provider, &teststubs.StubSnapshotWriter{}, nil, logger, nil)
	_ = p.RunOnce(context.Background())

	if !strings.Contains(buf.String(), "cycle_id=") {
		t.Fatalf("expected cycle id in logs, got %s", buf.String())
	}
}

func TestPollerStartRefreshesImmediately(t *testing.T) {
	provider := &teststubs.StubProvider{
		Games:  []domaingames.GameRecord{liveGame()},
		Notify: make(chan struct{}),
	}
	p := New(provider, &teststubs.StubSnapshotWriter{}, nil, nil, nil, Config{Roster: []string{"SD"}, Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}
	cancel()
	_ = p.Stop(context.Background())
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	provider := &teststubs.StubProvider{Notify: make(chan struct{})}
	p := New(provider, &teststubs.StubSnapshotWriter{}, nil, nil, nil, Config{Interval: 5 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)
	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	cancel()
	_ = p.Stop(context.Background())
	time.Sleep(10 * time.Millisecond)

	callsAfterStop := provider.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if provider.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional fetches after stop; before=%d after=%d", callsAfterStop, provider.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubProvider{}, &teststubs.StubSnapshotWriter{}, nil, nil, nil, Config{})
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartReturnsWhenAlreadyStarted(t *testing.T) {
	p := New(&teststubs.StubProvider{}, &teststubs.StubSnapshotWriter{}, nil, nil, nil, Config{})
	p.started = true
	p.Start(context.Background())
	if p.ticker != nil {
		t.Fatalf("expected ticker not to be created when already started")
	}
}

func TestPollerDefaults(t *testing.T) {
	p := New(&teststubs.StubProvider{}, nil, nil, nil, nil, Config{})
	if p.cfg.Interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.cfg.Interval)
	}
	if p.cfg.Location != time.UTC {
		t.Fatalf("expected UTC default location")
	}
}

func TestPollerNilWriterStillPublishesToSink(t *testing.T) {
	provider := &teststubs.StubProvider{Games: []domaingames.GameRecord{liveGame()}}
	sink := store.NewMemoryStore()
	p := newTestPoller(provider, nil, sink, nil, nil)
	if err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.ListViews()) != 2 {
		t.Fatalf("expected sink populated")
	}
}

func TestPollerProviderExposesWrappedProvider(t *testing.T) {
	provider := &teststubs.StubProvider{}
	p := New(provider, nil, nil, nil, nil, Config{})
	if got := p.Provider(); got != provider {
		t.Fatalf("expected provider returned")
	}
}

func BenchmarkPollerRunOnce(b *testing.B) {
	provider := &teststubs.StubProvider{Games: []domaingames.GameRecord{liveGame()}}
	p := New(provider, &teststubs.StubSnapshotWriter{}, nil, nil, nil, testConfig())
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.RunOnce(ctx)
	}
}
