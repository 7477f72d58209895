package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/poller"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/roster"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/store"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/testutil"
)

var publishedAt = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func seededStore() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.SetViews([]domaingames.TeamView{
		{EventID: "1", Team: "POR", Location: domaingames.LocationAway},
		{EventID: "2", Team: "CHI", Location: domaingames.LocationAway},
		{EventID: "1", Team: "SD", Location: domaingames.LocationHome},
		{EventID: "2", Team: "KC", Location: domaingames.LocationHome},
	}, publishedAt)
	return s
}

func resolver() TeamResolver {
	return roster.Default().Resolve
}

func TestHealth(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(http.HandlerFunc(h.Health), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	if rr.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("expected Allow header, got %q", rr.Header().Get("Allow"))
	}
}

func TestHealthShuttingDown(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestReadyFollowsPollerStatus(t *testing.T) {
	status := poller.Status{}
	h := NewHandler(nil, nil, nil, func() poller.Status { return status })

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	if !strings.Contains(rr.Body.String(), "not ready") {
		t.Fatalf("expected not ready message, got %s", rr.Body.String())
	}

	status = poller.Status{LastSuccess: publishedAt}
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	status = poller.Status{LastSuccess: publishedAt, ConsecutiveFailures: 3, LastError: "disk full"}
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	if !strings.Contains(rr.Body.String(), "disk full") {
		t.Fatalf("expected last error surfaced, got %s", rr.Body.String())
	}
}

func TestReadyWithoutPoller(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestGamesReturnsAllViews(t *testing.T) {
	h := NewHandler(seededStore(), resolver(), nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp GamesResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Views) != 4 || resp.Views[0].Team != "POR" {
		t.Fatalf("unexpected views %+v", resp.Views)
	}
	if resp.UpdatedAt != "2025-06-01T18:00:00Z" {
		t.Fatalf("unexpected updated_at %q", resp.UpdatedAt)
	}
}

func TestGamesFiltersByResolvedTeam(t *testing.T) {
	h := NewHandler(seededStore(), resolver(), nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games?team=thorns", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp GamesResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Team != "POR" || len(resp.Views) != 2 {
		t.Fatalf("expected both sides of the POR event, got %+v", resp)
	}
}

func TestGamesUnknownTeam(t *testing.T) {
	h := NewHandler(seededStore(), resolver(), nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games?team=zzzzzz", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestGamesWithoutResolverUsesCode(t *testing.T) {
	h := NewHandler(seededStore(), nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games?team=kc", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp GamesResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Team != "KC" || len(resp.Views) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestGamesBeforeFirstSnapshot(t *testing.T) {
	h := NewHandler(store.NewMemoryStore(), nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), `"views":[]`) {
		t.Fatalf("expected empty views array, got %s", rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "updated_at") {
		t.Fatalf("expected no updated_at before first snapshot")
	}
}

func TestGamesWithoutStore(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestGamesRejectsPost(t *testing.T) {
	h := NewHandler(seededStore(), nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodPost, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
