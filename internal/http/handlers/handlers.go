// Package handlers serves the producer's health, readiness and snapshot endpoints.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/poller"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/roster"
)

// ViewSource exposes the latest published views.
type ViewSource interface {
	ListViews() []domaingames.TeamView
	ViewsForTeam(team string) []domaingames.TeamView
	UpdatedAt() time.Time
}

// TeamResolver maps free-form team input to a roster code.
type TeamResolver func(query string) (string, error)

// Handler wires HTTP routes to the latest snapshot and poller health.
type Handler struct {
	views    ViewSource
	resolve  TeamResolver
	logger   *slog.Logger
	statusFn func() poller.Status
}

// GamesResponse is the /games payload.
type GamesResponse struct {
	UpdatedAt string                 `json:"updated_at,omitempty"`
	Team      string                 `json:"team,omitempty"`
	Views     []domaingames.TeamView `json:"views"`
}

// NewHandler constructs a Handler. resolve and statusFn may be nil.
func NewHandler(views ViewSource, resolve TeamResolver, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		views:    views,
		resolve:  resolve,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the poller has refreshed recently.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Games returns the latest published views, optionally narrowed to one team's event.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.views == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot store not configured", logger)
		return
	}

	resp := GamesResponse{}
	if at := h.views.UpdatedAt(); !at.IsZero() {
		resp.UpdatedAt = at.UTC().Format(time.RFC3339)
	}

	query := strings.TrimSpace(r.URL.Query().Get("team"))
	if query == "" {
		resp.Views = h.views.ListViews()
		logging.Info(logger, "served snapshot views", logging.FieldCount, len(resp.Views))
		writeJSON(w, http.StatusOK, resp, logger)
		return
	}

	team := strings.ToUpper(query)
	if h.resolve != nil {
		code, err := h.resolve(query)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, roster.ErrUnknownTeam) {
				status = http.StatusNotFound
			}
			logging.Warn(logger, "team lookup failed", logging.FieldTeam, query, logging.FieldError, err)
			writeError(w, r, status, err.Error(), logger)
			return
		}
		team = code
	}
	resp.Team = team
	resp.Views = h.views.ViewsForTeam(team)
	logging.Info(logger, "served team views", logging.FieldTeam, team, logging.FieldCount, len(resp.Views))
	writeJSON(w, http.StatusOK, resp, logger)
}
