package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"os"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/http/requestutil"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
)

// RefreshFunc runs one producer cycle on demand.
type RefreshFunc func(ctx context.Context) error

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresh RefreshFunc
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables every admin route.
func NewAdminHandler(refresh RefreshFunc, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresh: refresh,
		token:   token,
		logger:  logger,
	}
}

// Refresh forces a refresh cycle instead of waiting for the next tick.
// Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.refresh == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", logger)
		return
	}

	if err := h.refresh(r.Context()); err != nil {
		logging.Error(logger, "admin refresh failed", err)
		writeError(w, r, http.StatusBadGateway, "refresh failed", logger)
		return
	}
	logging.Info(logger, "admin refresh complete")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(got), []byte("Bearer "+h.token)) == 1
}
