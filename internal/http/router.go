package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin and metricsHandler may be nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, metricsHandler nethttp.Handler, metricsPath string) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games", handler.Games)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.Refresh)
	}
	if metricsHandler != nil {
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		mux.Handle(metricsPath, metricsHandler)
	}
	return mux
}
