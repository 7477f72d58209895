package espn

import (
	"net/http"
	"strings"
)

func normalizeBaseURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(raw, "/")
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
