package server

import "time"

// /games responses are a few kilobytes, so every request phase stays short.
const (
	readHeaderTimeout = 2 * time.Second
	readTimeout       = 5 * time.Second
	writeTimeout      = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override. It stays below the refresh interval so a
// restart never skips a cycle.
var shutdownTimeout = 10 * time.Second
