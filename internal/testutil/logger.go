package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
)

// NewBufferLogger returns a debug-level text logger built the way the binaries build theirs, plus
// the buffer it writes to.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "debug", Format: "text", Output: &buf})
	return logger, &buf
}
