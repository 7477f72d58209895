package server

import (
	"context"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
	RunOnce(ctx context.Context) error
}
