package worker

import (
	"context"
)

// Worker is the common contract for background workers.
type Worker interface {
	// Start runs the worker until ctx is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop signals the worker to shut down.
	Stop() error

	// Name identifies the worker in logs.
	Name() string
}
