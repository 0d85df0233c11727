package interfaces

import (
	"context"
	"time"
)

// HostScheduler bridges the host's two execution domains. RunSync marshals fn
// onto the single coordinating context that owns all live-world mutation and
// waits for it to finish (error only when ctx expires first or the scheduler
// is closed); it must not be called from the coordinating context itself.
// RunLater fires fn on a background goroutine after a delay. RunAsync hands fn
// to the background worker pool for I/O/CPU-heavy work; submission never
// blocks, so it is safe to call from the coordinating context even when every
// worker is busy. Background work that ends by touching live-world state must
// marshal back via RunSync.
//
//go:generate moq -stub -out mock/scheduler.go -pkg mock . HostScheduler
type HostScheduler interface {
	RunSync(ctx context.Context, fn func()) error
	RunLater(delay time.Duration, fn func())
	RunAsync(fn func())
	Close() error
}
