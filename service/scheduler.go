package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"arenamanager/helpers"
	"arenamanager/interfaces"
)

// ErrSchedulerClosed is returned by RunSync after Close has been called.
var ErrSchedulerClosed = errors.New("scheduler closed")

// hostScheduler implements interfaces.HostScheduler. A single run goroutine
// consumes the sync queue one task at a time, so everything submitted via
// RunSync observes the live world without further locking. RunAsync work is
// bounded by a worker semaphore; RunLater uses plain timers and fires on a
// background goroutine.
type hostScheduler struct {
	logger log.Logger

	syncQueue chan syncTask
	workerSem chan struct{}

	mu     sync.Mutex // guards closed against wg.Add racing Close's Wait
	closed bool

	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup // run loop + in-flight async work
}

type syncTask struct {
	fn   func()
	done chan struct{}
}

// NewHostScheduler creates the scheduler and starts its coordinating run
// loop.
//
// Parameters:
//   - workers: upper bound on concurrently running RunAsync tasks. Must be
//     positive.
//   - logger: logger. Must be non-nil.
//
// Returns: started interfaces.HostScheduler. Stop it with Close.
//
// Called from: main.
func NewHostScheduler(workers int, logger log.Logger) interfaces.HostScheduler {
	helpers.NilPanic(logger, "service.scheduler.go: logger is required")
	if workers <= 0 {
		panic("service.scheduler.go: workers must be positive")
	}

	s := &hostScheduler{
		logger:    logger,
		syncQueue: make(chan syncTask),
		workerSem: make(chan struct{}, workers),
		quit:      make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// run is the coordinating loop. It exits when quit is closed and the sync
// queue has been drained of tasks that were already accepted.
func (s *hostScheduler) run() {
	defer s.wg.Done()
	for {
		select {
		case task := <-s.syncQueue:
			task.fn()
			close(task.done)
		case <-s.quit:
			// Drain tasks that won the submit race before quit closed.
			for {
				select {
				case task := <-s.syncQueue:
					task.fn()
					close(task.done)
				default:
					return
				}
			}
		}
	}
}

// RunSync submits fn to the coordinating loop and blocks until it has run.
//
// Parameters:
//   - ctx: bounds the wait for submission and completion. When ctx expires
//     after submission the call returns ctx.Err() but fn still runs.
//   - fn: work that touches live-world state. Must not call RunSync itself;
//     the loop is single-threaded and would deadlock.
//
// Returns: nil once fn has run, ctx.Err() on expiry, ErrSchedulerClosed when
// the scheduler shut down before fn could be accepted.
//
// Called from: orchestrator, workflow.
func (s *hostScheduler) RunSync(ctx context.Context, fn func()) error {
	task := syncTask{fn: fn, done: make(chan struct{})}
	select {
	case s.syncQueue <- task:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.quit:
		return ErrSchedulerClosed
	}
	select {
	case <-task.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// begin registers one background task with the waitgroup. The closed flag is
// checked under the same lock Close takes before Wait, so a submission can
// never Add after Wait has started on a drained group.
func (s *hostScheduler) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

// RunLater fires fn on a background goroutine after delay. Timers still
// pending at Close are abandoned without running.
//
// Called from: orchestrator (deferred retire after a boss falls).
func (s *hostScheduler) RunLater(delay time.Duration, fn func()) {
	if !s.begin() {
		level.Warn(s.logger).Log("msg", "timer dropped, scheduler closed")
		return
	}
	timer := time.NewTimer(delay)
	go func() {
		defer s.wg.Done()
		select {
		case <-timer.C:
			fn()
		case <-s.quit:
			timer.Stop()
		}
	}()
}

// RunAsync hands fn to the background worker pool. Submission never blocks:
// the task waits for a free worker on its own goroutine, so the coordinating
// loop can queue background work while the pool is saturated. Tasks still
// waiting at Close are dropped with a warning.
//
// Called from: orchestrator (blueprint paste and clear).
func (s *hostScheduler) RunAsync(fn func()) {
	if !s.begin() {
		level.Warn(s.logger).Log("msg", "async task dropped, scheduler closed")
		return
	}
	go func() {
		defer s.wg.Done()
		select {
		case s.workerSem <- struct{}{}:
		case <-s.quit:
			level.Warn(s.logger).Log("msg", "async task dropped, scheduler closed")
			return
		}
		defer func() { <-s.workerSem }()
		fn()
	}()
}

// Close stops the run loop and waits for in-flight work to finish. Idempotent.
//
// Called from: main on shutdown.
func (s *hostScheduler) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
	return nil
}
