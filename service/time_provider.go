package service

import (
	"time"

	"arenamanager/helpers"
	"arenamanager/interfaces"
)

// timeProvider implements interfaces.TimeProvider. It returns the current time
// via the injected now func. Built in cmd/main with time.Now().UTC; tests
// inject a fixed time.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

// Now returns current time from the injected function.
func (t *timeProvider) Now() time.Time {
	return t.now()
}
