package helpers

import (
	"time"
)

// TestNow returns a fixed time (2026-03-02 12:00:00 UTC) for deterministic tests (instance timestamps, logs, etc.).
//
// Parameters: none.
//
// Returns: time.Time in UTC.
//
// Called from tests (e.g. service/registry_test, service/orchestrator_test) when a fixed "current" time is needed.
func TestNow() time.Time {
	return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
}
