package interfaces

import "time"

// TimeProvider provides the current time. Implementation is the real clock in
// prod and a fixed clock in tests.
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	Now() time.Time
}
