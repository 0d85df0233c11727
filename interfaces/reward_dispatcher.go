package interfaces

import "context"

// RewardDispatcher executes one already-expanded reward action (e.g. a console
// command handed to the host). Dispatch errors are logged by the caller and do
// not affect the rest of the reward rolls.
//
//go:generate moq -stub -out mock/reward_dispatcher.go -pkg mock . RewardDispatcher
type RewardDispatcher interface {
	Dispatch(ctx context.Context, action string) error
}
