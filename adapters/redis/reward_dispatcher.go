package redis

import (
	"context"

	"github.com/go-kit/log"

	"arenamanager/helpers"
)

// rewardDispatcher implements interfaces.RewardDispatcher by handing the
// already-expanded reward action to the game host as a console command.
// Fire and forget: the caller logs publish failures and keeps rolling.
type rewardDispatcher struct {
	bridge *HostBridge
	logger log.Logger
}

// NewRewardDispatcher creates a RewardDispatcher backed by the host bridge.
// Panics on nil bridge or logger.
func NewRewardDispatcher(bridge *HostBridge, logger log.Logger) *rewardDispatcher {
	return &rewardDispatcher{
		bridge: helpers.NilPanic(bridge, "adapters.redis.reward_dispatcher.go: bridge is required"),
		logger: log.With(helpers.NilPanic(logger, "adapters.redis.reward_dispatcher.go: logger is required"), "component", "reward_dispatcher"),
	}
}

// Dispatch publishes one console-command action to the host.
func (d *rewardDispatcher) Dispatch(ctx context.Context, action string) error {
	return d.bridge.publish(ctx, hostCommand{Op: "console_command", Action: action})
}
