package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"

	"arenamanager/helpers"
	"arenamanager/interfaces"
)

const (
	// eventChannel carries world events from the game host back to this
	// service: scripted-actor deaths and arena member deaths.
	eventChannel = "arena:host:events"

	tagBossDeath   = "BOSS_DEATH"
	tagMemberDeath = "MEMBER_DEATH"
)

// hostEvent is one inbound world event. Tag selects the event; boss deaths
// carry the entity and script ids, member deaths the subject id.
type hostEvent struct {
	Tag       string `json:"tag"`
	EntityID  string `json:"entity_id,omitempty"`
	ScriptID  string `json:"script_id,omitempty"`
	SubjectID string `json:"subject_id,omitempty"`
}

// HostEventChannel is the Redis pub/sub bridge for the host's death
// listeners. It feeds the orchestrator's termination triggers; everything
// else (registry lookup, final-phase detection, reward rolls, retire) stays
// in the orchestrator.
type HostEventChannel struct {
	client redis.UniversalClient
	logger log.Logger
}

// NewHostEventChannel creates the bridge. Panics on nil client or logger.
func NewHostEventChannel(client redis.UniversalClient, logger log.Logger) *HostEventChannel {
	return &HostEventChannel{
		client: helpers.NilPanic(client, "adapters.redis.host_event_channel.go: client is required"),
		logger: log.With(helpers.NilPanic(logger, "adapters.redis.host_event_channel.go: logger is required"), "component", "host_event_channel"),
	}
}

// Listen subscribes to the event channel and dispatches decoded events to
// the orchestrator until ctx is cancelled. Malformed or foreign messages are
// logged and dropped.
//
// Called from: main, on its own goroutine.
func (c *HostEventChannel) Listen(ctx context.Context, orch interfaces.ArenaOrchestrator) error {
	helpers.NilPanic(orch, "adapters.redis.host_event_channel.go: orch is required")

	sub := c.client.Subscribe(ctx, eventChannel)
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing to %s: %w", eventChannel, err)
	}
	_ = level.Info(c.logger).Log("msg", "listening for host events", "channel", eventChannel)

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			c.handleMessage(ctx, orch, msg.Payload)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *HostEventChannel) handleMessage(ctx context.Context, orch interfaces.ArenaOrchestrator, payload string) {
	var event hostEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		_ = level.Warn(c.logger).Log("msg", "dropping malformed host event", "err", err)
		return
	}

	switch {
	case strings.EqualFold(event.Tag, tagBossDeath):
		if event.EntityID == "" && event.ScriptID == "" {
			_ = level.Warn(c.logger).Log("msg", "dropping boss death event without entity or script id")
			return
		}
		orch.OnBossDeath(ctx, event.EntityID, event.ScriptID)
	case strings.EqualFold(event.Tag, tagMemberDeath):
		if event.SubjectID == "" {
			_ = level.Warn(c.logger).Log("msg", "dropping member death event without subject id")
			return
		}
		orch.OnMemberDefeated(ctx, event.SubjectID)
	default:
		_ = level.Debug(c.logger).Log("msg", "ignoring event with foreign tag", "tag", event.Tag)
	}
}
