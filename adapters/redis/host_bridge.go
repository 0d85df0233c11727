package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"arenamanager/domain"
	"arenamanager/helpers"
)

const (
	// hostCommandChannel carries commands from this service to the game host.
	hostCommandChannel = "arena:host:commands"
	// hostReplyKeyPrefix prefixes the per-call reply lists the host pushes to.
	hostReplyKeyPrefix = "arena:host:reply"
)

// wireLocation mirrors domain.Location on the host command channel.
type wireLocation struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float32 `json:"yaw"`
	Pitch float32 `json:"pitch"`
}

func toWireLocation(l domain.Location) *wireLocation {
	return &wireLocation{World: l.World, X: l.X, Y: l.Y, Z: l.Z, Yaw: l.Yaw, Pitch: l.Pitch}
}

// wireRegion is an inclusive block region plus the world it lives in.
type wireRegion struct {
	World string `json:"world"`
	MinX  int    `json:"min_x"`
	MinY  int    `json:"min_y"`
	MinZ  int    `json:"min_z"`
	MaxX  int    `json:"max_x"`
	MaxY  int    `json:"max_y"`
	MaxZ  int    `json:"max_z"`
}

// hostCommand is the single envelope for every host-bound operation. Op
// selects the operation; the remaining fields are op-specific and omitted
// when unused. ReplyKey, when set, names the Redis list the host must push
// exactly one hostReply to.
type hostCommand struct {
	Op        string        `json:"op"`
	ReplyKey  string        `json:"reply_key,omitempty"`
	SubjectID string        `json:"subject_id,omitempty"`
	EntityID  string        `json:"entity_id,omitempty"`
	ScriptID  string        `json:"script_id,omitempty"`
	Level     int           `json:"level,omitempty"`
	Blueprint string        `json:"blueprint,omitempty"`
	Action    string        `json:"action,omitempty"`
	Track     string        `json:"track,omitempty"`
	Message   string        `json:"message,omitempty"`
	Volume    float32       `json:"volume,omitempty"`
	Pitch     float32       `json:"pitch,omitempty"`
	Spectator *bool         `json:"spectator,omitempty"`
	Location  *wireLocation `json:"location,omitempty"`
	Region    *wireRegion   `json:"region,omitempty"`
}

// hostReply is the host's answer to a command that carried a ReplyKey.
type hostReply struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
	EntityID string `json:"entity_id,omitempty"`
}

// HostBridge sends commands to the game host over Redis. Fire-and-forget
// operations are a single publish; operations that need an answer publish a
// command carrying a fresh reply-list key and block on BLPOP until the host
// pushes a reply or the deadline passes. Errors are opaque; callers wrap or
// classify them.
type HostBridge struct {
	client       redis.UniversalClient
	logger       log.Logger
	replyTimeout time.Duration
}

// NewHostBridge creates the bridge. replyTimeout bounds every round-trip
// call; it must be positive. Panics on nil client or logger.
func NewHostBridge(client redis.UniversalClient, replyTimeout time.Duration, logger log.Logger) *HostBridge {
	if replyTimeout <= 0 {
		panic("adapters.redis.host_bridge.go: replyTimeout must be positive")
	}
	return &HostBridge{
		client:       helpers.NilPanic(client, "adapters.redis.host_bridge.go: client is required"),
		logger:       log.With(helpers.NilPanic(logger, "adapters.redis.host_bridge.go: logger is required"), "component", "host_bridge"),
		replyTimeout: replyTimeout,
	}
}

// publish sends one fire-and-forget command.
func (b *HostBridge) publish(ctx context.Context, cmd hostCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshaling host command %s: %w", cmd.Op, err)
	}
	if err := b.client.Publish(ctx, hostCommandChannel, payload).Err(); err != nil {
		return fmt.Errorf("publishing host command %s: %w", cmd.Op, err)
	}
	return nil
}

// call sends one command and waits for the host's reply on a dedicated list.
// The reply list is transient; nobody else ever pushes to it.
func (b *HostBridge) call(ctx context.Context, cmd hostCommand) (hostReply, error) {
	cmd.ReplyKey = hostReplyKeyPrefix + ":" + uuid.NewString()
	if err := b.publish(ctx, cmd); err != nil {
		return hostReply{}, err
	}

	vals, err := b.client.BLPop(ctx, b.replyTimeout, cmd.ReplyKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return hostReply{}, fmt.Errorf("host did not answer %s within %s", cmd.Op, b.replyTimeout)
		}
		return hostReply{}, fmt.Errorf("waiting for host reply to %s: %w", cmd.Op, err)
	}
	// BLPop returns [key, value].
	if len(vals) != 2 {
		return hostReply{}, fmt.Errorf("unexpected BLPOP result for %s: %v", cmd.Op, vals)
	}

	var reply hostReply
	if err := json.Unmarshal([]byte(vals[1]), &reply); err != nil {
		return hostReply{}, fmt.Errorf("unmarshaling host reply to %s: %w", cmd.Op, err)
	}
	if !reply.OK {
		return reply, fmt.Errorf("host rejected %s: %s", cmd.Op, reply.Error)
	}
	return reply, nil
}
