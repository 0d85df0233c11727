package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"

	"arenamanager/domain"
	"arenamanager/helpers"
)

// presenceKeyPrefix prefixes the per-player presence hashes the host
// maintains (fields: world, x, y, z, yaw, pitch, spectator). A missing key
// means the player is offline.
const presenceKeyPrefix = "player_presence"

// presenceReadTimeout bounds the lookups the no-context interface methods
// perform.
const presenceReadTimeout = 2 * time.Second

// playerGateway implements interfaces.PlayerGateway against the game host.
// Presence and position reads come from the host-maintained presence hashes;
// mutating and ambiance operations go out on the host command channel.
type playerGateway struct {
	bridge *HostBridge
	logger log.Logger
}

// NewPlayerGateway creates a PlayerGateway backed by the host bridge. Panics
// on nil bridge or logger.
func NewPlayerGateway(bridge *HostBridge, logger log.Logger) *playerGateway {
	return &playerGateway{
		bridge: helpers.NilPanic(bridge, "adapters.redis.player_gateway.go: bridge is required"),
		logger: log.With(helpers.NilPanic(logger, "adapters.redis.player_gateway.go: logger is required"), "component", "player_gateway"),
	}
}

func presenceKey(subjectID string) string {
	return presenceKeyPrefix + ":" + subjectID
}

// IsOnline reports whether a presence hash exists for the subject. Read
// failures are logged and treated as offline.
func (g *playerGateway) IsOnline(subjectID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), presenceReadTimeout)
	defer cancel()

	n, err := g.bridge.client.Exists(ctx, presenceKey(subjectID)).Result()
	if err != nil {
		_ = level.Warn(g.logger).Log("msg", "presence check failed", "subject_id", subjectID, "err", err)
		return false
	}
	return n > 0
}

// LocationOf reads the subject's last known position from the presence hash.
func (g *playerGateway) LocationOf(subjectID string) (domain.Location, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), presenceReadTimeout)
	defer cancel()

	fields, err := g.bridge.client.HGetAll(ctx, presenceKey(subjectID)).Result()
	if err != nil || len(fields) == 0 {
		if err != nil && !errors.Is(err, redis.Nil) {
			_ = level.Warn(g.logger).Log("msg", "presence read failed", "subject_id", subjectID, "err", err)
		}
		return domain.Location{}, false
	}

	loc := domain.Location{World: fields["world"]}
	loc.X, _ = strconv.ParseFloat(fields["x"], 64)
	loc.Y, _ = strconv.ParseFloat(fields["y"], 64)
	loc.Z, _ = strconv.ParseFloat(fields["z"], 64)
	yaw, _ := strconv.ParseFloat(fields["yaw"], 32)
	pitch, _ := strconv.ParseFloat(fields["pitch"], 32)
	loc.Yaw = float32(yaw)
	loc.Pitch = float32(pitch)
	return loc, true
}

// IsSpectator reads the spectator flag from the presence hash. Missing key or
// field means not a spectator.
func (g *playerGateway) IsSpectator(subjectID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), presenceReadTimeout)
	defer cancel()

	val, err := g.bridge.client.HGet(ctx, presenceKey(subjectID), "spectator").Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			_ = level.Warn(g.logger).Log("msg", "spectator read failed", "subject_id", subjectID, "err", err)
		}
		return false
	}
	return val == "1" || val == "true"
}

// Teleport asks the host to move the subject and waits for its confirmation.
func (g *playerGateway) Teleport(ctx context.Context, subjectID string, location domain.Location) error {
	_, err := g.bridge.call(ctx, hostCommand{
		Op:        "teleport",
		SubjectID: subjectID,
		Location:  toWireLocation(location),
	})
	return err
}

// SetSpectator asks the host to toggle spectator mode and waits for its
// confirmation.
func (g *playerGateway) SetSpectator(ctx context.Context, subjectID string, spectator bool) error {
	_, err := g.bridge.call(ctx, hostCommand{
		Op:        "set_spectator",
		SubjectID: subjectID,
		Spectator: &spectator,
	})
	return err
}

// PlaySound fires an ambiance track at the subject. Fire and forget.
func (g *playerGateway) PlaySound(subjectID string, track string, volume float32, pitch float32) {
	ctx, cancel := context.WithTimeout(context.Background(), presenceReadTimeout)
	defer cancel()

	err := g.bridge.publish(ctx, hostCommand{
		Op:        "play_sound",
		SubjectID: subjectID,
		Track:     track,
		Volume:    volume,
		Pitch:     pitch,
	})
	if err != nil {
		_ = level.Warn(g.logger).Log("msg", "play_sound publish failed", "subject_id", subjectID, "track", track, "err", err)
	}
}

// StopSound stops an ambiance track for the subject. Fire and forget.
func (g *playerGateway) StopSound(subjectID string, track string) {
	ctx, cancel := context.WithTimeout(context.Background(), presenceReadTimeout)
	defer cancel()

	err := g.bridge.publish(ctx, hostCommand{
		Op:        "stop_sound",
		SubjectID: subjectID,
		Track:     track,
	})
	if err != nil {
		_ = level.Warn(g.logger).Log("msg", "stop_sound publish failed", "subject_id", subjectID, "track", track, "err", err)
	}
}

// SendMessage delivers a chat message to the subject. Fire and forget.
func (g *playerGateway) SendMessage(subjectID string, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), presenceReadTimeout)
	defer cancel()

	err := g.bridge.publish(ctx, hostCommand{
		Op:        "send_message",
		SubjectID: subjectID,
		Message:   message,
	})
	if err != nil {
		_ = level.Warn(g.logger).Log("msg", "send_message publish failed", "subject_id", subjectID, "err", err)
	}
}
