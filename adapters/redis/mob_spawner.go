package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"arenamanager/domain"
	"arenamanager/helpers"
)

// bossEntityKeyPrefix prefixes the liveness keys the host maintains for
// scripted actors it spawned on our behalf. Key present means the actor is
// still alive in the world.
const bossEntityKeyPrefix = "boss_entity"

// mobSpawner implements interfaces.MobSpawner against the game host's
// scripted-actor engine. Spawn and Despawn are round-trip calls; liveness is
// read from the host-maintained entity keys.
type mobSpawner struct {
	bridge *HostBridge
	logger log.Logger
}

// NewMobSpawner creates a MobSpawner backed by the host bridge. Panics on nil
// bridge or logger.
func NewMobSpawner(bridge *HostBridge, logger log.Logger) *mobSpawner {
	return &mobSpawner{
		bridge: helpers.NilPanic(bridge, "adapters.redis.mob_spawner.go: bridge is required"),
		logger: log.With(helpers.NilPanic(logger, "adapters.redis.mob_spawner.go: logger is required"), "component", "mob_spawner"),
	}
}

// Spawn asks the host to spawn the scripted actor and returns the live entity
// id the host assigned.
func (s *mobSpawner) Spawn(ctx context.Context, scriptID string, location domain.Location, level int) (string, error) {
	reply, err := s.bridge.call(ctx, hostCommand{
		Op:       "spawn",
		ScriptID: scriptID,
		Level:    level,
		Location: toWireLocation(location),
	})
	if err != nil {
		return "", err
	}
	if reply.EntityID == "" {
		return "", fmt.Errorf("host confirmed spawn of %s without an entity id", scriptID)
	}
	return reply.EntityID, nil
}

// Despawn asks the host to remove the actor. The host answers OK for actors
// that already disappeared, so only real failures surface here.
func (s *mobSpawner) Despawn(ctx context.Context, entityID string) error {
	if _, err := s.bridge.call(ctx, hostCommand{Op: "despawn", EntityID: entityID}); err != nil {
		return err
	}
	return nil
}

// IsActive reports whether the host still tracks the actor as alive. Read
// failures are logged and reported as inactive.
func (s *mobSpawner) IsActive(ctx context.Context, entityID string) bool {
	rctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	n, err := s.bridge.client.Exists(rctx, bossEntityKeyPrefix+":"+entityID).Result()
	if err != nil {
		_ = level.Warn(s.logger).Log("msg", "entity liveness check failed", "entity_id", entityID, "err", err)
		return false
	}
	return n > 0
}
