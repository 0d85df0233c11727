package interfaces

import (
	"context"

	"arenamanager/domain"
)

// MobSpawner drives the host's scripted-actor engine. Spawn creates the actor
// for a boss script at a location with a difficulty level and returns its live
// entity id. Despawn removes a live actor; despawning an actor that already
// disappeared is not an error. Must only be called from the coordinating
// execution context.
//
//go:generate moq -stub -out mock/mob_spawner.go -pkg mock . MobSpawner
type MobSpawner interface {
	Spawn(ctx context.Context, scriptID string, location domain.Location, level int) (string, error)
	Despawn(ctx context.Context, entityID string) error
	IsActive(ctx context.Context, entityID string) bool
}
