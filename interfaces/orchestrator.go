package interfaces

import (
	"context"

	"arenamanager/domain"
)

// ArenaOrchestrator drives the arena instance lifecycle. Provision builds a
// new instance for a theme (heavy work on the background pool, bounded by the
// provision timeout); Activate teleports members in and spawns the boss;
// Retire tears an instance down and releases its slot. OnBossDeath and
// OnMemberDefeated are the termination triggers fed by the host's listeners;
// Shutdown drains every live instance.
//
//go:generate moq -stub -out mock/orchestrator.go -pkg mock . ArenaOrchestrator
type ArenaOrchestrator interface {
	Provision(ctx context.Context, themeID string) (*domain.ArenaInstance, error)
	Activate(ctx context.Context, instance *domain.ArenaInstance, memberIDs []string, boss *domain.BossDefinition) error
	Retire(ctx context.Context, instance *domain.ArenaInstance) error
	OnBossDeath(ctx context.Context, entityID string, scriptID string)
	OnMemberDefeated(ctx context.Context, subjectID string)
	Shutdown(ctx context.Context) error
}
