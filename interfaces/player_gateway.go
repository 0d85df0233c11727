package interfaces

import (
	"context"

	"arenamanager/domain"
)

// PlayerGateway is the host's view of connected players: presence, position,
// teleportation, spectator mode and ambiance playback. Only players connected
// to this coordinating process are visible. Mutating calls (Teleport,
// SetSpectator) must only run on the coordinating execution context.
//
//go:generate moq -stub -out mock/player_gateway.go -pkg mock . PlayerGateway
type PlayerGateway interface {
	IsOnline(subjectID string) bool
	LocationOf(subjectID string) (domain.Location, bool)
	Teleport(ctx context.Context, subjectID string, location domain.Location) error
	IsSpectator(subjectID string) bool
	SetSpectator(ctx context.Context, subjectID string, spectator bool) error
	PlaySound(subjectID string, track string, volume float32, pitch float32)
	StopSound(subjectID string, track string)
	SendMessage(subjectID string, message string)
}
