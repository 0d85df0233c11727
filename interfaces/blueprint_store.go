package interfaces

import (
	"context"

	"arenamanager/domain"
)

// Blueprint is one loaded structure blueprint. Geometry is read once at load
// time; the block payload stays opaque to the core.
//
//go:generate moq -stub -out mock/blueprint.go -pkg mock . Blueprint
type Blueprint interface {
	Dimensions() domain.Vec3
	OriginOffset() domain.Vec3
}

// BlueprintStore loads structure blueprints and mutates world regions with
// them. Implementations wrap the host's structure engine; paste and clear are
// I/O and CPU heavy and must only be invoked from a background worker. Errors
// are opaque failures, not a typed taxonomy.
//
//go:generate moq -stub -out mock/blueprint_store.go -pkg mock . BlueprintStore
type BlueprintStore interface {
	Load(path string) (Blueprint, error)
	Paste(ctx context.Context, blueprint Blueprint, origin domain.Location) error
	ClearRegion(ctx context.Context, region domain.Region) error
}
