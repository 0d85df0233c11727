package redis

import (
	"context"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"gopkg.in/yaml.v3"

	"arenamanager/domain"
	"arenamanager/helpers"
	"arenamanager/interfaces"
)

// blueprintDescriptor is the on-disk YAML sidecar describing one structure
// blueprint. The structure payload itself lives on the host; this service
// only needs the geometry and the name to paste by.
type blueprintDescriptor struct {
	Name       string    `yaml:"name"`
	Dimensions vecRecord `yaml:"dimensions"`
	Origin     vecRecord `yaml:"origin_offset"`
}

type vecRecord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// fileBlueprint is a loaded blueprint: geometry from the descriptor, the
// block payload addressed by name on the host side.
type fileBlueprint struct {
	name       string
	dimensions domain.Vec3
	origin     domain.Vec3
}

func (b *fileBlueprint) Dimensions() domain.Vec3   { return b.dimensions }
func (b *fileBlueprint) OriginOffset() domain.Vec3 { return b.origin }

// blueprintStore implements interfaces.BlueprintStore. Load reads YAML
// descriptors from disk; Paste and ClearRegion are round-trip calls to the
// game host, which owns the structure engine and the world.
type blueprintStore struct {
	bridge    *HostBridge
	worldName string
	logger    log.Logger
}

// NewBlueprintStore creates a BlueprintStore backed by the host bridge.
// worldName names the world region clears apply to. Panics on nil bridge,
// empty world name or nil logger.
func NewBlueprintStore(bridge *HostBridge, worldName string, logger log.Logger) *blueprintStore {
	return &blueprintStore{
		bridge:    helpers.NilPanic(bridge, "adapters.redis.blueprint_store.go: bridge is required"),
		worldName: helpers.StrPanic(worldName, "adapters.redis.blueprint_store.go: worldName is required"),
		logger:    log.With(helpers.NilPanic(logger, "adapters.redis.blueprint_store.go: logger is required"), "component", "blueprint_store"),
	}
}

// Load reads the descriptor at path. The descriptor must name the blueprint
// and carry positive dimensions.
func (s *blueprintStore) Load(path string) (interfaces.Blueprint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blueprint descriptor %s: %w", path, err)
	}

	var desc blueprintDescriptor
	if err := yaml.Unmarshal(raw, &desc); err != nil {
		return nil, fmt.Errorf("parsing blueprint descriptor %s: %w", path, err)
	}
	if desc.Name == "" {
		return nil, fmt.Errorf("blueprint descriptor %s has no name", path)
	}
	if desc.Dimensions.X <= 0 || desc.Dimensions.Y <= 0 || desc.Dimensions.Z <= 0 {
		return nil, fmt.Errorf("blueprint descriptor %s has non-positive dimensions", path)
	}

	return &fileBlueprint{
		name:       desc.Name,
		dimensions: domain.Vec3{X: desc.Dimensions.X, Y: desc.Dimensions.Y, Z: desc.Dimensions.Z},
		origin:     domain.Vec3{X: desc.Origin.X, Y: desc.Origin.Y, Z: desc.Origin.Z},
	}, nil
}

// Paste asks the host to paste the blueprint at origin and waits for the
// paste to finish. Only blueprints produced by this store's Load can be
// pasted; the host addresses the payload by name.
func (s *blueprintStore) Paste(ctx context.Context, blueprint interfaces.Blueprint, origin domain.Location) error {
	bp, ok := blueprint.(*fileBlueprint)
	if !ok {
		return fmt.Errorf("blueprint %T was not loaded by this store", blueprint)
	}
	_, err := s.bridge.call(ctx, hostCommand{
		Op:        "paste_blueprint",
		Blueprint: bp.name,
		Location:  toWireLocation(origin),
	})
	return err
}

// ClearRegion asks the host to reset the region to air and waits for the
// clear to finish.
func (s *blueprintStore) ClearRegion(ctx context.Context, region domain.Region) error {
	_, err := s.bridge.call(ctx, hostCommand{
		Op: "clear_region",
		Region: &wireRegion{
			World: s.worldName,
			MinX:  region.Min.X,
			MinY:  region.Min.Y,
			MinZ:  region.Min.Z,
			MaxX:  region.Max.X,
			MaxY:  region.Max.Y,
			MaxZ:  region.Max.Z,
		},
	})
	return err
}
