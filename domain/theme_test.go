package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaTheme_MemberSpawn(t *testing.T) {
	origin := Location{World: "arenas", X: 1000, Y: 100, Z: 2000}
	theme := ArenaTheme{
		ID: "crypt",
		MemberSpawns: []Offset{
			{X: 5, Y: 1, Z: 5},
			{X: -5, Y: 1, Z: 5, Yaw: 180},
		},
	}

	t.Run("index_maps_to_offset", func(t *testing.T) {
		loc, ok := theme.MemberSpawn(1, origin)
		require.True(t, ok)
		assert.Equal(t, Location{World: "arenas", X: 995, Y: 101, Z: 2005, Yaw: 180}, loc)
	})

	t.Run("index_cycles_modulo_spawn_count", func(t *testing.T) {
		first, ok := theme.MemberSpawn(0, origin)
		require.True(t, ok)
		third, ok := theme.MemberSpawn(2, origin)
		require.True(t, ok)
		assert.Equal(t, first, third)
	})

	t.Run("no_spawns_is_soft_failure", func(t *testing.T) {
		empty := ArenaTheme{ID: "bare"}
		_, ok := empty.MemberSpawn(0, origin)
		assert.False(t, ok)
	})
}

func TestArenaTheme_BossSpawnLocation(t *testing.T) {
	origin := Location{World: "arenas", X: 0, Y: 100, Z: 0}

	t.Run("resolves_against_origin", func(t *testing.T) {
		theme := ArenaTheme{BossSpawn: &Offset{X: 10, Y: 2, Z: 10}}
		loc, ok := theme.BossSpawnLocation(origin)
		require.True(t, ok)
		assert.Equal(t, Location{World: "arenas", X: 10, Y: 102, Z: 10}, loc)
	})

	t.Run("missing_boss_spawn", func(t *testing.T) {
		theme := ArenaTheme{}
		_, ok := theme.BossSpawnLocation(origin)
		assert.False(t, ok)
	})
}

func TestArenaTheme_ClearRegion(t *testing.T) {
	theme := ArenaTheme{
		Dimensions:   Vec3{X: 32, Y: 20, Z: 48},
		OriginOffset: Vec3{X: -16, Y: 0, Z: -24},
		HasGeometry:  true,
	}
	region := theme.ClearRegion(Location{World: "arenas", X: 1000, Y: 100, Z: 2000})

	assert.Equal(t, Vec3{X: 984, Y: 100, Z: 1976}, region.Min)
	assert.Equal(t, Vec3{X: 1015, Y: 119, Z: 2023}, region.Max)
}
