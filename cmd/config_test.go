package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("REDIS_ADDR", "redis://localhost:6379")
	t.Setenv("SERVICE_PORT_HTTP", "8080")
	t.Setenv("SERVICE_PORT_GRPC", "9090")
	t.Setenv("CONFIG_PATH", "/etc/arenamanager/content.yml")
}

func TestLoadConfig_RedisAddrRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REDIS_ADDR is required")
}

func TestLoadConfig_HTTPPortRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_HTTP is required")
}

func TestLoadConfig_GRPCPortRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_PORT_GRPC", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_GRPC is required")
}

func TestLoadConfig_ContentPathRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "CONFIG_PATH is required")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "/etc/arenamanager/content.yml", cfg.ContentPath)
	assert.Equal(t, 60*time.Second, cfg.ProvisionTimeout)
	assert.Equal(t, 5*time.Second, cfg.PartyTimeout)
	assert.Equal(t, 10*time.Second, cfg.HostReplyTimeout)
}

func TestLoadConfig_CustomTimeouts(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PROVISION_TIMEOUT_MS", "30000")
	t.Setenv("PARTY_TIMEOUT_MS", "2500")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 30*time.Second, cfg.ProvisionTimeout)
	assert.Equal(t, 2500*time.Millisecond, cfg.PartyTimeout)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PARTY_TIMEOUT_MS", "-1")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "PARTY_TIMEOUT_MS must be positive")
}

const validContent = `
world: arenas
grid:
  start_x: 0
  start_y: 64
  start_z: 0
  separation_x: 256
  separation_z: 256
  slots_per_row: 8
  max_concurrent: 16
lobby:
  world: lobby
  x: 0.5
  y: 72
  z: 0.5
party:
  min_size: 1
  max_size: 5
music_tracks:
  - arena.battle_1
  - arena.battle_2
boss_defeated_message: "%boss_name% has been defeated!"
themes:
  - id: lava_arena
    display_name: Lava Arena
    dimensions: {x: 48, y: 20, z: 48}
    member_spawns:
      - {x: 4, y: 1, z: 4}
    boss_spawn: {x: 24, y: 1, z: 24}
bosses:
  - id: MagmaLord
    display_name: Magma Lord
    difficulty: hard
    script: MagmaLordPhase1
    gem_cost: 250
`

func writeContent(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadContent_Ok(t *testing.T) {
	c, err := LoadContent(writeContent(t, validContent))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "arenas", c.World)
	assert.Len(t, c.Themes, 1)
	assert.Len(t, c.Bosses, 1)
	assert.Equal(t, []string{"arena.battle_1", "arena.battle_2"}, c.MusicTracks)

	grid := c.SlotGrid()
	assert.Equal(t, "arenas", grid.WorldName)
	assert.Equal(t, 8, grid.SlotsPerRow)
	assert.Equal(t, 16, grid.MaxConcurrent)

	lobby := c.LobbyLocation()
	assert.Equal(t, "lobby", lobby.World)
	assert.Equal(t, 72.0, lobby.Y)

	// Unset optionals take defaults.
	assert.Equal(t, 3000, c.RetireDelayMS)
	assert.Equal(t, 4, c.Workers)
}

func TestLoadContent_MissingFile(t *testing.T) {
	_, err := LoadContent(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadContent_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing world",
			content: "grid: {slots_per_row: 8, max_concurrent: 16}\nparty: {min_size: 1, max_size: 5}",
			wantErr: "world is required",
		},
		{
			name:    "zero slots per row",
			content: "world: arenas\ngrid: {slots_per_row: 0, max_concurrent: 16}\nparty: {min_size: 1, max_size: 5}",
			wantErr: "slots_per_row",
		},
		{
			name:    "party bounds inverted",
			content: "world: arenas\ngrid: {slots_per_row: 8, max_concurrent: 16}\nparty: {min_size: 4, max_size: 2}",
			wantErr: "max_size",
		},
		{
			name:    "not yaml",
			content: "{not valid",
			wantErr: "parsing content config",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadContent(writeContent(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
