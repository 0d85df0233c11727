package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"arenamanager/domain"
	"arenamanager/service"
)

type ArenaManagerConfig struct {
	HTTPPort         int
	GRPCPort         int
	RedisAddr        string
	ContentPath      string
	ProvisionTimeout time.Duration
	PartyTimeout     time.Duration
	HostReplyTimeout time.Duration
}

// LoadConfig loads configuration from environment variables.
// REDIS_ADDR, SERVICE_PORT_HTTP, SERVICE_PORT_GRPC and CONFIG_PATH are
// required; the timeouts have defaults.
func LoadConfig() (*ArenaManagerConfig, error) {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}

	contentPath := os.Getenv("CONFIG_PATH")
	if contentPath == "" {
		return nil, fmt.Errorf("CONFIG_PATH is required")
	}

	httpPort, err := requiredPort("SERVICE_PORT_HTTP")
	if err != nil {
		return nil, err
	}
	grpcPort, err := requiredPort("SERVICE_PORT_GRPC")
	if err != nil {
		return nil, err
	}

	provisionTimeout, err := optionalMillis("PROVISION_TIMEOUT_MS", 60000)
	if err != nil {
		return nil, err
	}
	partyTimeout, err := optionalMillis("PARTY_TIMEOUT_MS", 5000)
	if err != nil {
		return nil, err
	}
	hostReplyTimeout, err := optionalMillis("HOST_REPLY_TIMEOUT_MS", 10000)
	if err != nil {
		return nil, err
	}

	return &ArenaManagerConfig{
		HTTPPort:         httpPort,
		GRPCPort:         grpcPort,
		RedisAddr:        redisAddr,
		ContentPath:      contentPath,
		ProvisionTimeout: provisionTimeout,
		PartyTimeout:     partyTimeout,
		HostReplyTimeout: hostReplyTimeout,
	}, nil
}

func requiredPort(name string) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return port, nil
}

func optionalMillis(name string, fallback int) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return time.Duration(fallback) * time.Millisecond, nil
	}
	ms, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if ms <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// ContentConfig is the YAML content file: the slot grid, lobby, party bounds
// and the theme/boss catalogs. Reload re-reads the same file, so catalog
// edits apply without a restart.
type ContentConfig struct {
	World string `yaml:"world"`
	Grid  struct {
		StartX        float64 `yaml:"start_x"`
		StartY        float64 `yaml:"start_y"`
		StartZ        float64 `yaml:"start_z"`
		SeparationX   float64 `yaml:"separation_x"`
		SeparationZ   float64 `yaml:"separation_z"`
		SlotsPerRow   int     `yaml:"slots_per_row"`
		MaxConcurrent int     `yaml:"max_concurrent"`
	} `yaml:"grid"`
	Lobby struct {
		World string  `yaml:"world"`
		X     float64 `yaml:"x"`
		Y     float64 `yaml:"y"`
		Z     float64 `yaml:"z"`
		Yaw   float32 `yaml:"yaw"`
		Pitch float32 `yaml:"pitch"`
	} `yaml:"lobby"`
	Party struct {
		MinSize int `yaml:"min_size"`
		MaxSize int `yaml:"max_size"`
	} `yaml:"party"`
	MusicTracks         []string              `yaml:"music_tracks"`
	BossDefeatedMessage string                `yaml:"boss_defeated_message"`
	RetireDelayMS       int                   `yaml:"retire_delay_ms"`
	Workers             int                   `yaml:"workers"`
	Themes              []service.ThemeRecord `yaml:"themes"`
	Bosses              []service.BossRecord  `yaml:"bosses"`
}

// LoadContent reads and validates the content file at path.
func LoadContent(path string) (*ContentConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content config %s: %w", path, err)
	}

	var c ContentConfig
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing content config %s: %w", path, err)
	}

	if c.World == "" {
		return nil, fmt.Errorf("content config: world is required")
	}
	if c.Grid.SlotsPerRow < 1 {
		return nil, fmt.Errorf("content config: grid.slots_per_row must be at least 1")
	}
	if c.Grid.MaxConcurrent < 1 {
		return nil, fmt.Errorf("content config: grid.max_concurrent must be at least 1")
	}
	if c.Party.MinSize < 1 {
		return nil, fmt.Errorf("content config: party.min_size must be at least 1")
	}
	if c.Party.MaxSize < c.Party.MinSize {
		return nil, fmt.Errorf("content config: party.max_size must not be below party.min_size")
	}
	if c.RetireDelayMS <= 0 {
		c.RetireDelayMS = 3000
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	return &c, nil
}

// SlotGrid maps the content file onto the pool configuration.
func (c *ContentConfig) SlotGrid() service.SlotGrid {
	return service.SlotGrid{
		WorldName:     c.World,
		StartX:        c.Grid.StartX,
		StartY:        c.Grid.StartY,
		StartZ:        c.Grid.StartZ,
		SeparationX:   c.Grid.SeparationX,
		SeparationZ:   c.Grid.SeparationZ,
		SlotsPerRow:   c.Grid.SlotsPerRow,
		MaxConcurrent: c.Grid.MaxConcurrent,
	}
}

// LobbyLocation maps the content file onto the teardown return point.
func (c *ContentConfig) LobbyLocation() domain.Location {
	return domain.Location{
		World: c.Lobby.World,
		X:     c.Lobby.X,
		Y:     c.Lobby.Y,
		Z:     c.Lobby.Z,
		Yaw:   c.Lobby.Yaw,
		Pitch: c.Lobby.Pitch,
	}
}
