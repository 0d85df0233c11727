package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"arenamanager/domain"
	"arenamanager/helpers"
	"arenamanager/interfaces"
)

// VecRecord is a raw x/y/z triple from configuration.
type VecRecord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// SpawnRecord is a raw spawn offset from configuration.
type SpawnRecord struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Yaw   float32 `yaml:"yaw"`
	Pitch float32 `yaml:"pitch"`
}

// ThemeRecord is one arena theme as configured. Blueprint is optional; when
// set, geometry (dimensions, origin offset) comes from the loaded blueprint
// and the configured values are ignored.
type ThemeRecord struct {
	ID           string        `yaml:"id"`
	DisplayName  string        `yaml:"display_name"`
	Blueprint    string        `yaml:"blueprint"`
	MemberSpawns []SpawnRecord `yaml:"member_spawns"`
	BossSpawn    *SpawnRecord  `yaml:"boss_spawn"`
	Dimensions   VecRecord     `yaml:"dimensions"`
	OriginOffset VecRecord     `yaml:"origin_offset"`
}

// RewardRecord is one reward roll as configured. Chance is in [0, 1].
type RewardRecord struct {
	Action string  `yaml:"action"`
	Chance float64 `yaml:"chance"`
}

// ScalingRecord is the boss level scaling as configured.
type ScalingRecord struct {
	BaseLevel      float64 `yaml:"base_level"`
	LevelPerMember float64 `yaml:"level_per_member"`
	MaxLevel       float64 `yaml:"max_level"`
}

// BossRecord is one boss definition as configured.
type BossRecord struct {
	ID               string         `yaml:"id"`
	DisplayName      string         `yaml:"display_name"`
	Difficulty       string         `yaml:"difficulty"`
	Script           string         `yaml:"script"`
	FinalPhaseScript string         `yaml:"final_phase_script"`
	Description      []string       `yaml:"description"`
	GemCost          int64          `yaml:"gem_cost"`
	RequiredLevel    int            `yaml:"required_level"`
	Rewards          []RewardRecord `yaml:"rewards"`
	Scaling          ScalingRecord  `yaml:"scaling"`
}

// themeCatalog implements interfaces.ThemeCatalog. Ids are matched
// case-insensitively. Reload swaps the whole map at once; a record that fails
// validation (or whose blueprint cannot be loaded) is skipped with a warning
// and never fails the reload.
type themeCatalog struct {
	logger log.Logger
	source func() ([]ThemeRecord, error)
	store  interfaces.BlueprintStore

	mu     sync.RWMutex
	themes map[string]domain.ArenaTheme
}

// NewThemeCatalog builds the catalog from the current records.
//
// Parameters:
//   - source: returns the current theme records; called on every Reload. Must
//     be non-nil.
//   - store: blueprint store used to resolve theme geometry. Must be non-nil.
//   - logger: logger. Must be non-nil.
//
// Returns: interfaces.ThemeCatalog, or the source error when the initial load
// fails outright.
//
// Called from: main.
func NewThemeCatalog(source func() ([]ThemeRecord, error), store interfaces.BlueprintStore, logger log.Logger) (interfaces.ThemeCatalog, error) {
	c := &themeCatalog{
		logger: helpers.NilPanic(logger, "service.catalog.go: logger is required"),
		source: helpers.NilPanic(source, "service.catalog.go: source is required"),
		store:  helpers.NilPanic(store, "service.catalog.go: store is required"),
		themes: make(map[string]domain.ArenaTheme),
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload rebuilds the catalog from source. Only a source failure is an error.
func (c *themeCatalog) Reload() error {
	records, err := c.source()
	if err != nil {
		return NewInternalServerError("loading theme records", err)
	}

	themes := make(map[string]domain.ArenaTheme, len(records))
	for _, rec := range records {
		theme, err := c.buildTheme(rec)
		if err != nil {
			level.Warn(c.logger).Log("msg", "skipping theme record", "id", rec.ID, "err", err)
			continue
		}
		key := strings.ToLower(theme.ID)
		if _, dup := themes[key]; dup {
			level.Warn(c.logger).Log("msg", "duplicate theme id, last record wins", "id", theme.ID)
		}
		themes[key] = theme
	}

	c.mu.Lock()
	c.themes = themes
	c.mu.Unlock()
	level.Info(c.logger).Log("msg", "theme catalog loaded", "themes", len(themes))
	return nil
}

func (c *themeCatalog) buildTheme(rec ThemeRecord) (domain.ArenaTheme, error) {
	if rec.ID == "" {
		return domain.ArenaTheme{}, fmt.Errorf("theme id is empty")
	}

	theme := domain.ArenaTheme{
		ID:            rec.ID,
		DisplayName:   rec.DisplayName,
		BlueprintFile: rec.Blueprint,
		OriginOffset:  domain.Vec3{X: rec.OriginOffset.X, Y: rec.OriginOffset.Y, Z: rec.OriginOffset.Z},
	}
	if theme.DisplayName == "" {
		theme.DisplayName = rec.ID
	}
	for _, s := range rec.MemberSpawns {
		theme.MemberSpawns = append(theme.MemberSpawns, domain.Offset{X: s.X, Y: s.Y, Z: s.Z, Yaw: s.Yaw, Pitch: s.Pitch})
	}
	if rec.BossSpawn != nil {
		theme.BossSpawn = &domain.Offset{X: rec.BossSpawn.X, Y: rec.BossSpawn.Y, Z: rec.BossSpawn.Z, Yaw: rec.BossSpawn.Yaw, Pitch: rec.BossSpawn.Pitch}
	}

	if rec.Blueprint != "" {
		bp, err := c.store.Load(rec.Blueprint)
		if err != nil {
			return domain.ArenaTheme{}, fmt.Errorf("loading blueprint %q: %w", rec.Blueprint, err)
		}
		theme.Dimensions = bp.Dimensions()
		theme.OriginOffset = bp.OriginOffset()
		theme.HasGeometry = true
		return theme, nil
	}

	dims := domain.Vec3{X: rec.Dimensions.X, Y: rec.Dimensions.Y, Z: rec.Dimensions.Z}
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		return domain.ArenaTheme{}, fmt.Errorf("theme has neither a blueprint nor positive dimensions")
	}
	theme.Dimensions = dims
	return theme, nil
}

// Theme returns the theme for id, case-insensitively.
func (c *themeCatalog) Theme(id string) (domain.ArenaTheme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	theme, ok := c.themes[strings.ToLower(id)]
	return theme, ok
}

// Themes lists all themes sorted by id.
func (c *themeCatalog) Themes() []domain.ArenaTheme {
	c.mu.RLock()
	out := make([]domain.ArenaTheme, 0, len(c.themes))
	for _, t := range c.themes {
		out = append(out, t)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// bossCatalog implements interfaces.BossCatalog with the same reload contract
// as the theme catalog.
type bossCatalog struct {
	logger log.Logger
	source func() ([]BossRecord, error)

	mu     sync.RWMutex
	bosses map[string]domain.BossDefinition
}

// NewBossCatalog builds the catalog from the current records.
//
// Parameters:
//   - source: returns the current boss records; called on every Reload. Must
//     be non-nil.
//   - logger: logger. Must be non-nil.
//
// Returns: interfaces.BossCatalog, or the source error when the initial load
// fails outright.
//
// Called from: main.
func NewBossCatalog(source func() ([]BossRecord, error), logger log.Logger) (interfaces.BossCatalog, error) {
	c := &bossCatalog{
		logger: helpers.NilPanic(logger, "service.catalog.go: logger is required"),
		source: helpers.NilPanic(source, "service.catalog.go: source is required"),
		bosses: make(map[string]domain.BossDefinition),
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload rebuilds the catalog from source. Only a source failure is an error.
func (c *bossCatalog) Reload() error {
	records, err := c.source()
	if err != nil {
		return NewInternalServerError("loading boss records", err)
	}

	bosses := make(map[string]domain.BossDefinition, len(records))
	for _, rec := range records {
		boss, err := buildBoss(rec)
		if err != nil {
			level.Warn(c.logger).Log("msg", "skipping boss record", "id", rec.ID, "err", err)
			continue
		}
		key := strings.ToLower(boss.ID)
		if _, dup := bosses[key]; dup {
			level.Warn(c.logger).Log("msg", "duplicate boss id, last record wins", "id", boss.ID)
		}
		bosses[key] = boss
	}

	c.mu.Lock()
	c.bosses = bosses
	c.mu.Unlock()
	level.Info(c.logger).Log("msg", "boss catalog loaded", "bosses", len(bosses))
	return nil
}

func buildBoss(rec BossRecord) (domain.BossDefinition, error) {
	if rec.ID == "" {
		return domain.BossDefinition{}, fmt.Errorf("boss id is empty")
	}
	if rec.Script == "" {
		return domain.BossDefinition{}, fmt.Errorf("boss script is empty")
	}
	if rec.GemCost < 0 {
		return domain.BossDefinition{}, fmt.Errorf("gem cost %d is negative", rec.GemCost)
	}
	for _, r := range rec.Rewards {
		if r.Action == "" {
			return domain.BossDefinition{}, fmt.Errorf("reward action is empty")
		}
		if r.Chance < 0 || r.Chance > 1 {
			return domain.BossDefinition{}, fmt.Errorf("reward chance %v is outside [0, 1]", r.Chance)
		}
	}

	boss := domain.BossDefinition{
		ID:                 rec.ID,
		DisplayName:        rec.DisplayName,
		Difficulty:         rec.Difficulty,
		ScriptID:           rec.Script,
		FinalPhaseScriptID: rec.FinalPhaseScript,
		Description:        rec.Description,
		GemCost:            rec.GemCost,
		RequiredLevel:      rec.RequiredLevel,
		Scaling: domain.LevelScaling{
			BaseLevel:      rec.Scaling.BaseLevel,
			LevelPerMember: rec.Scaling.LevelPerMember,
			MaxLevel:       rec.Scaling.MaxLevel,
		},
	}
	if boss.DisplayName == "" {
		boss.DisplayName = rec.ID
	}
	if boss.Scaling.BaseLevel < 1 {
		boss.Scaling.BaseLevel = 1
	}
	for _, r := range rec.Rewards {
		boss.Rewards = append(boss.Rewards, domain.RewardEntry{ActionTemplate: r.Action, Chance: r.Chance})
	}
	return boss, nil
}

// Boss returns the boss definition for id, case-insensitively.
func (c *bossCatalog) Boss(id string) (domain.BossDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	boss, ok := c.bosses[strings.ToLower(id)]
	return boss, ok
}

// Bosses lists all bosses sorted by id.
func (c *bossCatalog) Bosses() []domain.BossDefinition {
	c.mu.RLock()
	out := make([]domain.BossDefinition, 0, len(c.bosses))
	for _, b := range c.bosses {
		out = append(out, b)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BossesByDifficulty lists bosses with a matching difficulty tag, sorted by
// id. Matching is case-insensitive.
func (c *bossCatalog) BossesByDifficulty(difficulty string) []domain.BossDefinition {
	want := strings.ToLower(difficulty)
	var out []domain.BossDefinition
	c.mu.RLock()
	for _, b := range c.bosses {
		if strings.ToLower(b.Difficulty) == want {
			out = append(out, b)
		}
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
