package interfaces

import "arenamanager/domain"

// ThemeCatalog looks up arena themes by id (case-insensitive). Reload rebuilds
// the catalog from configuration; records that fail validation are skipped
// with a warning, they never fail the whole reload.
//
//go:generate moq -stub -out mock/theme_catalog.go -pkg mock . ThemeCatalog
type ThemeCatalog interface {
	Theme(id string) (domain.ArenaTheme, bool)
	Themes() []domain.ArenaTheme
	Reload() error
}

// BossCatalog looks up boss definitions by id (case-insensitive), with a
// difficulty listing for the selection surface.
//
//go:generate moq -stub -out mock/boss_catalog.go -pkg mock . BossCatalog
type BossCatalog interface {
	Boss(id string) (domain.BossDefinition, bool)
	Bosses() []domain.BossDefinition
	BossesByDifficulty(difficulty string) []domain.BossDefinition
	Reload() error
}
