package domain

import "math"

// RewardEntry is one chance-based reward: an action template dispatched for a
// member when a roll in [0,1] lands at or under Chance.
type RewardEntry struct {
	ActionTemplate string
	Chance         float64
}

// LevelScaling controls how the boss level grows with party size.
// MaxLevel 0 means uncapped.
type LevelScaling struct {
	BaseLevel      float64
	LevelPerMember float64
	MaxLevel       float64
}

// BossDefinition is an immutable scripted encounter loaded from config.
// FinalPhaseScriptID defaults to ScriptID when the encounter has a single phase.
type BossDefinition struct {
	ID                 string
	DisplayName        string
	Difficulty         string
	ScriptID           string
	FinalPhaseScriptID string
	Description        []string
	GemCost            int64
	RequiredLevel      int
	Rewards            []RewardEntry
	Scaling            LevelScaling
}

// EffectiveFinalScriptID is the script whose death ends the encounter:
// FinalPhaseScriptID when the encounter chains phases, ScriptID otherwise.
func (b BossDefinition) EffectiveFinalScriptID() string {
	if b.FinalPhaseScriptID != "" {
		return b.FinalPhaseScriptID
	}
	return b.ScriptID
}

// ScaledLevel computes the integer boss level for a party of the given size:
// base + (size-1) * perMember, capped at MaxLevel when set, floored at 1,
// rounded half away from zero.
func (b BossDefinition) ScaledLevel(partySize int) int {
	level := b.Scaling.BaseLevel
	if partySize > 1 {
		level += float64(partySize-1) * b.Scaling.LevelPerMember
	}
	if b.Scaling.MaxLevel > 0 && level > b.Scaling.MaxLevel {
		level = b.Scaling.MaxLevel
	}
	if level < 1 {
		level = 1
	}
	scaled := int(math.Round(level))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}
