package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBossDefinition_ScaledLevel(t *testing.T) {
	boss := BossDefinition{
		ID: "lich_king",
		Scaling: LevelScaling{
			BaseLevel:      1,
			LevelPerMember: 0.5,
			MaxLevel:       10,
		},
	}

	t.Run("solo_party_gets_base_level", func(t *testing.T) {
		assert.Equal(t, 1, boss.ScaledLevel(1))
	})

	t.Run("half_rounds_away_from_zero", func(t *testing.T) {
		// 1 + 3*0.5 = 2.5 rounds up to 3.
		assert.Equal(t, 3, boss.ScaledLevel(4))
	})

	t.Run("capped_at_max_level", func(t *testing.T) {
		assert.Equal(t, 10, boss.ScaledLevel(100))
	})

	t.Run("zero_max_level_is_uncapped", func(t *testing.T) {
		uncapped := BossDefinition{Scaling: LevelScaling{BaseLevel: 2, LevelPerMember: 1}}
		assert.Equal(t, 11, uncapped.ScaledLevel(10))
	})

	t.Run("floor_is_one", func(t *testing.T) {
		weak := BossDefinition{Scaling: LevelScaling{BaseLevel: 0}}
		assert.Equal(t, 1, weak.ScaledLevel(1))
	})
}

func TestPartyInfo_Sentinel(t *testing.T) {
	info := FailedPartyInfo("subject-1")

	assert.False(t, info.Success)
	assert.False(t, info.InParty())
	assert.Zero(t, info.Size)
	assert.Empty(t, info.MemberIDs)
}
