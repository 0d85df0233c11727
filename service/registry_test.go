package service

import (
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenamanager/domain"
	"arenamanager/helpers"
)

func liveInstance(t *testing.T, id string, members ...string) *domain.ArenaInstance {
	t.Helper()
	inst := domain.NewArenaInstance(id, domain.ArenaTheme{ID: "theme"}, domain.SlotInfo{SlotID: 0}, helpers.TestNow())
	if len(members) > 0 {
		inst.SetParty(members, &domain.BossDefinition{ID: "boss"}, nil, helpers.TestNow())
	}
	inst.SetState(domain.StateInUse, helpers.TestNow())
	return inst
}

func TestInstanceRegistry(t *testing.T) {
	t.Run("add, get, remove", func(t *testing.T) {
		r := NewInstanceRegistry(log.NewNopLogger())
		inst := liveInstance(t, "inst-1")
		r.Add(inst)

		got, ok := r.Get("inst-1")
		require.True(t, ok)
		assert.Same(t, inst, got)
		assert.Equal(t, 1, r.Len())

		r.Remove("inst-1")
		_, ok = r.Get("inst-1")
		assert.False(t, ok)
		r.Remove("inst-1") // second remove is a no-op
	})

	t.Run("finds in-use instance by boss entity", func(t *testing.T) {
		r := NewInstanceRegistry(log.NewNopLogger())
		inst := liveInstance(t, "inst-1", "player-1")
		inst.SetBossEntityID("entity-42")
		r.Add(inst)

		got, ok := r.FindByBossEntity("entity-42")
		require.True(t, ok)
		assert.Same(t, inst, got)

		_, ok = r.FindByBossEntity("")
		assert.False(t, ok)
		_, ok = r.FindByBossEntity("entity-unknown")
		assert.False(t, ok)
	})

	t.Run("boss lookup ignores instances leaving service", func(t *testing.T) {
		r := NewInstanceRegistry(log.NewNopLogger())
		inst := liveInstance(t, "inst-1", "player-1")
		inst.SetBossEntityID("entity-42")
		inst.SetState(domain.StateCleaningUp, helpers.TestNow())
		r.Add(inst)

		_, ok := r.FindByBossEntity("entity-42")
		assert.False(t, ok)
	})

	t.Run("finds in-use instance by member", func(t *testing.T) {
		r := NewInstanceRegistry(log.NewNopLogger())
		r.Add(liveInstance(t, "inst-1", "player-1", "player-2"))
		r.Add(liveInstance(t, "inst-2", "player-3"))

		got, ok := r.FindByMember("player-2")
		require.True(t, ok)
		assert.Equal(t, "inst-1", got.ID)

		_, ok = r.FindByMember("player-9")
		assert.False(t, ok)
	})

	t.Run("list snapshots all instances", func(t *testing.T) {
		r := NewInstanceRegistry(log.NewNopLogger())
		r.Add(liveInstance(t, "inst-1"))
		r.Add(liveInstance(t, "inst-2"))
		assert.Len(t, r.List(), 2)
	})
}
