package service

import (
	"sync"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenamanager/domain"
)

func testGrid() SlotGrid {
	return SlotGrid{
		WorldName:     "arena_world",
		StartX:        0,
		StartY:        100,
		StartZ:        0,
		SeparationX:   500,
		SeparationZ:   500,
		SlotsPerRow:   10,
		MaxConcurrent: 4,
	}
}

func TestSlotGrid_OriginFor(t *testing.T) {
	grid := testGrid()

	tests := []struct {
		name   string
		slotID int
		want   domain.Location
	}{
		{"slot zero sits at the start", 0, domain.Location{World: "arena_world", X: 0, Y: 100, Z: 0}},
		{"walks the row", 3, domain.Location{World: "arena_world", X: 1500, Y: 100, Z: 0}},
		{"wraps to the next row", 10, domain.Location{World: "arena_world", X: 0, Y: 100, Z: 500}},
		{"row and column combine", 23, domain.Location{World: "arena_world", X: 1500, Y: 100, Z: 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.OriginFor(tt.slotID))
		})
	}
}

func TestSlotPool_Reserve(t *testing.T) {
	t.Run("hands out ascending ids", func(t *testing.T) {
		p := NewSlotPool(testGrid(), log.NewNopLogger())
		for want := 0; want < 4; want++ {
			slot, err := p.Reserve()
			require.NoError(t, err)
			assert.Equal(t, want, slot.SlotID)
		}
	})

	t.Run("fails at the concurrency cap", func(t *testing.T) {
		p := NewSlotPool(testGrid(), log.NewNopLogger())
		for i := 0; i < 4; i++ {
			_, err := p.Reserve()
			require.NoError(t, err)
		}
		_, err := p.Reserve()
		require.ErrorIs(t, err, ErrNoAvailableSlot)
		assert.Equal(t, 4, p.Live())
	})

	t.Run("reuses the lowest released id", func(t *testing.T) {
		p := NewSlotPool(testGrid(), log.NewNopLogger())
		for i := 0; i < 3; i++ {
			_, err := p.Reserve()
			require.NoError(t, err)
		}
		p.Release(1)

		slot, err := p.Reserve()
		require.NoError(t, err)
		assert.Equal(t, 1, slot.SlotID)
	})

	t.Run("no id is handed out twice under contention", func(t *testing.T) {
		grid := testGrid()
		grid.MaxConcurrent = 50
		p := NewSlotPool(grid, log.NewNopLogger())

		var mu sync.Mutex
		seen := map[int]bool{}
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				slot, err := p.Reserve()
				require.NoError(t, err)
				mu.Lock()
				require.False(t, seen[slot.SlotID])
				seen[slot.SlotID] = true
				mu.Unlock()
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, p.Live())
	})

	t.Run("fails after close", func(t *testing.T) {
		p := NewSlotPool(testGrid(), log.NewNopLogger())
		require.NoError(t, p.Close())
		_, err := p.Reserve()
		require.ErrorIs(t, err, ErrSlotPoolClosed)
		require.NoError(t, p.Close())
	})
}

func TestSlotPool_Release(t *testing.T) {
	t.Run("releasing an unheld or negative id is ignored", func(t *testing.T) {
		p := NewSlotPool(testGrid(), log.NewNopLogger())
		p.Release(7)
		p.Release(-1)
		assert.Equal(t, 0, p.Live())
	})
}
