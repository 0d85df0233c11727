package service

import (
	"errors"
	"sync"

	"arenamanager/domain"
	"arenamanager/helpers"
	"arenamanager/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ErrSlotPoolClosed is returned by Reserve when the pool has been closed.
var ErrSlotPoolClosed = errors.New("slot pool is closed")

// ErrNoAvailableSlot is returned by Reserve when the concurrency cap is
// reached or no free id exists within the search limit.
var ErrNoAvailableSlot = errors.New("no available arena slot")

// fallbackSearchLimit bounds the id scan when no concurrency cap is configured.
const fallbackSearchLimit = 1000

// SlotGrid describes the arena world grid: slot ids map to world origins row
// by row, SlotsPerRow per row, SeparationX/SeparationZ blocks apart, starting
// at (StartX, StartY, StartZ). MaxConcurrent caps live slots (0 = uncapped).
type SlotGrid struct {
	WorldName     string
	StartX        float64
	StartY        float64
	StartZ        float64
	SeparationX   float64
	SeparationZ   float64
	SlotsPerRow   int
	MaxConcurrent int
}

// OriginFor computes the world origin for a slot id. Pure function of the grid
// and the id: col = id % SlotsPerRow, row = id / SlotsPerRow, origin = start +
// (col*SeparationX, 0, row*SeparationZ). Tests assert placement without
// touching pool state.
func (g SlotGrid) OriginFor(slotID int) domain.Location {
	col := slotID % g.SlotsPerRow
	row := slotID / g.SlotsPerRow
	return domain.Location{
		World: g.WorldName,
		X:     g.StartX + float64(col)*g.SeparationX,
		Y:     g.StartY,
		Z:     g.StartZ + float64(row)*g.SeparationZ,
	}
}

// searchLimit bounds the ascending id scan: cap + row width + margin when a
// cap is configured, a fixed fallback otherwise.
func (g SlotGrid) searchLimit() int {
	if g.MaxConcurrent > 0 {
		return g.MaxConcurrent + g.SlotsPerRow + 5
	}
	return fallbackSearchLimit
}

// slotPool implements interfaces.SlotPool. All mutations run under one mutex;
// Reserve scans ascending ids and marks the first free one held in the same
// critical section, so two callers can never race onto the same id. Fields:
// grid, logger; under mu: held (slot id set), closed.
type slotPool struct {
	grid   SlotGrid
	logger log.Logger

	mu     sync.Mutex
	held   map[int]bool
	closed bool
}

// NewSlotPool creates the slot pool for the configured grid. Panics on nil
// logger or a non-positive SlotsPerRow.
func NewSlotPool(grid SlotGrid, logger log.Logger) interfaces.SlotPool {
	if grid.SlotsPerRow < 1 {
		panic("service.slot_pool.go: grid.SlotsPerRow must be >= 1")
	}
	return &slotPool{
		grid:   grid,
		logger: log.With(helpers.NilPanic(logger, "service.slot_pool.go: logger is required"), "component", "slot_pool"),
		held:   make(map[int]bool),
	}
}

// Reserve atomically picks the lowest free slot id and marks it held.
//
// Returns: (SlotInfo, nil) on success; (SlotInfo{}, ErrSlotPoolClosed) if the
// pool is closed; (SlotInfo{}, ErrNoAvailableSlot) when the live count already
// meets the concurrency cap (no scan) or the scan exhausts the search limit.
func (p *slotPool) Reserve() (domain.SlotInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return domain.SlotInfo{}, ErrSlotPoolClosed
	}
	if p.grid.MaxConcurrent > 0 && len(p.held) >= p.grid.MaxConcurrent {
		_ = level.Warn(p.logger).Log("msg", "concurrency cap reached, no slot available", "cap", p.grid.MaxConcurrent)
		return domain.SlotInfo{}, ErrNoAvailableSlot
	}
	limit := p.grid.searchLimit()
	for id := 0; id < limit; id++ {
		if p.held[id] {
			continue
		}
		p.held[id] = true
		origin := p.grid.OriginFor(id)
		_ = level.Info(p.logger).Log("msg", "reserved slot", "slot_id", id, "origin", origin)
		return domain.SlotInfo{SlotID: id, Origin: origin}, nil
	}
	_ = level.Error(p.logger).Log("msg", "no free slot id within search limit", "limit", limit)
	return domain.SlotInfo{}, ErrNoAvailableSlot
}

// Release returns a slot to the pool. Releasing an id that is not currently
// held is logged and ignored; ids below zero are rejected the same way.
func (p *slotPool) Release(slotID int) {
	if slotID < 0 {
		_ = level.Warn(p.logger).Log("msg", "attempted to release an invalid slot id", "slot_id", slotID)
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.held[slotID] {
		_ = level.Warn(p.logger).Log("msg", "attempted to release a slot that was not held", "slot_id", slotID)
		return
	}
	delete(p.held, slotID)
	_ = level.Info(p.logger).Log("msg", "released slot", "slot_id", slotID)
}

// Live returns the number of currently held slots.
func (p *slotPool) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.held)
}

// Close marks the pool closed and clears the held set. Idempotent: repeated
// call returns nil with no side effects.
func (p *slotPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.held = map[int]bool{}
	return nil
}
