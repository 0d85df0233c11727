package interfaces

import "arenamanager/domain"

// SlotPool owns the bounded grid of arena slots. Reserve atomically picks the
// lowest free slot id and marks it held, returning its logical id and world
// origin; it fails with service.ErrNoAvailableSlot when the concurrency cap is
// reached or the search limit is exhausted. Release returns a slot to the
// pool; releasing an id that is not held is logged, not fatal.
//
//go:generate moq -stub -out mock/slot_pool.go -pkg mock . SlotPool
type SlotPool interface {
	Reserve() (domain.SlotInfo, error)
	Release(slotID int)
	Live() int
	Close() error
}
