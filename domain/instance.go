package domain

import (
	"fmt"
	"sync"
	"time"
)

// ArenaState is the lifecycle state of one arena instance.
type ArenaState int

const (
	// StatePreparing means the blueprint is pasted and the instance is registered
	// but no encounter has started in it yet.
	StatePreparing ArenaState = iota
	// StateInUse means members were teleported in and the boss is live.
	StateInUse
	// StateCleaningUp means teardown has begun; the instance is discarded once
	// its region is cleared and the slot released.
	StateCleaningUp
)

func (s ArenaState) String() string {
	switch s {
	case StatePreparing:
		return "preparing"
	case StateInUse:
		return "in_use"
	case StateCleaningUp:
		return "cleaning_up"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ArenaInstance is one live occurrence of a theme, created per request and
// exclusively owned by the instance registry for its lifetime. Mutable fields
// are guarded by an internal mutex so admin reads can run concurrently with
// the coordinating goroutine that drives the lifecycle.
type ArenaInstance struct {
	ID    string
	Theme ArenaTheme
	Slot  SlotInfo

	mu                sync.Mutex
	state             ArenaState
	memberIDs         []string
	boss              *BossDefinition
	bossEntityID      string
	musicTrack        string
	createdAt         time.Time
	lastActivity      time.Time
	originalLocations map[string]Location
	retireStarted     bool
}

// NewArenaInstance creates an instance in state StatePreparing.
func NewArenaInstance(id string, theme ArenaTheme, slot SlotInfo, now time.Time) *ArenaInstance {
	return &ArenaInstance{
		ID:                id,
		Theme:             theme,
		Slot:              slot,
		state:             StatePreparing,
		createdAt:         now,
		lastActivity:      now,
		originalLocations: make(map[string]Location),
	}
}

// State returns the current lifecycle state.
func (a *ArenaInstance) State() ArenaState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// SetState transitions the instance and bumps last activity. Entering
// StateCleaningUp clears the tracked boss entity.
func (a *ArenaInstance) SetState(state ArenaState, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = state
	a.lastActivity = now
	if state == StateCleaningUp {
		a.bossEntityID = ""
	}
}

// BeginRetire marks the instance as retiring. Returns false when another
// retire already started; only the first caller proceeds with teardown.
func (a *ArenaInstance) BeginRetire() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.retireStarted {
		return false
	}
	a.retireStarted = true
	return true
}

// SetParty assigns membership and the chosen definition, recording each
// member's pre-encounter location for restoration on teardown.
func (a *ArenaInstance) SetParty(memberIDs []string, boss *BossDefinition, locations map[string]Location, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.memberIDs = append([]string(nil), memberIDs...)
	a.boss = boss
	a.originalLocations = make(map[string]Location, len(locations))
	for id, loc := range locations {
		a.originalLocations[id] = loc
	}
	a.lastActivity = now
}

// MemberIDs returns a copy of the member subject ids.
func (a *ArenaInstance) MemberIDs() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.memberIDs...)
}

// HasMember reports whether the subject is part of this instance's party.
func (a *ArenaInstance) HasMember(subjectID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, id := range a.memberIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}

// Boss returns the active definition, or nil before activation.
func (a *ArenaInstance) Boss() *BossDefinition {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.boss
}

// BossEntityID returns the live boss actor id, or "" when none is tracked.
func (a *ArenaInstance) BossEntityID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bossEntityID
}

// SetBossEntityID records (or clears, with "") the live boss actor id.
func (a *ArenaInstance) SetBossEntityID(entityID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bossEntityID = entityID
}

// MusicTrack returns the ambiance track playing in this instance, or "".
func (a *ArenaInstance) MusicTrack() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.musicTrack
}

// SetMusicTrack records the ambiance track chosen at activation.
func (a *ArenaInstance) SetMusicTrack(track string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.musicTrack = track
}

// OriginalLocations returns a copy of the saved pre-encounter member locations.
func (a *ArenaInstance) OriginalLocations() map[string]Location {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]Location, len(a.originalLocations))
	for id, loc := range a.originalLocations {
		out[id] = loc
	}
	return out
}

// CreatedAt returns the creation timestamp.
func (a *ArenaInstance) CreatedAt() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.createdAt
}

// LastActivity returns the last state-change timestamp.
func (a *ArenaInstance) LastActivity() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastActivity
}

func (a *ArenaInstance) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fmt.Sprintf("ArenaInstance{id=%s, slotId=%d, theme=%s, state=%s, partySize=%d}",
		a.ID, a.Slot.SlotID, a.Theme.ID, a.state, len(a.memberIDs))
}
