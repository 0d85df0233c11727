package domain

// ArenaTheme is an immutable arena template loaded from config: a structure
// blueprint plus the spawn points relative to the slot origin. Dimensions and
// OriginOffset are read from the blueprint once at load time so teardown can
// compute the exact region to clear without re-reading the blueprint file.
type ArenaTheme struct {
	ID            string
	DisplayName   string
	BlueprintFile string
	MemberSpawns  []Offset
	BossSpawn     *Offset
	Dimensions    Vec3
	OriginOffset  Vec3
	HasGeometry   bool
}

// MemberSpawn returns the spawn location for the member at index, cycling
// through the configured spawn points (index modulo their count). Returns
// (Location{}, false) when the theme has no member spawn points; callers treat
// that as a soft failure for the one member, not an abort.
func (t ArenaTheme) MemberSpawn(index int, origin Location) (Location, bool) {
	if len(t.MemberSpawns) == 0 {
		return Location{}, false
	}
	off := t.MemberSpawns[index%len(t.MemberSpawns)]
	return off.Apply(origin), true
}

// BossSpawnLocation resolves the boss spawn point against the slot origin.
// Returns false when the theme has no boss spawn configured.
func (t ArenaTheme) BossSpawnLocation(origin Location) (Location, bool) {
	if t.BossSpawn == nil {
		return Location{}, false
	}
	return t.BossSpawn.Apply(origin), true
}

// ClearRegion computes the exact block region the pasted blueprint occupies at
// the given origin: min = origin + originOffset, max = min + dimensions - 1.
func (t ArenaTheme) ClearRegion(origin Location) Region {
	min := Vec3{X: int(origin.X), Y: int(origin.Y), Z: int(origin.Z)}.Add(t.OriginOffset)
	return Region{Min: min, Max: min.Add(t.Dimensions).Sub(One)}
}
