package domain

import "fmt"

// SlotInfo holds a reserved arena slot: its logical id and the world location
// used as the blueprint paste origin.
type SlotInfo struct {
	SlotID int
	Origin Location
}

func (s SlotInfo) String() string {
	return fmt.Sprintf("SlotInfo{slotId=%d, origin=%s}", s.SlotID, s.Origin)
}
