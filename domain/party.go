package domain

// PartyInfo is the result of a cross-process party lookup. A failed or
// timed-out lookup is Success=false with Size 0 and no members, never an
// absent value, so callers always branch on Success.
type PartyInfo struct {
	SubjectID string
	Success   bool
	IsLeader  bool
	Size      int
	MemberIDs []string
}

// FailedPartyInfo is the sentinel for a failed or timed-out lookup.
func FailedPartyInfo(subjectID string) PartyInfo {
	return PartyInfo{SubjectID: subjectID}
}

// InParty reports whether the subject belongs to any party.
func (p PartyInfo) InParty() bool {
	return p.Size > 0
}
