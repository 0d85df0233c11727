package handlers

// ThemeInfo is one arena theme in API responses.
type ThemeInfo struct {
	ThemeId     string `json:"theme_id"`
	DisplayName string `json:"display_name"`
	Blueprint   string `json:"blueprint,omitempty"`
	HasGeometry bool   `json:"has_geometry"`
}

// ThemesResponse lists the theme catalog.
type ThemesResponse struct {
	Themes []ThemeInfo `json:"themes"`
}

// BossInfo is one boss definition in API responses.
type BossInfo struct {
	BossId        string   `json:"boss_id"`
	DisplayName   string   `json:"display_name"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Description   []string `json:"description,omitempty"`
	GemCost       int64    `json:"gem_cost"`
	RequiredLevel int      `json:"required_level,omitempty"`
}

// BossesResponse lists the boss catalog.
type BossesResponse struct {
	Bosses []BossInfo `json:"bosses"`
}

// InstanceInfo is one live arena instance in API responses.
type InstanceInfo struct {
	InstanceId   string   `json:"instance_id"`
	ThemeId      string   `json:"theme_id"`
	State        string   `json:"state"`
	SlotId       int      `json:"slot_id"`
	BossId       string   `json:"boss_id,omitempty"`
	BossEntityId string   `json:"boss_entity_id,omitempty"`
	MemberIds    []string `json:"member_ids,omitempty"`
	CreatedAt    string   `json:"created_at"`
	LastActivity string   `json:"last_activity"`
}

// InstancesResponse lists live instances.
type InstancesResponse struct {
	Instances []InstanceInfo `json:"instances"`
}

// ProvisionRequest asks for a bare instance of a theme.
type ProvisionRequest struct {
	ThemeId string `json:"theme_id"`
}

// StartEventRequest starts the full encounter workflow on behalf of a player.
type StartEventRequest struct {
	RequesterId string `json:"requester_id"`
	BossId      string `json:"boss_id"`
	ThemeId     string `json:"theme_id"`
}

// TestEventRequest starts a solo encounter for one subject, skipping the
// party check and the entry cost.
type TestEventRequest struct {
	SubjectId string `json:"subject_id"`
	BossId    string `json:"boss_id"`
	ThemeId   string `json:"theme_id"`
}

// PartyInfoResponse echoes the party authority's answer for a subject.
type PartyInfoResponse struct {
	SubjectId string   `json:"subject_id"`
	Success   bool     `json:"success"`
	IsLeader  bool     `json:"is_leader"`
	Size      int      `json:"size"`
	MemberIds []string `json:"member_ids,omitempty"`
}
