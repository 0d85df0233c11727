package handlers

import (
	"time"

	"arenamanager/domain"
)

// toThemesResponse converts catalog themes to API response.
func toThemesResponse(themes []domain.ArenaTheme) ThemesResponse {
	out := make([]ThemeInfo, 0, len(themes))
	for _, t := range themes {
		out = append(out, ThemeInfo{
			ThemeId:     t.ID,
			DisplayName: t.DisplayName,
			Blueprint:   t.BlueprintFile,
			HasGeometry: t.HasGeometry,
		})
	}
	return ThemesResponse{Themes: out}
}

// toBossesResponse converts catalog bosses to API response.
func toBossesResponse(bosses []domain.BossDefinition) BossesResponse {
	out := make([]BossInfo, 0, len(bosses))
	for _, b := range bosses {
		out = append(out, BossInfo{
			BossId:        b.ID,
			DisplayName:   b.DisplayName,
			Difficulty:    b.Difficulty,
			Description:   b.Description,
			GemCost:       b.GemCost,
			RequiredLevel: b.RequiredLevel,
		})
	}
	return BossesResponse{Bosses: out}
}

// toInstanceInfo converts one live instance to API response.
func toInstanceInfo(inst *domain.ArenaInstance) InstanceInfo {
	info := InstanceInfo{
		InstanceId:   inst.ID,
		ThemeId:      inst.Theme.ID,
		State:        inst.State().String(),
		SlotId:       inst.Slot.SlotID,
		BossEntityId: inst.BossEntityID(),
		MemberIds:    inst.MemberIDs(),
		CreatedAt:    inst.CreatedAt().UTC().Format(time.RFC3339),
		LastActivity: inst.LastActivity().UTC().Format(time.RFC3339),
	}
	if boss := inst.Boss(); boss != nil {
		info.BossId = boss.ID
	}
	return info
}

// toInstancesResponse converts live instances to API response.
func toInstancesResponse(instances []*domain.ArenaInstance) InstancesResponse {
	out := make([]InstanceInfo, 0, len(instances))
	for _, inst := range instances {
		out = append(out, toInstanceInfo(inst))
	}
	return InstancesResponse{Instances: out}
}

// toPartyInfoResponse converts a party authority answer to API response.
func toPartyInfoResponse(info domain.PartyInfo) PartyInfoResponse {
	return PartyInfoResponse{
		SubjectId: info.SubjectID,
		Success:   info.Success,
		IsLeader:  info.IsLeader,
		Size:      info.Size,
		MemberIds: info.MemberIDs,
	}
}
