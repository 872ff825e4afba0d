package service

import (
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/engine"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
)

// toEngineMember 엔진 입력용 팀원 스냅샷 변환
func toEngineMember(m *entity.Member) engine.Member {
	member := engine.Member{
		ID:          m.ID,
		Alias:       m.Alias,
		DecidedRole: engine.RoleKey(m.DecidedRole),
	}
	if m.Profile != nil {
		profile := &engine.Profile{
			MajorType: m.Profile.MajorType,
			AvoidRole: engine.RoleKey(m.Profile.AvoidRole),
		}
		for _, s := range m.Profile.Skills {
			profile.Skills = append(profile.Skills, engine.RoleKey(s))
		}
		for _, p := range m.Profile.PreferredRoles {
			profile.PreferredRoles = append(profile.PreferredRoles, engine.RoleKey(p))
		}
		member.Profile = profile
	}
	return member
}

// toEngineMembers 팀원 목록 변환
func toEngineMembers(members []entity.Member) []engine.Member {
	result := make([]engine.Member, len(members))
	for i := range members {
		result[i] = toEngineMember(&members[i])
	}
	return result
}

// toEngineLog 엔진 입력용 로그 스냅샷 변환
func toEngineLog(l *entity.ActivityLog) engine.ActivityLog {
	log := engine.ActivityLog{
		ID:           l.ID,
		Title:        l.Title,
		Types:        l.Types,
		Date:         l.Date,
		StartTime:    l.StartTime,
		EndTime:      l.EndTime,
		Duration:     l.Duration,
		EvidenceLink: l.EvidenceLink,
		Status:       l.Status,
	}
	for _, p := range l.Participants {
		log.Participants = append(log.Participants, engine.Participant{
			MemberID:          p.MemberID,
			Role:              p.Role,
			ContributionScore: p.ContributionScore,
			Comment:           p.Comment,
			Approved:          p.Approved,
		})
	}
	return log
}

// toEngineLogs 로그 목록 변환
func toEngineLogs(logs []entity.ActivityLog) []engine.ActivityLog {
	result := make([]engine.ActivityLog, len(logs))
	for i := range logs {
		result[i] = toEngineLog(&logs[i])
	}
	return result
}
