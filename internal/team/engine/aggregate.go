package engine

import (
	"sort"
	"strings"
)

// Participant 활동 로그 참여자
type Participant struct {
	MemberID          string `json:"memberId"`
	Role              string `json:"role"` // 활동 내 역할 설명, 자유 텍스트
	ContributionScore int    `json:"contributionScore"`
	Comment           string `json:"comment"`
	Approved          *bool  `json:"approved"` // false 또는 미설정이면 승인 대기
}

// ActivityLog 활동 로그 스냅샷
type ActivityLog struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Types        []string      `json:"types"`
	Date         string        `json:"date"` // YYYY-MM-DD
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	Duration     int           `json:"duration"` // 분, 음수 가능
	EvidenceLink string        `json:"evidenceLink"`
	Status       string        `json:"status"`
	Participants []Participant `json:"participants"`
}

// Totals 전체 지표
type Totals struct {
	TotalLogs         int `json:"totalLogs"`
	TotalMinutes      int `json:"totalMinutes"`
	LogsWithEvidence  int `json:"logsWithEvidence"`
	CollaborativeLogs int `json:"collaborativeLogs"`
}

// MemberContribution 팀원별 기여도
type MemberContribution struct {
	MemberID           string `json:"memberId"`
	Alias              string `json:"alias"`
	DecidedRole        string `json:"decidedRole"`
	ScoreSum           int    `json:"scoreSum"`
	MinutesSum         int    `json:"minutesSum"`
	LogCount           int    `json:"logCount"`
	CollaborativeCount int    `json:"collaborativeCount"`
}

// RoleContribution 역할 라벨별 기여도
type RoleContribution struct {
	Role             string `json:"role"`
	ScoreSum         int    `json:"scoreSum"`
	ParticipantCount int    `json:"participantCount"`
}

// DateContribution 날짜별 기여도
type DateContribution struct {
	Date       string `json:"date"`
	ScoreSum   int    `json:"scoreSum"`
	MinutesSum int    `json:"minutesSum"`
	LogCount   int    `json:"logCount"`
}

// TypeScore 활동 유형별 누적 점수
type TypeScore struct {
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

// MemberTypeBreakdown 팀원별 활동 유형 비중
type MemberTypeBreakdown struct {
	MemberID   string      `json:"memberId"`
	Alias      string      `json:"alias"`
	Breakdown  []TypeScore `json:"breakdown"`
	TotalScore float64     `json:"totalScore"`
}

// Contribution 기여도 분석 결과
type Contribution struct {
	ByMember              []MemberContribution  `json:"byMember"`
	ByRole                []RoleContribution    `json:"byRole"`
	ByDate                []DateContribution    `json:"byDate"`
	Heatmap               *Heatmap              `json:"heatmap"`
	ByMemberTypeBreakdown []MemberTypeBreakdown `json:"byMemberTypeBreakdown"`
}

// AggregateContribution 기여도 분석, 입력을 변경하지 않는다
func AggregateContribution(members []Member, logs []ActivityLog) *Contribution {
	return &Contribution{
		ByMember:              contributionByMember(members, logs),
		ByRole:                contributionByRole(logs),
		ByDate:                contributionByDate(logs),
		Heatmap:               BuildHeatmap(logs),
		ByMemberTypeBreakdown: contributionByMemberTypeBreakdown(members, logs),
	}
}

// CalculateTotals 전체 지표 계산
func CalculateTotals(logs []ActivityLog) Totals {
	totals := Totals{TotalLogs: len(logs)}
	for _, log := range logs {
		totals.TotalMinutes += log.Duration
		if strings.TrimSpace(log.EvidenceLink) != "" {
			totals.LogsWithEvidence++
		}
		if len(log.Participants) >= 2 {
			totals.CollaborativeLogs++
		}
	}
	return totals
}

// contributionByMember 모든 팀원이 결과에 포함된다, 활동이 없으면 0
func contributionByMember(members []Member, logs []ActivityLog) []MemberContribution {
	result := make([]MemberContribution, 0, len(members))
	for _, member := range members {
		mc := MemberContribution{
			MemberID:    member.ID,
			Alias:       member.Alias,
			DecidedRole: string(member.DecidedRole),
		}
		if mc.DecidedRole == "" {
			mc.DecidedRole = "미확정"
		}
		for _, log := range logs {
			participant, ok := findParticipant(log, member.ID)
			if !ok {
				continue
			}
			mc.ScoreSum += participant.ContributionScore
			mc.MinutesSum += log.Duration
			mc.LogCount++
			if len(log.Participants) >= 2 {
				mc.CollaborativeCount++
			}
		}
		result = append(result, mc)
	}
	return result
}

// contributionByRole 참여자 역할 라벨 기준 집계, 빈 라벨은 "미지정"
func contributionByRole(logs []ActivityLog) []RoleContribution {
	roleMap := make(map[string]*RoleContribution)
	var order []string

	for _, log := range logs {
		for _, p := range log.Participants {
			role := p.Role
			if role == "" {
				role = "미지정"
			}
			rc, ok := roleMap[role]
			if !ok {
				rc = &RoleContribution{Role: role}
				roleMap[role] = rc
				order = append(order, role)
			}
			rc.ScoreSum += p.ContributionScore
			rc.ParticipantCount++
		}
	}

	result := make([]RoleContribution, 0, len(order))
	for _, role := range order {
		result = append(result, *roleMap[role])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ScoreSum > result[j].ScoreSum
	})
	return result
}

// contributionByDate 날짜 문자열 기준 집계, 날짜 오름차순
func contributionByDate(logs []ActivityLog) []DateContribution {
	dateMap := make(map[string]*DateContribution)
	var order []string

	for _, log := range logs {
		dc, ok := dateMap[log.Date]
		if !ok {
			dc = &DateContribution{Date: log.Date}
			dateMap[log.Date] = dc
			order = append(order, log.Date)
		}
		for _, p := range log.Participants {
			dc.ScoreSum += p.ContributionScore
		}
		dc.MinutesSum += log.Duration
		dc.LogCount++
	}

	result := make([]DateContribution, 0, len(order))
	for _, date := range order {
		result = append(result, *dateMap[date])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}

// contributionByMemberTypeBreakdown 참여 점수를 활동 유형에 균등 분배.
// 점수가 0점 초과인 팀원만 결과에 남는다.
func contributionByMemberTypeBreakdown(members []Member, logs []ActivityLog) []MemberTypeBreakdown {
	result := []MemberTypeBreakdown{}

	for _, member := range members {
		typeMap := make(map[string]float64)
		var order []string

		for _, log := range logs {
			participant, ok := findParticipant(log, member.ID)
			if !ok {
				continue
			}
			score := float64(participant.ContributionScore)
			if score == 0 {
				score = 1
			}
			if len(log.Types) == 0 {
				continue
			}
			perType := score / float64(len(log.Types))
			for _, t := range log.Types {
				if _, seen := typeMap[t]; !seen {
					order = append(order, t)
				}
				typeMap[t] += perType
			}
		}

		breakdown := make([]TypeScore, 0, len(order))
		var totalScore float64
		for _, t := range order {
			breakdown = append(breakdown, TypeScore{Type: t, Score: typeMap[t]})
			totalScore += typeMap[t]
		}
		sort.SliceStable(breakdown, func(i, j int) bool {
			return breakdown[i].Score > breakdown[j].Score
		})

		if totalScore > 0 {
			result = append(result, MemberTypeBreakdown{
				MemberID:   member.ID,
				Alias:      member.Alias,
				Breakdown:  breakdown,
				TotalScore: totalScore,
			})
		}
	}

	return result
}

func findParticipant(log ActivityLog, memberID string) (Participant, bool) {
	for _, p := range log.Participants {
		if p.MemberID == memberID {
			return p, true
		}
	}
	return Participant{}, false
}
