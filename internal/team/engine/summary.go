package engine

import "time"

// Project 프로젝트 스냅샷
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Period 집계 기간
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PendingApproval 승인 대기 참여 항목
type PendingApproval struct {
	LogID    string `json:"logId"`
	LogTitle string `json:"logTitle"`
	MemberID string `json:"memberId"`
	Alias    string `json:"alias"`
	Role     string `json:"role"`
}

// Approvals 승인 상황. rejected는 예약 필드로 항상 비어 있다.
type Approvals struct {
	Pending  []PendingApproval `json:"pending"`
	Rejected []PendingApproval `json:"rejected"`
}

// SummaryContent 대시보드 요약 본문
type SummaryContent struct {
	GeneratedAt  time.Time     `json:"generatedAt"`
	Period       Period        `json:"period"`
	Totals       Totals        `json:"totals"`
	Contribution *Contribution `json:"contribution"`
	Approvals    Approvals     `json:"approvals"`
}

// GenerateSummary 규칙 기반 대시보드 요약 생성.
// 외부 AI 없이 모든 계산은 결정적 집계로 수행된다.
func GenerateSummary(project Project, members []Member, logs []ActivityLog) *SummaryContent {
	return &SummaryContent{
		GeneratedAt:  time.Now(),
		Period:       calculatePeriod(logs),
		Totals:       CalculateTotals(logs),
		Contribution: AggregateContribution(members, logs),
		Approvals:    analyzeApprovals(members, logs),
	}
}

// calculatePeriod 로그 날짜 문자열의 최소/최대, 로그가 없으면 오늘/오늘
func calculatePeriod(logs []ActivityLog) Period {
	if len(logs) == 0 {
		today := time.Now().Format(dateLayout)
		return Period{Start: today, End: today}
	}

	start, end := logs[0].Date, logs[0].Date
	for _, log := range logs[1:] {
		if log.Date < start {
			start = log.Date
		}
		if log.Date > end {
			end = log.Date
		}
	}
	return Period{Start: start, End: end}
}

// analyzeApprovals approved가 false 또는 미설정인 참여 항목을 수집.
// 삭제된 팀원을 가리키는 항목은 건너뛴다.
func analyzeApprovals(members []Member, logs []ActivityLog) Approvals {
	aliases := make(map[string]string, len(members))
	for _, m := range members {
		aliases[m.ID] = m.Alias
	}

	pending := []PendingApproval{}
	for _, log := range logs {
		for _, p := range log.Participants {
			alias, ok := aliases[p.MemberID]
			if !ok {
				continue
			}
			if p.Approved == nil || !*p.Approved {
				pending = append(pending, PendingApproval{
					LogID:    log.ID,
					LogTitle: log.Title,
					MemberID: p.MemberID,
					Alias:    alias,
					Role:     p.Role,
				})
			}
		}
	}

	return Approvals{Pending: pending, Rejected: []PendingApproval{}}
}
