package engine

import (
	"math"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func sampleMembers() []Member {
	return []Member{
		{ID: "m1", Alias: "철수", DecidedRole: RoleDev},
		{ID: "m2", Alias: "영희"},
		{ID: "m3", Alias: "민수"},
	}
}

func sampleLogs() []ActivityLog {
	return []ActivityLog{
		{
			ID:           "l1",
			Title:        "로그인 구현",
			Types:        []string{"구현(코딩)"},
			Date:         "2024-03-01",
			Duration:     120,
			EvidenceLink: "https://github.com/team/pr/1",
			Participants: []Participant{
				{MemberID: "m1", Role: "백엔드", ContributionScore: 5, Approved: boolPtr(true)},
				{MemberID: "m2", Role: "프론트", ContributionScore: 3},
			},
		},
		{
			ID:       "l2",
			Title:    "자료 조사",
			Types:    []string{"조사"},
			Date:     "2024-03-01",
			Duration: 60,
			Participants: []Participant{
				{MemberID: "m1", Role: "백엔드", ContributionScore: 2, Approved: boolPtr(true)},
			},
		},
	}
}

func TestCalculateTotals(t *testing.T) {
	totals := CalculateTotals(sampleLogs())

	if totals.TotalLogs != 2 {
		t.Errorf("totalLogs: expected 2, got %d", totals.TotalLogs)
	}
	if totals.TotalMinutes != 180 {
		t.Errorf("totalMinutes: expected 180, got %d", totals.TotalMinutes)
	}
	if totals.LogsWithEvidence != 1 {
		t.Errorf("logsWithEvidence: expected 1, got %d", totals.LogsWithEvidence)
	}
	if totals.CollaborativeLogs != 1 {
		t.Errorf("collaborativeLogs: expected 1, got %d", totals.CollaborativeLogs)
	}
}

func TestCalculateTotalsKeepsNegativeDurations(t *testing.T) {
	logs := []ActivityLog{
		{ID: "l1", Date: "2024-03-01", Duration: -30},
		{ID: "l2", Date: "2024-03-01", Duration: 60},
	}

	totals := CalculateTotals(logs)
	if totals.TotalMinutes != 30 {
		t.Errorf("negative durations must pass through, got %d", totals.TotalMinutes)
	}
}

func TestContributionByMemberIncludesEveryMember(t *testing.T) {
	members := sampleMembers()
	byMember := contributionByMember(members, sampleLogs())

	if len(byMember) != len(members) {
		t.Fatalf("expected %d entries, got %d", len(members), len(byMember))
	}

	m1 := byMember[0]
	if m1.ScoreSum != 7 || m1.MinutesSum != 180 || m1.LogCount != 2 || m1.CollaborativeCount != 1 {
		t.Errorf("unexpected m1 rollup: %+v", m1)
	}
	if m1.DecidedRole != "DEV" {
		t.Errorf("decidedRole: expected DEV, got %s", m1.DecidedRole)
	}

	m3 := byMember[2]
	if m3.ScoreSum != 0 || m3.LogCount != 0 {
		t.Errorf("inactive member must appear with zeros: %+v", m3)
	}
	if m3.DecidedRole != "미확정" {
		t.Errorf("missing decidedRole should fall back, got %s", m3.DecidedRole)
	}
}

func TestContributionByRole(t *testing.T) {
	logs := sampleLogs()
	logs = append(logs, ActivityLog{
		ID:   "l3",
		Date: "2024-03-02",
		Participants: []Participant{
			{MemberID: "m3", ContributionScore: 4},
		},
	})

	byRole := contributionByRole(logs)

	if len(byRole) != 3 {
		t.Fatalf("expected 3 role buckets, got %d", len(byRole))
	}
	if byRole[0].Role != "백엔드" || byRole[0].ScoreSum != 7 || byRole[0].ParticipantCount != 2 {
		t.Errorf("unexpected top bucket: %+v", byRole[0])
	}
	// 빈 역할 라벨은 미지정으로 집계된다
	found := false
	for _, rc := range byRole {
		if rc.Role == "미지정" && rc.ScoreSum == 4 {
			found = true
		}
	}
	if !found {
		t.Errorf("missing 미지정 bucket: %+v", byRole)
	}
	for i := 1; i < len(byRole); i++ {
		if byRole[i-1].ScoreSum < byRole[i].ScoreSum {
			t.Errorf("byRole not sorted by scoreSum desc: %+v", byRole)
		}
	}
}

func TestContributionByDate(t *testing.T) {
	byDate := contributionByDate(sampleLogs())

	if len(byDate) != 1 {
		t.Fatalf("expected 1 date bucket, got %d", len(byDate))
	}
	day := byDate[0]
	if day.Date != "2024-03-01" || day.ScoreSum != 10 || day.LogCount != 2 || day.MinutesSum != 180 {
		t.Errorf("unexpected date rollup: %+v", day)
	}
}

func TestContributionByDateSortedAscending(t *testing.T) {
	logs := []ActivityLog{
		{ID: "l1", Date: "2024-03-05"},
		{ID: "l2", Date: "2024-03-01"},
		{ID: "l3", Date: "2024-03-03"},
	}

	byDate := contributionByDate(logs)
	for i := 1; i < len(byDate); i++ {
		if byDate[i-1].Date > byDate[i].Date {
			t.Errorf("byDate not sorted ascending: %+v", byDate)
		}
	}
}

func TestTypeBreakdownEvenSplit(t *testing.T) {
	members := []Member{{ID: "m1", Alias: "철수"}}
	logs := []ActivityLog{
		{
			ID:    "l1",
			Types: []string{"구현(코딩)", "디자인"},
			Date:  "2024-03-01",
			Participants: []Participant{
				{MemberID: "m1", ContributionScore: 5},
			},
		},
	}

	breakdown := contributionByMemberTypeBreakdown(members, logs)

	if len(breakdown) != 1 {
		t.Fatalf("expected 1 member, got %d", len(breakdown))
	}
	for _, ts := range breakdown[0].Breakdown {
		if ts.Score != 2.5 {
			t.Errorf("type %s: expected 2.5, got %v", ts.Type, ts.Score)
		}
	}
	if breakdown[0].TotalScore != 5 {
		t.Errorf("totalScore: expected 5, got %v", breakdown[0].TotalScore)
	}
}

func TestTypeBreakdownTotalMatchesSum(t *testing.T) {
	breakdown := contributionByMemberTypeBreakdown(sampleMembers(), sampleLogs())

	for _, mb := range breakdown {
		sum := 0.0
		for _, ts := range mb.Breakdown {
			sum += ts.Score
		}
		if math.Abs(sum-mb.TotalScore) > 1e-9 {
			t.Errorf("member %s: breakdown sum %v != totalScore %v", mb.MemberID, sum, mb.TotalScore)
		}
	}
}

func TestTypeBreakdownExcludesInactiveMembers(t *testing.T) {
	members := sampleMembers()
	breakdown := contributionByMemberTypeBreakdown(members, sampleLogs())

	if len(breakdown) >= len(members) {
		t.Fatalf("inactive members must be excluded, got %d of %d", len(breakdown), len(members))
	}
	for _, mb := range breakdown {
		if mb.MemberID == "m3" {
			t.Error("m3 has no activity and must not appear")
		}
		if mb.TotalScore <= 0 {
			t.Errorf("member %s: totalScore must be positive, got %v", mb.MemberID, mb.TotalScore)
		}
	}
}

func TestTypeBreakdownZeroScoreDefaultsToOne(t *testing.T) {
	members := []Member{{ID: "m1", Alias: "철수"}}
	logs := []ActivityLog{
		{
			ID:    "l1",
			Types: []string{"회의·조율"},
			Date:  "2024-03-01",
			Participants: []Participant{
				{MemberID: "m1", ContributionScore: 0},
			},
		},
	}

	breakdown := contributionByMemberTypeBreakdown(members, logs)
	if len(breakdown) != 1 || breakdown[0].TotalScore != 1 {
		t.Errorf("zero score should count as 1: %+v", breakdown)
	}
}
