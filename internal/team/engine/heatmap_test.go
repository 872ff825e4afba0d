package engine

import "testing"

func TestBuildHeatmapEmpty(t *testing.T) {
	hm := BuildHeatmap(nil)

	if len(hm.Weeks) != 0 || len(hm.Matrix) != 0 {
		t.Errorf("empty input must yield empty weeks/matrix: %+v", hm)
	}
	if len(hm.Days) != 7 || hm.Days[0] != "Mon" || hm.Days[6] != "Sun" {
		t.Errorf("day labels must stay fixed: %v", hm.Days)
	}
}

func TestBuildHeatmapAlignment(t *testing.T) {
	// 2024-03-06은 수요일, 2024-03-12는 화요일: 두 주가 나와야 한다
	logs := []ActivityLog{
		{ID: "l1", Date: "2024-03-06", Participants: []Participant{{MemberID: "m1", ContributionScore: 3}}},
		{ID: "l2", Date: "2024-03-12", Participants: []Participant{{MemberID: "m1", ContributionScore: 2}}},
	}

	hm := BuildHeatmap(logs)

	if len(hm.Weeks) != 2 || len(hm.Matrix) != 2 {
		t.Fatalf("expected 2 weeks, got weeks=%d matrix=%d", len(hm.Weeks), len(hm.Matrix))
	}
	for i, row := range hm.Matrix {
		if len(row) != 7 {
			t.Errorf("row %d: expected 7 columns, got %d", i, len(row))
		}
	}
	// 첫 주 라벨은 2024-03-04 월요일
	if hm.Weeks[0] != "3/4" {
		t.Errorf("first week label: expected 3/4, got %s", hm.Weeks[0])
	}
	if hm.Weeks[1] != "3/11" {
		t.Errorf("second week label: expected 3/11, got %s", hm.Weeks[1])
	}
	// 수요일 칸(인덱스 2)에 점수가 들어간다
	if hm.Matrix[0][2] != 3 {
		t.Errorf("expected 3 at week 0 Wednesday, got %d", hm.Matrix[0][2])
	}
	if hm.Matrix[1][1] != 2 {
		t.Errorf("expected 2 at week 1 Tuesday, got %d", hm.Matrix[1][1])
	}
}

func TestBuildHeatmapSameDateAccumulates(t *testing.T) {
	logs := []ActivityLog{
		{ID: "l1", Date: "2024-03-04", Participants: []Participant{{MemberID: "m1", ContributionScore: 2}}},
		{ID: "l2", Date: "2024-03-04", Participants: []Participant{{MemberID: "m2", ContributionScore: 5}}},
	}

	hm := BuildHeatmap(logs)

	if len(hm.Matrix) != 1 {
		t.Fatalf("expected 1 week, got %d", len(hm.Matrix))
	}
	if hm.Matrix[0][0] != 7 {
		t.Errorf("expected accumulated 7 on Monday, got %d", hm.Matrix[0][0])
	}
}

func TestBuildHeatmapSkipsUnparseableDates(t *testing.T) {
	logs := []ActivityLog{
		{ID: "l1", Date: "not-a-date", Participants: []Participant{{MemberID: "m1", ContributionScore: 9}}},
	}

	hm := BuildHeatmap(logs)
	if len(hm.Weeks) != 0 || len(hm.Matrix) != 0 {
		t.Errorf("unparseable dates must not produce rows: %+v", hm)
	}
}
