package engine

import "testing"

func TestScoreAllRolesNoProfile(t *testing.T) {
	scores := ScoreAllRoles(Member{ID: "m1", Alias: "철수"})

	if len(scores) != 6 {
		t.Fatalf("expected 6 roles, got %d", len(scores))
	}
	for role, score := range scores {
		if score != 0 {
			t.Errorf("role %s: expected 0, got %d", role, score)
		}
	}
}

func TestScoreAllRolesAvoidOverride(t *testing.T) {
	member := Member{
		ID:    "m1",
		Alias: "영희",
		Profile: &Profile{
			MajorType:      "ART",
			Skills:         []RoleKey{RolePresent},
			PreferredRoles: []RoleKey{RolePresent},
			AvoidRole:      RolePresent,
		},
	}

	scores := ScoreAllRoles(member)
	if scores[RolePresent] != -100 {
		t.Errorf("avoided role must score -100, got %d", scores[RolePresent])
	}
}

func TestScoreAllRolesEngineeringScenario(t *testing.T) {
	member := Member{
		ID:    "m1",
		Alias: "철수",
		Profile: &Profile{
			MajorType:      "ENGINEERING",
			Skills:         []RoleKey{RoleDev},
			PreferredRoles: []RoleKey{RoleDev, RoleData},
			AvoidRole:      RolePresent,
		},
	}

	scores := ScoreAllRoles(member)

	expected := map[RoleKey]int{
		RoleDev:     7, // 계열 2 + 역량 2 + 선호 1순위 3
		RoleData:    4, // 계열 2 + 선호 2순위 2
		RolePresent: -100,
		RolePL:      0,
		RoleDesign:  0,
		RoleDocs:    0,
	}
	for role, want := range expected {
		if scores[role] != want {
			t.Errorf("role %s: expected %d, got %d", role, want, scores[role])
		}
	}
}

func TestSkillScoreIgnoresPL(t *testing.T) {
	// PL은 역량 매핑이 없으므로 역량으로는 점수를 얻을 수 없다
	if got := skillScore([]RoleKey{RolePL}, RolePL); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestPreferredRoleScoreRanks(t *testing.T) {
	preferred := []RoleKey{RoleDocs, RoleDesign, RoleData}

	cases := []struct {
		role RoleKey
		want int
	}{
		{RoleDocs, 3},
		{RoleDesign, 2},
		{RoleData, 1},
		{RoleDev, 0},
	}
	for _, tc := range cases {
		if got := preferredRoleScore(preferred, tc.role); got != tc.want {
			t.Errorf("role %s: expected %d, got %d", tc.role, tc.want, got)
		}
	}
}
