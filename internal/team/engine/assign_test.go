package engine

import "testing"

func TestRecommendRolesEmptyTeam(t *testing.T) {
	result := RecommendRoles(nil)

	if len(result.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %d", len(result.Recommendations))
	}
	if result.Message != "팀원이 없습니다." {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestRecommendRolesNoDuplicatesInPassOne(t *testing.T) {
	// 전원 동일 프로필이면 1차에서 최고 점수 역할을 선착순으로 나눠 갖는다
	profile := &Profile{
		MajorType:      "ENGINEERING",
		PreferredRoles: []RoleKey{RoleDev, RoleData, RoleDocs},
	}
	members := []Member{
		{ID: "m1", Alias: "a", Profile: profile},
		{ID: "m2", Alias: "b", Profile: profile},
		{ID: "m3", Alias: "c", Profile: profile},
	}

	result := RecommendRoles(members)

	if len(result.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(result.Recommendations))
	}

	seenMembers := make(map[string]bool)
	seenRoles := make(map[RoleKey]bool)
	for _, rec := range result.Recommendations {
		if seenMembers[rec.MemberID] {
			t.Errorf("member %s assigned twice", rec.MemberID)
		}
		seenMembers[rec.MemberID] = true
		if seenRoles[rec.SuggestedRole] {
			t.Errorf("role %s assigned twice in pass one", rec.SuggestedRole)
		}
		seenRoles[rec.SuggestedRole] = true
	}

	if result.Recommendations[0].SuggestedRole != RoleDev {
		t.Errorf("first member should get DEV, got %s", result.Recommendations[0].SuggestedRole)
	}
	if result.Recommendations[1].SuggestedRole != RoleData {
		t.Errorf("second member should get DATA, got %s", result.Recommendations[1].SuggestedRole)
	}
}

func TestRecommendRolesPassTwoAllowsDuplicates(t *testing.T) {
	// 선호가 하나뿐인 두 팀원: 두 번째는 1차에서 탈락하고 2차에서 같은 역할을 다시 받는다
	members := []Member{
		{ID: "m1", Alias: "a", Profile: &Profile{PreferredRoles: []RoleKey{RoleDev}}},
		{ID: "m2", Alias: "b", Profile: &Profile{PreferredRoles: []RoleKey{RoleDev}}},
	}

	result := RecommendRoles(members)

	if len(result.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].SuggestedRole != RoleDev || result.Recommendations[1].SuggestedRole != RoleDev {
		t.Errorf("both members should be offered DEV: %+v", result.Recommendations)
	}
}

func TestRecommendRolesSkipsAvoidedRoleInPassTwo(t *testing.T) {
	members := []Member{
		{ID: "m1", Alias: "a", Profile: &Profile{AvoidRole: RolePL}},
	}

	result := RecommendRoles(members)

	if len(result.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].SuggestedRole == RolePL {
		t.Error("avoided role must never be suggested")
	}
}

func TestRecommendRolesReason(t *testing.T) {
	members := []Member{
		{ID: "m1", Alias: "철수", Profile: &Profile{
			MajorType:      "ENGINEERING",
			Skills:         []RoleKey{RoleDev},
			PreferredRoles: []RoleKey{RoleDev},
		}},
	}

	result := RecommendRoles(members)

	rec := result.Recommendations[0]
	if rec.Reason != "공학 계열 + 보유 역량 일치 + 선호 1순위 + 점수: 7" {
		t.Errorf("unexpected reason: %s", rec.Reason)
	}
	if result.Message != "추천 결과입니다. 참고용이며 최종 역할은 팀이 결정합니다." {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestRecommendRolesNoProfileReason(t *testing.T) {
	members := []Member{
		{ID: "m1", Alias: "a"},
		{ID: "m2", Alias: "b", Profile: &Profile{PreferredRoles: []RoleKey{RoleDocs}}},
	}

	result := RecommendRoles(members)

	var noProfile *Recommendation
	for i := range result.Recommendations {
		if result.Recommendations[i].MemberID == "m1" {
			noProfile = &result.Recommendations[i]
		}
	}
	if noProfile == nil {
		t.Fatal("member without profile should still get a pass-two recommendation")
	}
	if noProfile.Reason != "프로필 정보 없음" {
		t.Errorf("unexpected reason: %s", noProfile.Reason)
	}
	if noProfile.Score != 0 {
		t.Errorf("expected score 0, got %d", noProfile.Score)
	}
	if noProfile.SuggestedRole != RolePL {
		t.Errorf("tie at 0 should fall to the first role in order, got %s", noProfile.SuggestedRole)
	}
}

func TestRecommendRolesNeverTouchesDecidedRole(t *testing.T) {
	members := []Member{
		{ID: "m1", Alias: "a", DecidedRole: RoleDocs, Profile: &Profile{PreferredRoles: []RoleKey{RoleDev}}},
	}

	RecommendRoles(members)

	if members[0].DecidedRole != RoleDocs {
		t.Errorf("decidedRole mutated: %s", members[0].DecidedRole)
	}
}
