package handler

import (
	"testing"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/testutil"
)

func TestMemberCreateAndList(t *testing.T) {
	r, _ := setupEnv(t)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{
		"alias": "김철수",
		"profile": map[string]interface{}{
			"majorType":      "ENGINEERING",
			"skills":         []string{"DEV", "DATA"},
			"preferredRoles": []string{"DEV", "DATA", "PL"},
			"avoidRole":      "PRESENT",
		},
	}
	w := testutil.DoRequest(r, "POST", "/api/v1/members", body, token)
	if w.Code != 201 {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, "GET", "/api/v1/members", nil, token)
	if w.Code != 200 {
		t.Fatalf("list status = %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("members = %d, want 1", len(items))
	}
	member := items[0].(map[string]interface{})
	if member["alias"] != "김철수" {
		t.Errorf("alias = %v", member["alias"])
	}
}

func TestMemberCreateNormalizesProfile(t *testing.T) {
	r, _ := setupEnv(t)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{
		"alias": "이영희",
		"profile": map[string]interface{}{
			"majorType":      "ENGINEERING",
			"skills":         []string{"DEV", "COOKING"},
			"preferredRoles": []string{"DEV", "DEV", "DESIGN", "DOCS", "PL"},
			"avoidRole":      "DESIGN",
		},
	}
	w := testutil.DoRequest(r, "POST", "/api/v1/members", body, token)
	if w.Code != 201 {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	profile := data["profile"].(map[string]interface{})

	skills := profile["skills"].([]interface{})
	if len(skills) != 1 || skills[0] != "DEV" {
		t.Errorf("skills = %v", skills)
	}
	// 중복과 기피 역할 제외, 최대 3개
	preferred := profile["preferredRoles"].([]interface{})
	if len(preferred) != 3 || preferred[0] != "DEV" || preferred[1] != "DOCS" || preferred[2] != "PL" {
		t.Errorf("preferredRoles = %v", preferred)
	}
}

func TestSetDecidedRole(t *testing.T) {
	r, db := setupEnv(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "proj-001", "테스트 프로젝트")
	member := testutil.SeedMember(t, db, project.ID, "mem-001", "박민수", &entity.Profile{MajorType: "DESIGN"})

	w := testutil.DoRequest(r, "PUT", "/api/v1/members/"+member.ID+"/decided-role",
		map[string]string{"decided_role": "DESIGN"}, token)
	if w.Code != 200 {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["decided_role"] != "DESIGN" {
		t.Errorf("decided_role = %v", data["decided_role"])
	}

	// 잘못된 역할 키는 거절
	w = testutil.DoRequest(r, "PUT", "/api/v1/members/"+member.ID+"/decided-role",
		map[string]string{"decided_role": "MANAGER"}, token)
	if w.Code != 400 {
		t.Errorf("invalid role status = %d", w.Code)
	}
}

func TestRoleScoresAndRecommendations(t *testing.T) {
	r, db := setupEnv(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "proj-001", "테스트 프로젝트")
	member := testutil.SeedMember(t, db, project.ID, "mem-001", "김철수", &entity.Profile{
		MajorType:      "ENGINEERING",
		Skills:         []string{"DEV"},
		PreferredRoles: []string{"DEV"},
		AvoidRole:      "PRESENT",
	})

	w := testutil.DoRequest(r, "GET", "/api/v1/members/"+member.ID+"/role-scores", nil, token)
	if w.Code != 200 {
		t.Fatalf("role-scores status = %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	scores := resp["data"].(map[string]interface{})["scores"].(map[string]interface{})
	if scores["DEV"].(float64) != 7 {
		t.Errorf("DEV score = %v, want 7", scores["DEV"])
	}
	if scores["PRESENT"].(float64) != -100 {
		t.Errorf("PRESENT score = %v, want -100", scores["PRESENT"])
	}

	w = testutil.DoRequest(r, "GET", "/api/v1/recommendations", nil, token)
	if w.Code != 200 {
		t.Fatalf("recommendations status = %d", w.Code)
	}
	resp = testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	recs := data["recommendations"].([]interface{})
	if len(recs) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(recs))
	}
	rec := recs[0].(map[string]interface{})
	if rec["suggestedRole"] != "DEV" {
		t.Errorf("suggestedRole = %v", rec["suggestedRole"])
	}
}
