package handler

import (
	"testing"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/testutil"
	"gorm.io/gorm"
)

func seedLog(t *testing.T, db *gorm.DB, projectID, id, title, memberID string) *entity.ActivityLog {
	t.Helper()
	log := &entity.ActivityLog{
		ID:        id,
		ProjectID: projectID,
		Title:     title,
		Types:     entity.StringArray{"구현(코딩)"},
		Date:      "2024-03-04",
		Participants: entity.ParticipantList{
			{MemberID: memberID, Role: "구현", ContributionScore: 5},
		},
		WhatIDid: "로그인 페이지를 구현했습니다.",
		Status:   entity.LogStatusDone,
	}
	if err := db.Create(log).Error; err != nil {
		t.Fatalf("Failed to seed log: %v", err)
	}
	return log
}

func TestFeedbackSubmitAndList(t *testing.T) {
	r, db := setupEnv(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "proj-001", "테스트 프로젝트")
	member := testutil.SeedMember(t, db, project.ID, "mem-001", "김철수", nil)
	log := seedLog(t, db, project.ID, "log-001", "로그인 페이지 UI 구현", member.ID)

	body := map[string]string{
		"log_id":    log.ID,
		"member_id": member.ID,
		"text":      "UI 구현 퀄리티가 높았어요",
	}
	w := testutil.DoRequest(r, "POST", "/api/v1/feedbacks", body, token)
	if w.Code != 200 {
		t.Fatalf("submit status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["ok"] != true {
		t.Fatalf("ok = %v, message = %v", data["ok"], data["message"])
	}

	w = testutil.DoRequest(r, "GET", "/api/v1/logs/"+log.ID+"/feedbacks", nil, token)
	if w.Code != 200 {
		t.Fatalf("list status = %d", w.Code)
	}
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	if data["count"].(float64) != 1 {
		t.Errorf("count = %v, want 1", data["count"])
	}
}

func TestFeedbackRejectionIsValueNotError(t *testing.T) {
	r, db := setupEnv(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "proj-001", "테스트 프로젝트")
	member := testutil.SeedMember(t, db, project.ID, "mem-001", "김철수", nil)
	log := seedLog(t, db, project.ID, "log-001", "로그인 페이지 UI 구현", member.ID)

	cases := []struct {
		body    map[string]string
		message string
	}{
		{map[string]string{"log_id": "", "member_id": member.ID, "text": "잘 하셨습니다"}, "평가할 활동을 선택해주세요."},
		{map[string]string{"log_id": log.ID, "member_id": "", "text": "잘 하셨습니다"}, "평가할 팀원을 선택해주세요."},
		{map[string]string{"log_id": log.ID, "member_id": member.ID, "text": "짧음"}, "5자 이상 입력해주세요."},
	}
	for _, tc := range cases {
		w := testutil.DoRequest(r, "POST", "/api/v1/feedbacks", tc.body, token)
		if w.Code != 200 {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := testutil.ParseResponse(w)
		data := resp["data"].(map[string]interface{})
		if data["ok"] != false {
			t.Errorf("ok = %v, want false", data["ok"])
		}
		if data["message"] != tc.message {
			t.Errorf("message = %v, want %q", data["message"], tc.message)
		}
	}
}

func TestFeedbackMasksBannedWords(t *testing.T) {
	r, db := setupEnv(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "proj-001", "테스트 프로젝트")
	member := testutil.SeedMember(t, db, project.ID, "mem-001", "김철수", nil)
	log := seedLog(t, db, project.ID, "log-001", "로그인 페이지 UI 구현", member.ID)

	body := map[string]string{
		"log_id":    log.ID,
		"member_id": member.ID,
		"text":      "코드가 존나 빨라졌어요",
	}
	w := testutil.DoRequest(r, "POST", "/api/v1/feedbacks", body, token)
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["ok"] != true {
		t.Fatalf("ok = %v", data["ok"])
	}
	feedback := data["feedback"].(map[string]interface{})
	if feedback["text"] != "코드가 *** 빨라졌어요" {
		t.Errorf("text = %v", feedback["text"])
	}
}

func TestFeedbackHide(t *testing.T) {
	r, db := setupEnv(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "proj-001", "테스트 프로젝트")
	member := testutil.SeedMember(t, db, project.ID, "mem-001", "김철수", nil)
	log := seedLog(t, db, project.ID, "log-001", "로그인 페이지 UI 구현", member.ID)

	fb := &entity.Feedback{
		ID:         "fb-001",
		TargetType: entity.FeedbackTargetLog,
		TargetID:   log.ID,
		MemberID:   member.ID,
		Text:       "수고 많으셨어요",
	}
	if err := db.Create(fb).Error; err != nil {
		t.Fatalf("Failed to seed feedback: %v", err)
	}

	w := testutil.DoRequest(r, "POST", "/api/v1/feedbacks/"+fb.ID+"/hide", nil, token)
	if w.Code != 200 {
		t.Fatalf("hide status = %d", w.Code)
	}

	// 숨긴 피드백은 목록에서 제외
	w = testutil.DoRequest(r, "GET", "/api/v1/logs/"+log.ID+"/feedbacks", nil, token)
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["count"].(float64) != 0 {
		t.Errorf("count = %v, want 0", data["count"])
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/feedbacks/missing/hide", nil, token)
	if w.Code != 404 {
		t.Errorf("hide missing status = %d, want 404", w.Code)
	}
}
