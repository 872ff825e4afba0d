package handler

import (
	"testing"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/testutil"
)

func TestDashboardWithoutData(t *testing.T) {
	r, _ := setupEnv(t)
	token := testutil.DefaultTestToken()

	// 프로젝트가 없으면 빈 프로젝트가 자동 생성된다
	w := testutil.DoRequest(r, "GET", "/api/v1/dashboard", nil, token)
	if w.Code != 200 {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	totals := data["totals"].(map[string]interface{})
	if totals["totalLogs"].(float64) != 0 {
		t.Errorf("totalLogs = %v, want 0", totals["totalLogs"])
	}
}

func TestSummaryGenerateApproveFlow(t *testing.T) {
	r, db := setupEnv(t)
	token := testutil.DefaultTestToken()

	project := testutil.SeedProject(t, db, "proj-001", "테스트 프로젝트")
	member := testutil.SeedMember(t, db, project.ID, "mem-001", "김철수", nil)
	seedLog(t, db, project.ID, "log-001", "로그인 페이지 UI 구현", member.ID)

	// 첫 생성은 버전 1, DRAFT
	w := testutil.DoRequest(r, "POST", "/api/v1/summaries", nil, token)
	if w.Code != 201 {
		t.Fatalf("generate status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	report := resp["data"].(map[string]interface{})
	if report["version"].(float64) != 1 {
		t.Errorf("version = %v, want 1", report["version"])
	}
	if report["status"] != entity.SummaryStatusDraft {
		t.Errorf("status = %v", report["status"])
	}
	reportID := report["id"].(string)

	// 재생성하면 버전이 올라간다
	w = testutil.DoRequest(r, "POST", "/api/v1/summaries", nil, token)
	resp = testutil.ParseResponse(w)
	second := resp["data"].(map[string]interface{})
	if second["version"].(float64) != 2 {
		t.Errorf("version = %v, want 2", second["version"])
	}

	// 최신 보고서는 버전 2
	w = testutil.DoRequest(r, "GET", "/api/v1/summaries/latest", nil, token)
	resp = testutil.ParseResponse(w)
	latest := resp["data"].(map[string]interface{})
	if latest["version"].(float64) != 2 {
		t.Errorf("latest version = %v, want 2", latest["version"])
	}

	// 승인
	w = testutil.DoRequest(r, "POST", "/api/v1/summaries/"+reportID+"/approve", nil, token)
	if w.Code != 200 {
		t.Fatalf("approve status = %d, body = %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	approved := resp["data"].(map[string]interface{})
	if approved["status"] != entity.SummaryStatusApproved {
		t.Errorf("status = %v", approved["status"])
	}
	if approved["approved_at"] == nil {
		t.Error("approved_at not set")
	}

	// 승인은 1회만 가능하다
	w = testutil.DoRequest(r, "POST", "/api/v1/summaries/"+reportID+"/approve", nil, token)
	if w.Code != 400 {
		t.Errorf("re-approve status = %d, want 400", w.Code)
	}
}
