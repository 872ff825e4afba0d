package handler

import (
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/sse"
	"github.com/gin-gonic/gin"
)

// SummaryHandler 요약 보고서 핸들러
type SummaryHandler struct {
	svc        *service.SummaryService
	projectSvc *service.ProjectService
}

// NewSummaryHandler 요약 보고서 핸들러 생성
func NewSummaryHandler(svc *service.SummaryService, projectSvc *service.ProjectService) *SummaryHandler {
	return &SummaryHandler{svc: svc, projectSvc: projectSvc}
}

// Dashboard 저장 없는 실시간 대시보드 요약
// GET /api/v1/dashboard
func (h *SummaryHandler) Dashboard(c *gin.Context) {
	project, err := h.projectSvc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}

	content, err := h.svc.Live(c.Request.Context(), project.ID)
	if err != nil {
		InternalError(c, "대시보드 집계에 실패했습니다: "+err.Error())
		return
	}
	Success(c, content)
}

// Generate 요약 생성 후 DRAFT 보고서로 저장
// POST /api/v1/summaries
func (h *SummaryHandler) Generate(c *gin.Context) {
	project, err := h.projectSvc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}

	report, err := h.svc.Generate(c.Request.Context(), project.ID)
	if err != nil {
		InternalError(c, "요약 생성에 실패했습니다: "+err.Error())
		return
	}

	sse.PublishSummaryUpdate(project.ID, report.ID, "created")
	Created(c, report)
}

// List 보고서 목록
// GET /api/v1/summaries
func (h *SummaryHandler) List(c *gin.Context) {
	project, err := h.projectSvc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}

	reports, err := h.svc.List(c.Request.Context(), project.ID)
	if err != nil {
		InternalError(c, "보고서 목록 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, gin.H{"items": reports})
}

// Latest 최신 보고서
// GET /api/v1/summaries/latest
func (h *SummaryHandler) Latest(c *gin.Context) {
	project, err := h.projectSvc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}

	report, err := h.svc.Latest(c.Request.Context(), project.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "생성된 보고서가 없습니다")
			return
		}
		InternalError(c, "보고서 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, report)
}

// Get 보고서 조회
// GET /api/v1/summaries/:id
func (h *SummaryHandler) Get(c *gin.Context) {
	report, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "보고서를 찾을 수 없습니다")
			return
		}
		InternalError(c, "보고서 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, report)
}

// Approve 보고서 승인
// POST /api/v1/summaries/:id/approve
func (h *SummaryHandler) Approve(c *gin.Context) {
	report, err := h.svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "보고서를 찾을 수 없습니다")
			return
		}
		BadRequest(c, "보고서 승인에 실패했습니다: "+err.Error())
		return
	}

	sse.PublishSummaryUpdate(report.ProjectID, report.ID, "approved")
	Success(c, report)
}

// Delete 보고서 삭제
// DELETE /api/v1/summaries/:id
func (h *SummaryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "보고서를 찾을 수 없습니다")
			return
		}
		InternalError(c, "보고서 삭제에 실패했습니다: "+err.Error())
		return
	}
	Success(c, nil)
}

// Export 보고서 엑셀 다운로드
// GET /api/v1/summaries/:id/export
func (h *SummaryHandler) Export(c *gin.Context) {
	f, filename, err := h.svc.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "보고서를 찾을 수 없습니다")
			return
		}
		InternalError(c, "보고서 내보내기에 실패했습니다: "+err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
