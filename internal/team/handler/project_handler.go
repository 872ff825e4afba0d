package handler

import (
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/gin-gonic/gin"
)

// ProjectHandler 프로젝트 핸들러
type ProjectHandler struct {
	svc *service.ProjectService
}

// NewProjectHandler 프로젝트 핸들러 생성
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// Get 현재 프로젝트 조회
// GET /api/v1/project
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, project)
}

// Update 프로젝트 수정
// PUT /api/v1/project
func (h *ProjectHandler) Update(c *gin.Context) {
	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청입니다: "+err.Error())
		return
	}

	project, err := h.svc.Update(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, "프로젝트 수정에 실패했습니다: "+err.Error())
		return
	}
	Success(c, project)
}
