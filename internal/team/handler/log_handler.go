package handler

import (
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/sse"
	"github.com/gin-gonic/gin"
)

// LogHandler 활동 로그 핸들러
type LogHandler struct {
	svc        *service.LogService
	projectSvc *service.ProjectService
}

// NewLogHandler 활동 로그 핸들러 생성
func NewLogHandler(svc *service.LogService, projectSvc *service.ProjectService) *LogHandler {
	return &LogHandler{svc: svc, projectSvc: projectSvc}
}

// List 로그 목록
// GET /api/v1/logs?member_id=xxx
func (h *LogHandler) List(c *gin.Context) {
	project, err := h.projectSvc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}

	memberID := c.Query("member_id")
	var logs interface{}
	if memberID != "" {
		logs, err = h.svc.ListByMember(c.Request.Context(), project.ID, memberID)
	} else {
		logs, err = h.svc.List(c.Request.Context(), project.ID)
	}
	if err != nil {
		InternalError(c, "로그 목록 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, gin.H{"items": logs})
}

// Get 로그 조회
// GET /api/v1/logs/:id
func (h *LogHandler) Get(c *gin.Context) {
	log, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "활동 로그를 찾을 수 없습니다")
			return
		}
		InternalError(c, "로그 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, log)
}

// Create 로그 작성
// POST /api/v1/logs
func (h *LogHandler) Create(c *gin.Context) {
	var req service.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청입니다: "+err.Error())
		return
	}
	if len(req.Participants) == 0 {
		BadRequest(c, "참여자를 한 명 이상 입력해주세요")
		return
	}

	project, err := h.projectSvc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}

	log, err := h.svc.Create(c.Request.Context(), project.ID, &req)
	if err != nil {
		InternalError(c, "로그 작성에 실패했습니다: "+err.Error())
		return
	}

	sse.PublishLogUpdate(project.ID, log.ID, "created")
	Created(c, log)
}

// Update 로그 수정
// PUT /api/v1/logs/:id
func (h *LogHandler) Update(c *gin.Context) {
	var req service.UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청입니다: "+err.Error())
		return
	}

	log, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "활동 로그를 찾을 수 없습니다")
			return
		}
		InternalError(c, "로그 수정에 실패했습니다: "+err.Error())
		return
	}

	sse.PublishLogUpdate(log.ProjectID, log.ID, "updated")
	Success(c, log)
}

// Delete 로그 삭제
// DELETE /api/v1/logs/:id
func (h *LogHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	log, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "활동 로그를 찾을 수 없습니다")
			return
		}
		InternalError(c, "로그 조회에 실패했습니다: "+err.Error())
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		InternalError(c, "로그 삭제에 실패했습니다: "+err.Error())
		return
	}

	sse.PublishLogUpdate(log.ProjectID, id, "deleted")
	Success(c, nil)
}
