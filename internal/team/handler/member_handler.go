package handler

import (
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/gin-gonic/gin"
)

// MemberHandler 팀원 핸들러
type MemberHandler struct {
	svc          *service.MemberService
	recommendSvc *service.RecommendService
	projectSvc   *service.ProjectService
}

// NewMemberHandler 팀원 핸들러 생성
func NewMemberHandler(svc *service.MemberService, recommendSvc *service.RecommendService, projectSvc *service.ProjectService) *MemberHandler {
	return &MemberHandler{svc: svc, recommendSvc: recommendSvc, projectSvc: projectSvc}
}

// List 팀원 목록
// GET /api/v1/members
func (h *MemberHandler) List(c *gin.Context) {
	project, err := h.projectSvc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}

	members, err := h.svc.List(c.Request.Context(), project.ID)
	if err != nil {
		InternalError(c, "팀원 목록 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, gin.H{"items": members})
}

// Get 팀원 조회
// GET /api/v1/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "팀원을 찾을 수 없습니다")
			return
		}
		InternalError(c, "팀원 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, member)
}

// Create 팀원 등록
// POST /api/v1/members
func (h *MemberHandler) Create(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청입니다: "+err.Error())
		return
	}

	project, err := h.projectSvc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}

	member, err := h.svc.Create(c.Request.Context(), project.ID, &req)
	if err != nil {
		InternalError(c, "팀원 등록에 실패했습니다: "+err.Error())
		return
	}
	Created(c, member)
}

// Update 팀원 수정
// PUT /api/v1/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청입니다: "+err.Error())
		return
	}

	member, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "팀원을 찾을 수 없습니다")
			return
		}
		InternalError(c, "팀원 수정에 실패했습니다: "+err.Error())
		return
	}
	Success(c, member)
}

// Delete 팀원 삭제
// DELETE /api/v1/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "팀원을 찾을 수 없습니다")
			return
		}
		InternalError(c, "팀원 삭제에 실패했습니다: "+err.Error())
		return
	}
	Success(c, nil)
}

// SetDecidedRole 팀 합의 역할 확정
// PUT /api/v1/members/:id/decided-role
func (h *MemberHandler) SetDecidedRole(c *gin.Context) {
	var req service.SetDecidedRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청입니다: "+err.Error())
		return
	}

	member, err := h.svc.SetDecidedRole(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "팀원을 찾을 수 없습니다")
			return
		}
		BadRequest(c, "역할 확정에 실패했습니다: "+err.Error())
		return
	}
	Success(c, member)
}

// RoleScores 팀원의 역할별 점수
// GET /api/v1/members/:id/role-scores
func (h *MemberHandler) RoleScores(c *gin.Context) {
	scores, err := h.svc.RoleScores(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "팀원을 찾을 수 없습니다")
			return
		}
		InternalError(c, "점수 계산에 실패했습니다: "+err.Error())
		return
	}
	Success(c, gin.H{"scores": scores})
}

// Recommend 팀 전체 역할 추천
// GET /api/v1/recommendations
func (h *MemberHandler) Recommend(c *gin.Context) {
	project, err := h.projectSvc.Get(c.Request.Context())
	if err != nil {
		InternalError(c, "프로젝트 조회에 실패했습니다: "+err.Error())
		return
	}

	result, err := h.recommendSvc.Recommend(c.Request.Context(), project.ID)
	if err != nil {
		InternalError(c, "역할 추천에 실패했습니다: "+err.Error())
		return
	}
	Success(c, result)
}
