package handler

import (
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler 인증 핸들러
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler 인증 핸들러 생성
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login 로그인
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청입니다: "+err.Error())
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			Unauthorized(c, "아이디 또는 비밀번호가 올바르지 않습니다")
			return
		}
		InternalError(c, "로그인에 실패했습니다: "+err.Error())
		return
	}

	Success(c, resp)
}

// Me 현재 사용자 조회
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "사용자를 찾을 수 없습니다")
			return
		}
		InternalError(c, "사용자 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, user)
}
