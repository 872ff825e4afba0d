package handler

import (
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler 익명 피드백 핸들러
type FeedbackHandler struct {
	svc *service.FeedbackService
}

// NewFeedbackHandler 피드백 핸들러 생성
func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// Create 피드백 제출.
// 검증 실패는 200 응답의 결과 값으로 전달한다.
// POST /api/v1/feedbacks
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req service.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "잘못된 요청입니다: "+err.Error())
		return
	}

	result, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, "피드백 제출에 실패했습니다: "+err.Error())
		return
	}
	Success(c, result)
}

// ListForLog 로그별 피드백 목록
// GET /api/v1/logs/:id/feedbacks
func (h *FeedbackHandler) ListForLog(c *gin.Context) {
	logID := c.Param("id")

	feedbacks, err := h.svc.ListForLog(c.Request.Context(), logID)
	if err != nil {
		InternalError(c, "피드백 목록 조회에 실패했습니다: "+err.Error())
		return
	}

	count, err := h.svc.CountForLog(c.Request.Context(), logID)
	if err != nil {
		InternalError(c, "피드백 집계에 실패했습니다: "+err.Error())
		return
	}

	Success(c, gin.H{"items": feedbacks, "count": count})
}

// ListAll 전체 피드백 목록
// GET /api/v1/feedbacks
func (h *FeedbackHandler) ListAll(c *gin.Context) {
	feedbacks, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		InternalError(c, "피드백 목록 조회에 실패했습니다: "+err.Error())
		return
	}
	Success(c, gin.H{"items": feedbacks})
}

// Hide 피드백 숨김
// POST /api/v1/feedbacks/:id/hide
func (h *FeedbackHandler) Hide(c *gin.Context) {
	if err := h.svc.Hide(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "피드백을 찾을 수 없습니다")
			return
		}
		InternalError(c, "피드백 숨김에 실패했습니다: "+err.Error())
		return
	}
	Success(c, nil)
}
