package handler

import (
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/gin-gonic/gin"
)

// Handlers 핸들러 집합
type Handlers struct {
	Auth     *AuthHandler
	Project  *ProjectHandler
	Member   *MemberHandler
	Log      *LogHandler
	Summary  *SummaryHandler
	Feedback *FeedbackHandler
	Upload   *UploadHandler
	SSE      *SSEHandler
}

// NewHandlers 핸들러 집합 생성
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(svc.Auth),
		Project:  NewProjectHandler(svc.Project),
		Member:   NewMemberHandler(svc.Member, svc.Recommend, svc.Project),
		Log:      NewLogHandler(svc.Log, svc.Project),
		Summary:  NewSummaryHandler(svc.Summary, svc.Project),
		Feedback: NewFeedbackHandler(svc.Feedback),
		Upload:   NewUploadHandler(svc.Upload),
		SSE:      NewSSEHandler(),
	}
}

// Response 공통 응답 구조
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 성공 응답
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 생성 성공 응답
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 에러 응답
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 요청 오류 응답
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// Unauthorized 미인증 응답
func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

// NotFound 리소스 없음 응답
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError 서버 오류 응답
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetUserID 컨텍스트에서 사용자 ID 조회
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}
