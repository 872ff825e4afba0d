package handler

import (
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/gin-gonic/gin"
)

// UploadHandler 증빙 파일 업로드 핸들러
type UploadHandler struct {
	svc *service.UploadService
}

// NewUploadHandler 업로드 핸들러 생성
func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// UploadEvidence 증빙 파일 업로드
// POST /api/v1/uploads/evidence
func (h *UploadHandler) UploadEvidence(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "업로드할 파일이 없습니다")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "파일을 읽을 수 없습니다: "+err.Error())
		return
	}
	defer src.Close()

	uploaded, err := h.svc.UploadEvidence(c.Request.Context(), src,
		fileHeader.Filename, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, service.ErrUploadDisabled) {
			Error(c, 50300, "증빙 업로드가 설정되지 않았습니다")
			return
		}
		InternalError(c, "파일 업로드에 실패했습니다: "+err.Error())
		return
	}

	Created(c, uploaded)
}
