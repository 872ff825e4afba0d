package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ErrUploadDisabled MinIO 미설정 시 증빙 업로드 비활성
var ErrUploadDisabled = errors.New("evidence upload is not configured")

// UploadService 증빙 파일 업로드 서비스
type UploadService struct {
	minioClient *minio.Client
	bucketName  string
}

// NewUploadService 업로드 서비스 생성
func NewUploadService(minioClient *minio.Client, bucketName string) *UploadService {
	return &UploadService{minioClient: minioClient, bucketName: bucketName}
}

// UploadedFile 업로드된 증빙 파일 정보
type UploadedFile struct {
	ObjectName  string `json:"object_name"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// UploadEvidence 증빙 파일을 MinIO에 저장하고 조회 URL을 반환
func (s *UploadService) UploadEvidence(ctx context.Context, reader io.Reader, fileName string, fileSize int64, contentType string) (*UploadedFile, error) {
	if s.minioClient == nil {
		return nil, ErrUploadDisabled
	}

	objectName := fmt.Sprintf("evidence/%s/%s%s",
		time.Now().Format("2006/01/02"), uuid.New().String()[:8], filepath.Ext(fileName))

	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	url, err := s.minioClient.PresignedGetObject(ctx, s.bucketName, objectName, 7*24*time.Hour, nil)
	if err != nil {
		return nil, fmt.Errorf("presign url: %w", err)
	}

	return &UploadedFile{
		ObjectName:  objectName,
		URL:         url.String(),
		Filename:    fileName,
		Size:        fileSize,
		ContentType: contentType,
	}, nil
}
