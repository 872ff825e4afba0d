package service

import (
	"github.com/ChaeRin-Yu1203/teamflow/internal/config"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Services 서비스 집합
type Services struct {
	Auth      *AuthService
	Project   *ProjectService
	Member    *MemberService
	Log       *LogService
	Recommend *RecommendService
	Summary   *SummaryService
	Feedback  *FeedbackService
	Upload    *UploadService
}

// NewServices 서비스 집합 생성
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	// MinIO 클라이언트 초기화, 실패하면 증빙 업로드만 비활성화
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("minio init failed, evidence upload disabled", zap.Error(err))
			minioClient = nil
		}
	}

	return &Services{
		Auth:      NewAuthService(repos.User, cfg),
		Project:   NewProjectService(repos.Project),
		Member:    NewMemberService(repos.Member),
		Log:       NewLogService(repos.Log),
		Recommend: NewRecommendService(repos.Member),
		Summary:   NewSummaryService(repos.Summary, repos.Project, repos.Member, repos.Log),
		Feedback:  NewFeedbackService(repos.Feedback, repos.Log, repos.Member, rdb, logger),
		Upload:    NewUploadService(minioClient, cfg.MinIO.Bucket),
	}
}
