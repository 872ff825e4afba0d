package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

const feedbackCooldown = 10 * time.Minute

// 최소한의 금칙어 목록, 매칭 부분은 ***로 마스킹된다
var bannedWords = []*regexp.Regexp{
	regexp.MustCompile(`(?i)시발`),
	regexp.MustCompile(`(?i)씨발`),
	regexp.MustCompile(`(?i)병신`),
	regexp.MustCompile(`(?i)ㅂㅅ`),
	regexp.MustCompile(`(?i)존나`),
	regexp.MustCompile(`(?i)좆`),
	regexp.MustCompile(`(?i)fuck`),
	regexp.MustCompile(`(?i)asshole`),
}

// FeedbackService 익명 한 줄 평가 서비스
type FeedbackService struct {
	repo       *repository.FeedbackRepository
	logRepo    *repository.LogRepository
	memberRepo *repository.MemberRepository
	rdb        *redis.Client
	logger     *zap.Logger
}

// NewFeedbackService 피드백 서비스 생성
func NewFeedbackService(repo *repository.FeedbackRepository, logRepo *repository.LogRepository, memberRepo *repository.MemberRepository, rdb *redis.Client, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		repo:       repo,
		logRepo:    logRepo,
		memberRepo: memberRepo,
		rdb:        rdb,
		logger:     logger,
	}
}

// CreateFeedbackRequest 피드백 제출 요청
type CreateFeedbackRequest struct {
	LogID    string `json:"log_id"`
	MemberID string `json:"member_id"`
	Text     string `json:"text"`
}

// SubmitResult 제출 결과. 거절은 에러가 아니라 값으로 반환한다.
type SubmitResult struct {
	OK       bool             `json:"ok"`
	Message  string           `json:"message,omitempty"`
	Feedback *entity.Feedback `json:"feedback,omitempty"`
}

// Create 피드백 제출
func (s *FeedbackService) Create(ctx context.Context, req *CreateFeedbackRequest) (*SubmitResult, error) {
	if req.LogID == "" {
		return &SubmitResult{OK: false, Message: "평가할 활동을 선택해주세요."}, nil
	}
	if req.MemberID == "" {
		return &SubmitResult{OK: false, Message: "평가할 팀원을 선택해주세요."}, nil
	}

	if _, err := s.logRepo.FindByID(ctx, req.LogID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &SubmitResult{OK: false, Message: "평가할 활동을 선택해주세요."}, nil
		}
		return nil, err
	}
	if _, err := s.memberRepo.FindByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &SubmitResult{OK: false, Message: "평가할 팀원을 선택해주세요."}, nil
		}
		return nil, err
	}

	text, message := sanitizeText(req.Text)
	if message != "" {
		return &SubmitResult{OK: false, Message: message}, nil
	}

	if !s.canSubmit(ctx, req.LogID) {
		return &SubmitResult{OK: false, Message: "잠시 후 다시 제출해주세요. (연속 제출 제한)"}, nil
	}

	feedback := &entity.Feedback{
		ID:         uuid.New().String()[:32],
		TargetType: entity.FeedbackTargetLog,
		TargetID:   req.LogID,
		MemberID:   req.MemberID,
		Text:       text,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return &SubmitResult{OK: true, Feedback: feedback}, nil
}

// ListForLog 로그별 피드백 목록
func (s *FeedbackService) ListForLog(ctx context.Context, logID string) ([]entity.Feedback, error) {
	return s.repo.ListByTarget(ctx, entity.FeedbackTargetLog, logID)
}

// ListAll 전체 피드백 목록
func (s *FeedbackService) ListAll(ctx context.Context) ([]entity.Feedback, error) {
	return s.repo.ListAll(ctx, entity.FeedbackTargetLog)
}

// CountForLog 로그별 피드백 개수
func (s *FeedbackService) CountForLog(ctx context.Context, logID string) (int64, error) {
	return s.repo.CountByTarget(ctx, entity.FeedbackTargetLog, logID)
}

// Hide 피드백 숨김 처리
func (s *FeedbackService) Hide(ctx context.Context, id string) error {
	return s.repo.Hide(ctx, id)
}

// sanitizeText NFC 정규화 후 길이 검사와 금칙어 마스킹.
// 통과하면 정제된 텍스트를, 거절이면 사유 메시지를 반환한다.
func sanitizeText(input string) (string, string) {
	text := strings.TrimSpace(norm.NFC.String(input))

	length := utf8.RuneCountInString(text)
	if length < 5 {
		return "", "5자 이상 입력해주세요."
	}
	if length > 60 {
		return "", "60자 이내로 입력해주세요."
	}

	for _, re := range bannedWords {
		text = re.ReplaceAllString(text, "***")
	}
	return text, ""
}

// canSubmit 같은 로그에 10분 내 연속 제출 제한.
// Redis 장애 시에는 제출을 막지 않는다.
func (s *FeedbackService) canSubmit(ctx context.Context, targetID string) bool {
	key := "fb:cooldown:" + targetID
	ok, err := s.rdb.SetNX(ctx, key, time.Now().Unix(), feedbackCooldown).Result()
	if err != nil {
		s.logger.Warn("feedback cooldown check failed", zap.String("target_id", targetID), zap.Error(err))
		return true
	}
	return ok
}
