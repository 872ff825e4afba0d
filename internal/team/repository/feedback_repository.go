package repository

import (
	"context"
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"gorm.io/gorm"
)

// FeedbackRepository 피드백 저장소
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 피드백 저장소 생성
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// FindByID ID로 피드백 조회
func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

// ListByTarget 로그별 피드백 목록, 숨김 제외 최신순
func (r *FeedbackRepository) ListByTarget(ctx context.Context, targetType, targetID string) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ? AND is_hidden = false", targetType, targetID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

// ListAll 전체 피드백 목록, 숨김 제외 최신순
func (r *FeedbackRepository) ListAll(ctx context.Context, targetType string) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND is_hidden = false", targetType).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

// CountByTarget 로그별 피드백 개수, 숨김 제외
func (r *FeedbackRepository) CountByTarget(ctx context.Context, targetType, targetID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Feedback{}).
		Where("target_type = ? AND target_id = ? AND is_hidden = false", targetType, targetID).
		Count(&count).Error
	return count, err
}

// Create 피드백 생성
func (r *FeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// Hide 피드백 숨김 처리
func (r *FeedbackRepository) Hide(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Feedback{}).
		Where("id = ?", id).
		Update("is_hidden", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
