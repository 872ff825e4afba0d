package repository

import (
	"context"
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"gorm.io/gorm"
)

// LogRepository 활동 로그 저장소
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository 활동 로그 저장소 생성
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// FindByID ID로 로그 조회
func (r *LogRepository) FindByID(ctx context.Context, id string) (*entity.ActivityLog, error) {
	var log entity.ActivityLog
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// ListByProject 프로젝트 로그 목록, 날짜 내림차순
func (r *LogRepository) ListByProject(ctx context.Context, projectID string) ([]entity.ActivityLog, error) {
	var logs []entity.ActivityLog
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date DESC, created_at DESC").
		Find(&logs).Error
	return logs, err
}

// ListByMember 팀원이 참여한 로그 목록
func (r *LogRepository) ListByMember(ctx context.Context, projectID, memberID string) ([]entity.ActivityLog, error) {
	var logs []entity.ActivityLog
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND participants @> ?", projectID, `[{"memberId":"`+memberID+`"}]`).
		Order("date DESC, created_at DESC").
		Find(&logs).Error
	return logs, err
}

// Create 로그 생성
func (r *LogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// Update 로그 수정
func (r *LogRepository) Update(ctx context.Context, log *entity.ActivityLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

// Delete 로그 삭제
func (r *LogRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.ActivityLog{}).Error
}
