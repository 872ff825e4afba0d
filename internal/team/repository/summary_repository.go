package repository

import (
	"context"
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"gorm.io/gorm"
)

// SummaryRepository 요약 보고서 저장소
type SummaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository 요약 보고서 저장소 생성
func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// FindByID ID로 보고서 조회
func (r *SummaryRepository) FindByID(ctx context.Context, id string) (*entity.SummaryReport, error) {
	var report entity.SummaryReport
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// FindLatest 프로젝트의 최신 버전 보고서 조회
func (r *SummaryRepository) FindLatest(ctx context.Context, projectID string) (*entity.SummaryReport, error) {
	var report entity.SummaryReport
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("version DESC").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// ListByProject 프로젝트 보고서 목록, 버전 내림차순
func (r *SummaryRepository) ListByProject(ctx context.Context, projectID string) ([]entity.SummaryReport, error) {
	var reports []entity.SummaryReport
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("version DESC").
		Find(&reports).Error
	return reports, err
}

// CountByProject 프로젝트 보고서 개수
func (r *SummaryRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.SummaryReport{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

// Create 보고서 생성
func (r *SummaryRepository) Create(ctx context.Context, report *entity.SummaryReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// Update 보고서 수정
func (r *SummaryRepository) Update(ctx context.Context, report *entity.SummaryReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

// Delete 보고서 삭제
func (r *SummaryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.SummaryReport{}).Error
}
