package repository

import (
	"context"
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"gorm.io/gorm"
)

// ProjectRepository 프로젝트 저장소
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 프로젝트 저장소 생성
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID ID로 프로젝트 조회
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// FindFirst 가장 먼저 생성된 프로젝트 조회
func (r *ProjectRepository) FindFirst(ctx context.Context) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create 프로젝트 생성
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update 프로젝트 수정
func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}
