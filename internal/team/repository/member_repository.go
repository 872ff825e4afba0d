package repository

import (
	"context"
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"gorm.io/gorm"
)

// MemberRepository 팀원 저장소
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 팀원 저장소 생성
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// FindByID ID로 팀원 조회
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	var member entity.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// ListByProject 프로젝트 팀원 목록, 생성순
func (r *MemberRepository) ListByProject(ctx context.Context, projectID string) ([]entity.Member, error) {
	var members []entity.Member
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

// Create 팀원 생성
func (r *MemberRepository) Create(ctx context.Context, member *entity.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Update 팀원 수정
func (r *MemberRepository) Update(ctx context.Context, member *entity.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete 팀원 삭제
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Member{}).Error
}
