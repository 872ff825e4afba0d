package service

import (
	"context"
	"errors"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/google/uuid"
)

// ProjectService 프로젝트 서비스
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService 프로젝트 서비스 생성
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// UpdateProjectRequest 프로젝트 수정 요청
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Get 현재 프로젝트 조회, 없으면 빈 프로젝트 생성
func (s *ProjectService) Get(ctx context.Context) (*entity.Project, error) {
	project, err := s.repo.FindFirst(ctx)
	if err == nil {
		return project, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	project = &entity.Project{
		ID:   uuid.New().String()[:32],
		Name: "",
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update 프로젝트 수정
func (s *ProjectService) Update(ctx context.Context, req *UpdateProjectRequest) (*entity.Project, error) {
	project, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}
