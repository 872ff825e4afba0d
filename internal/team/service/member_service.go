package service

import (
	"context"
	"fmt"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/engine"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/google/uuid"
)

// MemberService 팀원 서비스
type MemberService struct {
	repo *repository.MemberRepository
}

// NewMemberService 팀원 서비스 생성
func NewMemberService(repo *repository.MemberRepository) *MemberService {
	return &MemberService{repo: repo}
}

// CreateMemberRequest 팀원 등록 요청
type CreateMemberRequest struct {
	Alias   string          `json:"alias" binding:"required"`
	Role    string          `json:"role"`
	Profile *entity.Profile `json:"profile"`
}

// UpdateMemberRequest 팀원 수정 요청
type UpdateMemberRequest struct {
	Alias   *string         `json:"alias"`
	Role    *string         `json:"role"`
	Profile *entity.Profile `json:"profile"`
}

// SetDecidedRoleRequest 합의 역할 확정 요청
type SetDecidedRoleRequest struct {
	DecidedRole string `json:"decided_role"`
}

// List 프로젝트 팀원 목록
func (s *MemberService) List(ctx context.Context, projectID string) ([]entity.Member, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// Get 팀원 조회
func (s *MemberService) Get(ctx context.Context, id string) (*entity.Member, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 팀원 등록. 프로필은 항상 정규화해서 저장한다.
func (s *MemberService) Create(ctx context.Context, projectID string, req *CreateMemberRequest) (*entity.Member, error) {
	profile := req.Profile
	if profile == nil {
		profile = &entity.Profile{MajorType: "ENGINEERING"}
	}
	normalizeProfile(profile)

	member := &entity.Member{
		ID:        uuid.New().String()[:32],
		ProjectID: projectID,
		Alias:     req.Alias,
		Role:      req.Role,
		Profile:   profile,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Update 팀원 수정
func (s *MemberService) Update(ctx context.Context, id string, req *UpdateMemberRequest) (*entity.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Alias != nil {
		member.Alias = *req.Alias
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Profile != nil {
		normalizeProfile(req.Profile)
		member.Profile = req.Profile
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete 팀원 삭제
func (s *MemberService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SetDecidedRole 팀 합의 역할 확정. 추천 엔진과 무관한 별도 쓰기다.
func (s *MemberService) SetDecidedRole(ctx context.Context, id string, req *SetDecidedRoleRequest) (*entity.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DecidedRole != "" && !engine.IsValidRole(engine.RoleKey(req.DecidedRole)) {
		return nil, fmt.Errorf("invalid role key: %s", req.DecidedRole)
	}

	member.DecidedRole = req.DecidedRole
	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RoleScores 팀원의 역할별 점수 계산
func (s *MemberService) RoleScores(ctx context.Context, id string) (map[engine.RoleKey]int, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return engine.ScoreAllRoles(toEngineMember(member)), nil
}

// normalizeProfile 저장 경계에서 프로필 정규화.
// 역할 키가 아닌 값은 버리고, 선호 역할은 중복 제거 후 최대 3개,
// 비선호 역할은 선호 목록에서 제외한다.
func normalizeProfile(p *entity.Profile) {
	if !engine.IsValidRole(engine.RoleKey(p.AvoidRole)) {
		p.AvoidRole = ""
	}

	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if engine.IsValidRole(engine.RoleKey(s)) {
			skills = append(skills, s)
		}
	}
	p.Skills = skills

	seen := make(map[string]bool)
	preferred := make([]string, 0, 3)
	for _, r := range p.PreferredRoles {
		if len(preferred) == 3 {
			break
		}
		if !engine.IsValidRole(engine.RoleKey(r)) || seen[r] || r == p.AvoidRole {
			continue
		}
		seen[r] = true
		preferred = append(preferred, r)
	}
	p.PreferredRoles = preferred
}
