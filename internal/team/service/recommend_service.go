package service

import (
	"context"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/engine"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
)

// RecommendService 역할 추천 서비스
type RecommendService struct {
	memberRepo *repository.MemberRepository
}

// NewRecommendService 역할 추천 서비스 생성
func NewRecommendService(memberRepo *repository.MemberRepository) *RecommendService {
	return &RecommendService{memberRepo: memberRepo}
}

// Recommend 현재 팀원 스냅샷으로 역할 추천 생성.
// decidedRole은 절대 변경하지 않는다.
func (s *RecommendService) Recommend(ctx context.Context, projectID string) (*engine.RecommendResult, error) {
	members, err := s.memberRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return engine.RecommendRoles(toEngineMembers(members)), nil
}
