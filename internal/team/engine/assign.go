package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Recommendation 팀원 한 명에 대한 역할 추천
type Recommendation struct {
	MemberID      string  `json:"memberId"`
	Alias         string  `json:"alias"`
	SuggestedRole RoleKey `json:"suggestedRole"`
	Score         int     `json:"score"`
	Reason        string  `json:"reason"`
}

// RecommendResult 팀 전체 추천 결과
type RecommendResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message"`
}

type scoredMember struct {
	member Member
	scores map[RoleKey]int
}

type roleScore struct {
	role  RoleKey
	score int
}

// RecommendRoles 2단계 탐욕 배정으로 팀 전체 역할 추천.
// 추천만 제공하며 decidedRole은 변경하지 않는다.
func RecommendRoles(members []Member) *RecommendResult {
	if len(members) == 0 {
		return &RecommendResult{
			Recommendations: []Recommendation{},
			Message:         "팀원이 없습니다.",
		}
	}

	scored := make([]scoredMember, len(members))
	for i, m := range members {
		scored[i] = scoredMember{member: m, scores: ScoreAllRoles(m)}
	}

	recommendations := assignRoles(scored)

	message := "프로필 정보가 부족하여 추천할 수 없습니다."
	if len(recommendations) > 0 {
		message = "추천 결과입니다. 참고용이며 최종 역할은 팀이 결정합니다."
	}

	return &RecommendResult{
		Recommendations: recommendations,
		Message:         message,
	}
}

func assignRoles(scored []scoredMember) []Recommendation {
	recommendations := []Recommendation{}
	assignedRoles := make(map[RoleKey]bool)
	assignedMembers := make(map[string]bool)

	// 1차: 양수 점수 역할 중 아직 배정되지 않은 최고 점수 역할 배정
	for _, sm := range scored {
		for _, rs := range sortedRoles(sm.scores, 0) {
			if assignedRoles[rs.role] {
				continue
			}
			recommendations = append(recommendations, Recommendation{
				MemberID:      sm.member.ID,
				Alias:         sm.member.Alias,
				SuggestedRole: rs.role,
				Score:         rs.score,
				Reason:        buildReason(sm.member, rs.role, rs.score),
			})
			assignedRoles[rs.role] = true
			assignedMembers[sm.member.ID] = true
			break
		}
	}

	// 2차: 미배정 팀원에게 비선호 제외 최고 점수 역할 배정, 역할 중복 허용
	for _, sm := range scored {
		if assignedMembers[sm.member.ID] {
			continue
		}
		candidates := sortedRoles(sm.scores, -100)
		if len(candidates) == 0 {
			continue
		}
		best := candidates[0]
		recommendations = append(recommendations, Recommendation{
			MemberID:      sm.member.ID,
			Alias:         sm.member.Alias,
			SuggestedRole: best.role,
			Score:         best.score,
			Reason:        buildReason(sm.member, best.role, best.score),
		})
		assignedMembers[sm.member.ID] = true
	}

	return recommendations
}

// sortedRoles 기준 점수 초과 역할을 점수 내림차순으로 반환.
// 동점이면 AllRoles 순서를 유지한다.
func sortedRoles(scores map[RoleKey]int, above int) []roleScore {
	result := make([]roleScore, 0, len(AllRoles))
	for _, role := range AllRoles {
		if score := scores[role]; score > above {
			result = append(result, roleScore{role: role, score: score})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].score > result[j].score
	})
	return result
}

// buildReason 추천 이유 문자열 생성
func buildReason(member Member, role RoleKey, score int) string {
	profile := member.Profile
	if profile == nil {
		return "프로필 정보 없음"
	}

	var reasons []string

	if majorTypeScore(profile.MajorType, role) > 0 {
		reasons = append(reasons, majorNames[profile.MajorType])
	}
	if skillScore(profile.Skills, role) > 0 {
		reasons = append(reasons, "보유 역량 일치")
	}
	for i, p := range profile.PreferredRoles {
		if p == role {
			reasons = append(reasons, fmt.Sprintf("선호 %d순위", i+1))
			break
		}
	}
	reasons = append(reasons, fmt.Sprintf("점수: %d", score))

	return strings.Join(reasons, " + ")
}
