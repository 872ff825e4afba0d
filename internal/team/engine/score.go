package engine

// Profile 팀원 프로필 스냅샷
type Profile struct {
	MajorType      string    `json:"majorType"` // ENGINEERING/DESIGN/ART/HUMANITIES
	Skills         []RoleKey `json:"skills"`
	PreferredRoles []RoleKey `json:"preferredRoles"` // 우선순위순, 최대 3개
	AvoidRole      RoleKey   `json:"avoidRole"`      // 빈 값이면 없음
}

// Member 팀원 스냅샷
type Member struct {
	ID          string   `json:"id"`
	Alias       string   `json:"alias"`
	Profile     *Profile `json:"profile"`
	DecidedRole RoleKey  `json:"decidedRole"` // 팀이 확정한 역할, 추천 엔진은 쓰지 않음
}

// 계열별 역할 가중치 테이블
var majorScores = map[string]map[RoleKey]int{
	"ENGINEERING": {RoleDev: 2, RoleData: 2},
	"DESIGN":      {RoleDesign: 3},
	"ART":         {RoleDesign: 3, RolePresent: 3},
	"HUMANITIES":  {RoleDesign: 3, RolePresent: 3, RoleDocs: 2},
}

// majorNames 계열 표시 이름
var majorNames = map[string]string{
	"ENGINEERING": "공학 계열",
	"DESIGN":      "디자인 계열",
	"ART":         "예술 계열",
	"HUMANITIES":  "인문 계열",
}

// ScoreAllRoles 팀원의 역할별 점수 계산, 프로필이 없으면 전부 0
func ScoreAllRoles(member Member) map[RoleKey]int {
	scores := make(map[RoleKey]int, len(AllRoles))
	profile := member.Profile

	if profile == nil {
		for _, role := range AllRoles {
			scores[role] = 0
		}
		return scores
	}

	for _, role := range AllRoles {
		score := majorTypeScore(profile.MajorType, role)
		score += skillScore(profile.Skills, role)
		score += preferredRoleScore(profile.PreferredRoles, role)

		// 비선호 역할은 사실상 추천 제외
		if profile.AvoidRole == role {
			score = -100
		}

		scores[role] = score
	}

	return scores
}

// majorTypeScore 학과 계열에 따른 점수
func majorTypeScore(majorType string, role RoleKey) int {
	return majorScores[majorType][role]
}

// skillScore 보유 역량 일치 시 +2, PL은 역량 매핑 없음
func skillScore(skills []RoleKey, role RoleKey) int {
	if role == RolePL {
		return 0
	}
	for _, skill := range skills {
		if skill == role {
			return 2
		}
	}
	return 0
}

// preferredRoleScore 선호 1순위 +3, 2순위 +2, 3순위 +1
func preferredRoleScore(preferred []RoleKey, role RoleKey) int {
	for i, p := range preferred {
		if p == role {
			if i < 3 {
				return 3 - i
			}
			return 0
		}
	}
	return 0
}
