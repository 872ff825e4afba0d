package engine

// RoleKey 팀 역할 키
type RoleKey string

// 역할 정의 (6종 고정)
const (
	RolePL      RoleKey = "PL"
	RoleDev     RoleKey = "DEV"
	RoleDesign  RoleKey = "DESIGN"
	RolePresent RoleKey = "PRESENT"
	RoleDocs    RoleKey = "DOCS"
	RoleData    RoleKey = "DATA"
)

// AllRoles 정렬 기준이 되는 역할 순서
var AllRoles = []RoleKey{RolePL, RoleDev, RoleDesign, RolePresent, RoleDocs, RoleData}

// roleNames 역할 표시 이름
var roleNames = map[RoleKey]string{
	RolePL:      "기획/총괄",
	RoleDev:     "개발",
	RoleDesign:  "디자인",
	RolePresent: "발표",
	RoleDocs:    "문서",
	RoleData:    "데이터/분석",
}

// RoleName 역할 표시 이름 반환, 미정의 키는 그대로 반환
func RoleName(key RoleKey) string {
	if name, ok := roleNames[key]; ok {
		return name
	}
	return string(key)
}

// IsValidRole 역할 키 유효성 검사
func IsValidRole(key RoleKey) bool {
	_, ok := roleNames[key]
	return ok
}
