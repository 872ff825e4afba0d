package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Profile 역할 추천용 프로필
type Profile struct {
	MajorType      string   `json:"majorType"` // ENGINEERING/DESIGN/ART/HUMANITIES
	Skills         []string `json:"skills"`
	PreferredRoles []string `json:"preferredRoles"` // 우선순위순, 최대 3개
	AvoidRole      string   `json:"avoidRole"`
}

func (p Profile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Profile) Scan(value interface{}) error {
	if value == nil {
		*p = Profile{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan Profile: %v", value)
	}
	return json.Unmarshal(bytes, p)
}

// Member 팀원
type Member struct {
	ID        string `json:"id" gorm:"primaryKey;size:32"`
	ProjectID string `json:"project_id" gorm:"size:32;not null;index"`
	Alias     string `json:"alias" gorm:"size:50;not null"`
	Role      string `json:"role" gorm:"size:50"` // 자유 기재 역할, 하위 호환

	Profile     *Profile `json:"profile" gorm:"type:jsonb"`
	DecidedRole string   `json:"decided_role" gorm:"size:20"` // 팀 합의 역할, 빈 값 가능

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}
