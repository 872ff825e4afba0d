package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/engine"
)

// 요약 상태. APPROVED는 종결 상태다.
const (
	SummaryStatusDraft    = "DRAFT"
	SummaryStatusApproved = "APPROVED"
)

// SummaryContent 엔진 요약 본문 JSONB 타입
type SummaryContent engine.SummaryContent

func (c SummaryContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *SummaryContent) Scan(value interface{}) error {
	if value == nil {
		*c = SummaryContent{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan SummaryContent: %v", value)
	}
	return json.Unmarshal(bytes, c)
}

// SummaryReport 버전 관리되는 대시보드 요약 스냅샷
type SummaryReport struct {
	ID        string `json:"id" gorm:"primaryKey;size:32"`
	ProjectID string `json:"project_id" gorm:"size:32;not null;index"`
	Version   int    `json:"version" gorm:"not null"`
	Status    string `json:"status" gorm:"size:20;not null;default:DRAFT"`

	Content SummaryContent `json:"content" gorm:"type:jsonb"`

	GeneratedAt time.Time  `json:"generated_at"`
	ApprovedAt  *time.Time `json:"approved_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (SummaryReport) TableName() string {
	return "summary_reports"
}
