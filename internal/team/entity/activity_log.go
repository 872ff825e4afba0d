package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// 활동 상태
const (
	LogStatusDone    = "완료"
	LogStatusPartial = "부분완료"
	LogStatusHold    = "보류"
)

// Participant 활동 참여자
type Participant struct {
	MemberID          string `json:"memberId"`
	Role              string `json:"role"` // 활동 내 역할, 자유 텍스트
	ContributionScore int    `json:"contributionScore"`
	Comment           string `json:"comment"`
	Approved          *bool  `json:"approved"`
}

// ParticipantList 참여자 목록 JSONB 타입
type ParticipantList []Participant

func (l ParticipantList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Participant{})
	}
	return json.Marshal(l)
}

func (l *ParticipantList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan ParticipantList: %v", value)
	}
	return json.Unmarshal(bytes, l)
}

// ActivityLog 활동 로그
type ActivityLog struct {
	ID        string `json:"id" gorm:"primaryKey;size:32"`
	ProjectID string `json:"project_id" gorm:"size:32;not null;index"`

	// 기본 정보
	Title     string      `json:"title" gorm:"size:200;not null"`
	Types     StringArray `json:"types" gorm:"type:jsonb"` // 최대 2개 활동 유형
	Date      string      `json:"date" gorm:"size:10;not null;index"`
	StartTime string      `json:"start_time" gorm:"size:5"`
	EndTime   string      `json:"end_time" gorm:"size:5"`
	Duration  int         `json:"duration"` // 분, 음수 가능

	// 관련 범위
	TaskScope  string `json:"task_scope" gorm:"size:200"`
	OutputType string `json:"output_type" gorm:"size:50"`

	// 참여자
	Participants ParticipantList `json:"participants" gorm:"type:jsonb"`

	// 활동 내용
	WhatIDid string `json:"what_i_did" gorm:"type:text"`
	Why      string `json:"why" gorm:"type:text"`
	How      string `json:"how" gorm:"type:text"`

	// 결과 / 증빙
	Status        string `json:"status" gorm:"size:20;default:완료"`
	ResultSummary string `json:"result_summary" gorm:"type:text"`
	BeforeAfter   string `json:"before_after" gorm:"type:text"`
	EvidenceLink  string `json:"evidence_link" gorm:"size:500"`
	EvidenceFile  string `json:"evidence_file" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
