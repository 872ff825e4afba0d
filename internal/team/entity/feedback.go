package entity

import "time"

// 피드백 대상 타입
const (
	FeedbackTargetLog = "LOG"
)

// Feedback 익명 한 줄 평가.
// memberId는 평가 대상 팀원이며 작성자는 기록하지 않는다.
type Feedback struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	TargetType string    `json:"target_type" gorm:"size:20;not null;default:LOG;index:idx_feedback_target"`
	TargetID   string    `json:"target_id" gorm:"size:32;not null;index:idx_feedback_target"`
	MemberID   string    `json:"member_id" gorm:"size:32;not null"`
	Text       string    `json:"text" gorm:"size:200;not null"`
	IsHidden   bool      `json:"is_hidden" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
