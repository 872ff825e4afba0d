package repository

import (
	"errors"

	"gorm.io/gorm"
)

// 에러 정의
var (
	ErrNotFound = errors.New("record not found")
)

// Repositories 저장소 집합
type Repositories struct {
	Project  *ProjectRepository
	Member   *MemberRepository
	Log      *LogRepository
	Feedback *FeedbackRepository
	Summary  *SummaryRepository
	User     *UserRepository
}

// NewRepositories 저장소 집합 생성
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Project:  NewProjectRepository(db),
		Member:   NewMemberRepository(db),
		Log:      NewLogRepository(db),
		Feedback: NewFeedbackRepository(db),
		Summary:  NewSummaryRepository(db),
		User:     NewUserRepository(db),
	}
}
