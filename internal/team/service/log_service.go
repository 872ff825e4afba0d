package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/google/uuid"
)

// LogService 활동 로그 서비스
type LogService struct {
	repo *repository.LogRepository
}

// NewLogService 활동 로그 서비스 생성
func NewLogService(repo *repository.LogRepository) *LogService {
	return &LogService{repo: repo}
}

// CreateLogRequest 로그 작성 요청
type CreateLogRequest struct {
	Title         string               `json:"title" binding:"required"`
	Types         []string             `json:"types" binding:"required"`
	Date          string               `json:"date" binding:"required"`
	StartTime     string               `json:"start_time"`
	EndTime       string               `json:"end_time"`
	TaskScope     string               `json:"task_scope"`
	OutputType    string               `json:"output_type"`
	Participants  []entity.Participant `json:"participants" binding:"required"`
	WhatIDid      string               `json:"what_i_did" binding:"required"`
	Why           string               `json:"why"`
	How           string               `json:"how"`
	Status        string               `json:"status"`
	ResultSummary string               `json:"result_summary"`
	BeforeAfter   string               `json:"before_after"`
	EvidenceLink  string               `json:"evidence_link"`
	EvidenceFile  string               `json:"evidence_file"`
}

// UpdateLogRequest 로그 수정 요청
type UpdateLogRequest struct {
	Title         *string               `json:"title"`
	Types         *[]string             `json:"types"`
	Date          *string               `json:"date"`
	StartTime     *string               `json:"start_time"`
	EndTime       *string               `json:"end_time"`
	TaskScope     *string               `json:"task_scope"`
	OutputType    *string               `json:"output_type"`
	Participants  *[]entity.Participant `json:"participants"`
	WhatIDid      *string               `json:"what_i_did"`
	Why           *string               `json:"why"`
	How           *string               `json:"how"`
	Status        *string               `json:"status"`
	ResultSummary *string               `json:"result_summary"`
	BeforeAfter   *string               `json:"before_after"`
	EvidenceLink  *string               `json:"evidence_link"`
	EvidenceFile  *string               `json:"evidence_file"`
}

// List 프로젝트 로그 목록
func (s *LogService) List(ctx context.Context, projectID string) ([]entity.ActivityLog, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// ListByMember 팀원이 참여한 로그 목록
func (s *LogService) ListByMember(ctx context.Context, projectID, memberID string) ([]entity.ActivityLog, error) {
	return s.repo.ListByMember(ctx, projectID, memberID)
}

// Get 로그 조회
func (s *LogService) Get(ctx context.Context, id string) (*entity.ActivityLog, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 로그 작성. duration은 시각에서 자동 계산한다.
func (s *LogService) Create(ctx context.Context, projectID string, req *CreateLogRequest) (*entity.ActivityLog, error) {
	status := req.Status
	if status == "" {
		status = entity.LogStatusDone
	}

	log := &entity.ActivityLog{
		ID:            uuid.New().String()[:32],
		ProjectID:     projectID,
		Title:         req.Title,
		Types:         req.Types,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Duration:      deriveDuration(req.StartTime, req.EndTime),
		TaskScope:     req.TaskScope,
		OutputType:    req.OutputType,
		Participants:  req.Participants,
		WhatIDid:      req.WhatIDid,
		Why:           req.Why,
		How:           req.How,
		Status:        status,
		ResultSummary: req.ResultSummary,
		BeforeAfter:   req.BeforeAfter,
		EvidenceLink:  req.EvidenceLink,
		EvidenceFile:  req.EvidenceFile,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Update 로그 수정. 시각이 바뀌면 duration을 다시 계산한다.
func (s *LogService) Update(ctx context.Context, id string, req *UpdateLogRequest) (*entity.ActivityLog, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		log.Title = *req.Title
	}
	if req.Types != nil {
		log.Types = *req.Types
	}
	if req.Date != nil {
		log.Date = *req.Date
	}
	timeChanged := false
	if req.StartTime != nil {
		log.StartTime = *req.StartTime
		timeChanged = true
	}
	if req.EndTime != nil {
		log.EndTime = *req.EndTime
		timeChanged = true
	}
	if timeChanged {
		log.Duration = deriveDuration(log.StartTime, log.EndTime)
	}
	if req.TaskScope != nil {
		log.TaskScope = *req.TaskScope
	}
	if req.OutputType != nil {
		log.OutputType = *req.OutputType
	}
	if req.Participants != nil {
		log.Participants = *req.Participants
	}
	if req.WhatIDid != nil {
		log.WhatIDid = *req.WhatIDid
	}
	if req.Why != nil {
		log.Why = *req.Why
	}
	if req.How != nil {
		log.How = *req.How
	}
	if req.Status != nil {
		log.Status = *req.Status
	}
	if req.ResultSummary != nil {
		log.ResultSummary = *req.ResultSummary
	}
	if req.BeforeAfter != nil {
		log.BeforeAfter = *req.BeforeAfter
	}
	if req.EvidenceLink != nil {
		log.EvidenceLink = *req.EvidenceLink
	}
	if req.EvidenceFile != nil {
		log.EvidenceFile = *req.EvidenceFile
	}

	if err := s.repo.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Delete 로그 삭제
func (s *LogService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// deriveDuration HH:MM 시각 차이를 분으로 계산.
// 종료가 시작보다 이르면 음수가 그대로 남는다.
func deriveDuration(startTime, endTime string) int {
	start, okStart := parseClock(startTime)
	end, okEnd := parseClock(endTime)
	if !okStart || !okEnd {
		return 0
	}
	return end - start
}

func parseClock(value string) (int, bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}
