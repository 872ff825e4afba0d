package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ChaeRin-Yu1203/teamflow/internal/team/engine"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// SummaryService 요약 보고서 서비스
type SummaryService struct {
	repo        *repository.SummaryRepository
	projectRepo *repository.ProjectRepository
	memberRepo  *repository.MemberRepository
	logRepo     *repository.LogRepository
}

// NewSummaryService 요약 보고서 서비스 생성
func NewSummaryService(repo *repository.SummaryRepository, projectRepo *repository.ProjectRepository, memberRepo *repository.MemberRepository, logRepo *repository.LogRepository) *SummaryService {
	return &SummaryService{
		repo:        repo,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		logRepo:     logRepo,
	}
}

// compute 현재 데이터 스냅샷으로 요약 본문 생성
func (s *SummaryService) compute(ctx context.Context, projectID string) (*engine.SummaryContent, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	members, err := s.memberRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	logs, err := s.logRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	snapshot := engine.Project{ID: project.ID, Name: project.Name, Description: project.Description}
	return engine.GenerateSummary(snapshot, toEngineMembers(members), toEngineLogs(logs)), nil
}

// Live 저장 없이 현재 대시보드 요약 계산
func (s *SummaryService) Live(ctx context.Context, projectID string) (*engine.SummaryContent, error) {
	return s.compute(ctx, projectID)
}

// Generate 요약을 계산해 DRAFT 보고서로 저장.
// 버전은 프로젝트별 보고서 개수 + 1이다.
func (s *SummaryService) Generate(ctx context.Context, projectID string) (*entity.SummaryReport, error) {
	content, err := s.compute(ctx, projectID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	report := &entity.SummaryReport{
		ID:          uuid.New().String()[:32],
		ProjectID:   projectID,
		Version:     int(count) + 1,
		Status:      entity.SummaryStatusDraft,
		Content:     entity.SummaryContent(*content),
		GeneratedAt: content.GeneratedAt,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// List 프로젝트 보고서 목록
func (s *SummaryService) List(ctx context.Context, projectID string) ([]entity.SummaryReport, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// Latest 최신 버전 보고서
func (s *SummaryService) Latest(ctx context.Context, projectID string) (*entity.SummaryReport, error) {
	return s.repo.FindLatest(ctx, projectID)
}

// Get 보고서 조회
func (s *SummaryService) Get(ctx context.Context, id string) (*entity.SummaryReport, error) {
	return s.repo.FindByID(ctx, id)
}

// Approve DRAFT 보고서 승인. APPROVED는 종결 상태다.
func (s *SummaryService) Approve(ctx context.Context, id string) (*entity.SummaryReport, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status == entity.SummaryStatusApproved {
		return nil, fmt.Errorf("report already approved")
	}

	now := time.Now()
	report.Status = entity.SummaryStatusApproved
	report.ApprovedAt = &now
	if err := s.repo.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Delete 보고서 삭제
func (s *SummaryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Export 보고서를 엑셀 파일로 내보내기
func (s *SummaryService) Export(ctx context.Context, id string) (*excelize.File, string, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	content := engine.SummaryContent(report.Content)

	f := excelize.NewFile()
	sheet := "기여도"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheet, "A1", fmt.Sprintf("집계 기간: %s ~ %s", content.Period.Start, content.Period.End))
	f.SetCellValue(sheet, "A2", fmt.Sprintf("총 활동 %d건 / 총 %d분 / 증빙 %d건 / 공동활동 %d건",
		content.Totals.TotalLogs, content.Totals.TotalMinutes,
		content.Totals.LogsWithEvidence, content.Totals.CollaborativeLogs))

	// 팀원별 기여도 표
	headers := []string{"팀원", "확정 역할", "점수 합계", "활동 시간(분)", "활동 수", "공동활동"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s4", col)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}
	row := 5
	if content.Contribution != nil {
		for _, mc := range content.Contribution.ByMember {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), mc.Alias)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), mc.DecidedRole)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), mc.ScoreSum)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), mc.MinutesSum)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), mc.LogCount)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), mc.CollaborativeCount)
			row++
		}
	}

	// 역할별 기여도 표
	row += 2
	roleHeaders := []string{"역할", "점수 합계", "참여 횟수"}
	for i, h := range roleHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, row)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}
	row++
	if content.Contribution != nil {
		for _, rc := range content.Contribution.ByRole {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), rc.Role)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rc.ScoreSum)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rc.ParticipantCount)
			row++
		}
	}

	// 날짜별 기여도 표
	row += 2
	dateHeaders := []string{"날짜", "점수 합계", "활동 시간(분)", "활동 수"}
	for i, h := range dateHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, row)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}
	row++
	if content.Contribution != nil {
		for _, dc := range content.Contribution.ByDate {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), dc.Date)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), dc.ScoreSum)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), dc.MinutesSum)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), dc.LogCount)
			row++
		}
	}

	f.SetColWidth(sheet, "A", "F", 16)

	filename := fmt.Sprintf("summary_v%d_%s.xlsx", report.Version, time.Now().Format("20060102"))
	return f, filename, nil
}
