package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ChaeRin-Yu1203/teamflow/internal/config"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 개발/테스트용 샘플 데이터 로더.
// 팀원 4명과 최근 2주간의 활동 로그, 익명 피드백을 채운다.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.DBName, cfg.Database.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Project{},
		&entity.Member{},
		&entity.ActivityLog{},
		&entity.Feedback{},
		&entity.SummaryReport{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	ctx := context.Background()
	repos := repository.NewRepositories(db)

	if err := seed(ctx, repos); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}

func seed(ctx context.Context, repos *repository.Repositories) error {
	// 관리자 계정
	if _, err := repos.User.FindByUsername(ctx, "admin"); errors.Is(err, repository.ErrNotFound) {
		hash, err := service.HashPassword("admin1234")
		if err != nil {
			return err
		}
		if err := repos.User.Create(ctx, &entity.User{
			ID:           uuid.New().String()[:32],
			Username:     "admin",
			Name:         "관리자",
			PasswordHash: hash,
			Status:       "active",
		}); err != nil {
			return err
		}
		log.Println("created user: admin / admin1234")
	}

	// 프로젝트
	project, err := repos.Project.FindFirst(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		project = &entity.Project{
			ID:   uuid.New().String()[:32],
			Name: "웹 쇼핑몰 프로젝트",
		}
		if err := repos.Project.Create(ctx, project); err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		project.Name = "웹 쇼핑몰 프로젝트"
		if err := repos.Project.Update(ctx, project); err != nil {
			return err
		}
	}

	// 팀원 4명
	newMember := func(alias string, profile entity.Profile) *entity.Member {
		return &entity.Member{
			ID:        uuid.New().String()[:32],
			ProjectID: project.ID,
			Alias:     alias,
			Profile:   &profile,
		}
	}

	m1 := newMember("김철수", entity.Profile{
		MajorType:      "ENGINEERING",
		Skills:         []string{"DEV", "DATA"},
		PreferredRoles: []string{"DEV", "DATA", "PL"},
		AvoidRole:      "PRESENT",
	})
	m2 := newMember("이영희", entity.Profile{
		MajorType:      "ENGINEERING",
		Skills:         []string{"DEV"},
		PreferredRoles: []string{"DEV", "PL"},
		AvoidRole:      "DESIGN",
	})
	m3 := newMember("박민수", entity.Profile{
		MajorType:      "DESIGN",
		Skills:         []string{"DESIGN", "PRESENT"},
		PreferredRoles: []string{"DESIGN", "PRESENT"},
		AvoidRole:      "DEV",
	})
	m4 := newMember("정지원", entity.Profile{
		MajorType:      "HUMANITIES",
		Skills:         []string{"DOCS", "PRESENT"},
		PreferredRoles: []string{"PL", "DOCS", "PRESENT"},
	})

	for _, m := range []*entity.Member{m1, m2, m3, m4} {
		if err := repos.Member.Create(ctx, m); err != nil {
			return err
		}
	}

	approved := true
	daysAgo := func(n int) string {
		return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
	}

	logs := []*entity.ActivityLog{
		{
			Title:      "로그인 페이지 UI 구현",
			Types:      entity.StringArray{"구현(코딩)", "디자인"},
			Date:       daysAgo(14),
			StartTime:  "09:00",
			EndTime:    "12:00",
			Duration:   180,
			TaskScope:  "사용자 인증",
			OutputType: "코드",
			Participants: entity.ParticipantList{
				{MemberID: m1.ID, Role: "구현", ContributionScore: 5, Comment: "React 컴포넌트 개발", Approved: &approved},
			},
			WhatIDid:      "React를 사용하여 로그인 페이지 UI를 구현했습니다.\n폼 검증 로직과 에러 메시지 표시 기능을 추가했습니다.",
			Why:           "사용자 인증 기능의 프론트엔드 구현이 필요했습니다.",
			How:           "React, styled-components, Formik 라이브러리 사용",
			Status:        entity.LogStatusDone,
			ResultSummary: "로그인 페이지 완성, 폼 검증 및 에러 처리 구현",
			BeforeAfter:   "기존 HTML 폼 → React 컴포넌트로 전환",
			EvidenceLink:  "https://github.com/example/login-page",
		},
		{
			Title:      "상품 목록 페이지 개발",
			Types:      entity.StringArray{"구현(코딩)"},
			Date:       daysAgo(12),
			StartTime:  "14:00",
			EndTime:    "18:00",
			Duration:   240,
			TaskScope:  "상품 관리",
			OutputType: "코드",
			Participants: entity.ParticipantList{
				{MemberID: m1.ID, Role: "프론트엔드", ContributionScore: 4, Comment: "UI 구현", Approved: &approved},
				{MemberID: m2.ID, Role: "백엔드 연동", ContributionScore: 3, Comment: "API 연결", Approved: &approved},
			},
			WhatIDid:      "상품 목록을 그리드 형태로 표시하는 페이지를 개발했습니다.\n페이지네이션과 필터링 기능을 구현했습니다.",
			Why:           "사용자가 상품을 탐색할 수 있는 기능이 필요했습니다.",
			How:           "React Query로 데이터 페칭, CSS Grid로 레이아웃 구성",
			Status:        entity.LogStatusDone,
			ResultSummary: "상품 목록 페이지 완성, 페이지네이션 및 필터 기능 구현",
			EvidenceLink:  "https://github.com/example/product-list",
		},
		{
			Title:      "주간 회의 - 진행 상황 공유",
			Types:      entity.StringArray{"회의·조율"},
			Date:       daysAgo(10),
			StartTime:  "10:00",
			EndTime:    "11:00",
			Duration:   60,
			TaskScope:  "전체",
			OutputType: "문서",
			Participants: entity.ParticipantList{
				{MemberID: m1.ID, Role: "참석", ContributionScore: 3, Comment: "진행 상황 공유", Approved: &approved},
				{MemberID: m2.ID, Role: "참석", ContributionScore: 3, Comment: "API 일정 논의", Approved: &approved},
				{MemberID: m3.ID, Role: "참석", ContributionScore: 3, Comment: "디자인 피드백", Approved: &approved},
				{MemberID: m4.ID, Role: "진행", ContributionScore: 5, Comment: "회의 주최 및 정리", Approved: &approved},
			},
			WhatIDid:      "각 팀원의 진행 상황을 공유하고 이슈를 논의했습니다.\n다음 주 일정과 우선순위를 조율했습니다.",
			Why:           "팀 전체의 진행 상황을 동기화하고 이슈를 해결하기 위함",
			How:           "Zoom 온라인 회의, Notion 회의록 작성",
			Status:        entity.LogStatusDone,
			ResultSummary: "주간 진행 상황 공유 완료, 다음 주 일정 확정",
			EvidenceLink:  "https://notion.so/weekly-meeting-notes",
		},
		{
			Title:      "API 서버 구축 및 배포",
			Types:      entity.StringArray{"구현(코딩)"},
			Date:       daysAgo(13),
			StartTime:  "09:00",
			EndTime:    "17:00",
			Duration:   480,
			TaskScope:  "서버 인프라",
			OutputType: "코드",
			Participants: entity.ParticipantList{
				{MemberID: m2.ID, Role: "백엔드 개발", ContributionScore: 5, Comment: "Express 서버 구축", Approved: &approved},
			},
			WhatIDid:      "Node.js와 Express를 사용하여 RESTful API 서버를 구축했습니다.\nAWS EC2에 서버를 배포하고 도메인을 연결했습니다.",
			Why:           "프론트엔드와 통신할 백엔드 서버가 필요했습니다.",
			How:           "Node.js, Express, Sequelize ORM, PostgreSQL, AWS EC2",
			Status:        entity.LogStatusDone,
			ResultSummary: "API 서버 구축 및 배포 완료, 기본 엔드포인트 구현",
			BeforeAfter:   "로컬 개발 환경 → AWS 프로덕션 환경",
			EvidenceLink:  "https://github.com/example/api-server",
		},
		{
			Title:      "인증 API 개발 및 테스트",
			Types:      entity.StringArray{"구현(코딩)", "실험·테스트"},
			Date:       daysAgo(9),
			StartTime:  "10:00",
			EndTime:    "15:00",
			Duration:   300,
			TaskScope:  "사용자 인증",
			OutputType: "코드",
			Participants: entity.ParticipantList{
				{MemberID: m2.ID, Role: "백엔드", ContributionScore: 5, Comment: "JWT 인증 구현", Approved: &approved},
			},
			WhatIDid:      "JWT 기반 인증 시스템을 구현했습니다.\n회원가입, 로그인, 토큰 갱신 API를 개발했습니다.",
			Why:           "사용자 인증 및 권한 관리가 필요했습니다.",
			How:           "JWT, bcrypt, Passport.js, Postman",
			Status:        entity.LogStatusDone,
			ResultSummary: "인증 API 완성, 테스트 및 문서화 완료",
			EvidenceLink:  "https://github.com/example/auth-api",
		},
		{
			Title:      "UI/UX 디자인 시스템 구축",
			Types:      entity.StringArray{"디자인"},
			Date:       daysAgo(14),
			StartTime:  "09:00",
			EndTime:    "18:00",
			Duration:   540,
			TaskScope:  "전체",
			OutputType: "이미지",
			Participants: entity.ParticipantList{
				{MemberID: m3.ID, Role: "디자인", ContributionScore: 5, Comment: "Figma 디자인 시스템 제작", Approved: &approved},
			},
			WhatIDid:      "Figma를 사용하여 전체 프로젝트의 디자인 시스템을 구축했습니다.\n컬러 팔레트, 타이포그래피, 컴포넌트 라이브러리를 정의했습니다.",
			Why:           "일관된 UI/UX를 위한 디자인 시스템이 필요했습니다.",
			How:           "Figma, Material Design 참고",
			Status:        entity.LogStatusDone,
			ResultSummary: "디자인 시스템 완성, 개발팀과 공유",
			EvidenceLink:  "https://figma.com/design-system",
		},
		{
			Title:      "상품 상세 페이지 디자인",
			Types:      entity.StringArray{"디자인"},
			Date:       daysAgo(6),
			StartTime:  "13:00",
			EndTime:    "17:00",
			Duration:   240,
			TaskScope:  "상품 상세",
			OutputType: "이미지",
			Participants: entity.ParticipantList{
				{MemberID: m3.ID, Role: "디자인", ContributionScore: 5, Comment: "Figma 목업 제작", Approved: &approved},
			},
			WhatIDid:      "상품 상세 페이지의 레이아웃과 UI를 디자인했습니다.\n이미지 갤러리, 상품 정보, 리뷰 섹션을 구성했습니다.",
			Why:           "상품 상세 정보를 효과적으로 표시하기 위함",
			How:           "Figma, 참고 사이트 벤치마킹",
			Status:        entity.LogStatusDone,
			ResultSummary: "상품 상세 페이지 디자인 완성",
			EvidenceLink:  "https://figma.com/product-detail",
		},
		{
			Title:      "프로젝트 기획서 작성",
			Types:      entity.StringArray{"문서·보고서"},
			Date:       daysAgo(15),
			StartTime:  "09:00",
			EndTime:    "12:00",
			Duration:   180,
			TaskScope:  "전체",
			OutputType: "문서",
			Participants: entity.ParticipantList{
				{MemberID: m4.ID, Role: "PM", ContributionScore: 5, Comment: "기획서 작성", Approved: &approved},
			},
			WhatIDid:      "프로젝트의 목표, 범위, 일정을 정리한 기획서를 작성했습니다.\n주요 기능 목록과 우선순위를 정의했습니다.",
			Why:           "프로젝트의 방향성과 목표를 명확히 하기 위함",
			How:           "Notion, Google Docs",
			Status:        entity.LogStatusDone,
			ResultSummary: "프로젝트 기획서 완성 및 팀 공유",
			EvidenceLink:  "https://notion.so/project-plan",
		},
		{
			Title:      "경쟁사 분석 및 벤치마킹",
			Types:      entity.StringArray{"조사"},
			Date:       daysAgo(8),
			StartTime:  "14:00",
			EndTime:    "17:00",
			Duration:   180,
			TaskScope:  "전체",
			OutputType: "문서",
			Participants: entity.ParticipantList{
				{MemberID: m4.ID, Role: "조사", ContributionScore: 5, Comment: "경쟁사 분석 보고서 작성", Approved: &approved},
			},
			WhatIDid:      "주요 경쟁 쇼핑몰 3곳의 기능과 UI를 분석했습니다.\n장단점을 정리하고 적용 아이디어를 도출했습니다.",
			Why:           "시장 트렌드를 파악하고 차별화 포인트를 찾기 위함",
			How:           "경쟁사 웹사이트 분석, 스크린샷 수집",
			Status:        entity.LogStatusDone,
			ResultSummary: "경쟁사 분석 완료, 개선 아이디어 도출",
			EvidenceLink:  "https://notion.so/competitor-analysis",
		},
	}

	byTitle := make(map[string]*entity.ActivityLog)
	for _, l := range logs {
		l.ID = uuid.New().String()[:32]
		l.ProjectID = project.ID
		if err := repos.Log.Create(ctx, l); err != nil {
			return err
		}
		byTitle[l.Title] = l
	}

	// 익명 피드백. 쿨다운을 거치지 않도록 저장소에 직접 넣는다.
	feedbacks := []struct {
		logTitle string
		memberID string
		text     string
	}{
		{"로그인 페이지 UI 구현", m1.ID, "UI 구현 퀄리티가 높고 반응형도 완벽했어요"},
		{"상품 목록 페이지 개발", m1.ID, "페이지네이션 로직이 깔끔하고 성능도 좋았습니다"},
		{"상품 목록 페이지 개발", m2.ID, "API 연동이 빠르고 에러 처리도 꼼꼼했어요"},
		{"주간 회의 - 진행 상황 공유", m4.ID, "회의 진행이 체계적이고 정리도 잘 해주셨어요"},
		{"UI/UX 디자인 시스템 구축", m3.ID, "디자인 시스템 덕분에 개발이 훨씬 수월했습니다"},
		{"인증 API 개발 및 테스트", m2.ID, "보안 처리가 탄탄하고 문서화도 잘 되어있어요"},
	}
	for _, fb := range feedbacks {
		l, ok := byTitle[fb.logTitle]
		if !ok {
			continue
		}
		if err := repos.Feedback.Create(ctx, &entity.Feedback{
			ID:         uuid.New().String()[:32],
			TargetType: entity.FeedbackTargetLog,
			TargetID:   l.ID,
			MemberID:   fb.memberID,
			Text:       fb.text,
		}); err != nil {
			return err
		}
	}

	log.Printf("seed complete: members=4 logs=%d feedbacks=%d", len(logs), len(feedbacks))
	return nil
}
