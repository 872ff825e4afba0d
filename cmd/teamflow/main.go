package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChaeRin-Yu1203/teamflow/internal/config"
	"github.com/ChaeRin-Yu1203/teamflow/internal/middleware"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/entity"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/handler"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/sse"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env 파일 로드
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 로거 초기화
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting teamflow service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 데이터베이스 초기화
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Project{},
		&entity.Member{},
		&entity.ActivityLog{},
		&entity.Feedback{},
		&entity.SummaryReport{},
	); err != nil {
		zapLogger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	// Redis 초기화
	rdb := initRedis(cfg.Redis)

	// 의존성 초기화
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg, zapLogger)
	handlers := handler.NewHandlers(services)

	sse.GlobalHub.SetLogger(zapLogger)

	// Gin 모드 설정
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 라우터 생성
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: 0, // SSE 장기 연결 유지를 위해 비활성화
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 우아한 종료
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// 헬스 체크
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		// 인증 (로그인 불필요)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// SSE 실시간 푸시 (query param token 지원)
		sseGroup := v1.Group("/sse")
		sseGroup.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			sseGroup.GET("/events", h.SSE.Stream)
		}

		// 인증 필요 구간
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			// 현재 사용자
			authorized.GET("/auth/me", h.Auth.Me)

			// 프로젝트 (단일 프로젝트 모델)
			authorized.GET("/project", h.Project.Get)
			authorized.PUT("/project", h.Project.Update)

			// 팀원 및 역할 추천
			members := authorized.Group("/members")
			{
				members.GET("", h.Member.List)
				members.POST("", h.Member.Create)
				members.GET("/:id", h.Member.Get)
				members.PUT("/:id", h.Member.Update)
				members.DELETE("/:id", h.Member.Delete)
				members.PUT("/:id/decided-role", h.Member.SetDecidedRole)
				members.GET("/:id/role-scores", h.Member.RoleScores)
			}
			authorized.GET("/recommendations", h.Member.Recommend)

			// 활동 로그
			logs := authorized.Group("/logs")
			{
				logs.GET("", h.Log.List)
				logs.POST("", h.Log.Create)
				logs.GET("/:id", h.Log.Get)
				logs.PUT("/:id", h.Log.Update)
				logs.DELETE("/:id", h.Log.Delete)
				logs.GET("/:id/feedbacks", h.Feedback.ListForLog)
			}

			// 대시보드 (실시간 집계)
			authorized.GET("/dashboard", h.Summary.Dashboard)

			// 요약 보고서
			summaries := authorized.Group("/summaries")
			{
				summaries.GET("", h.Summary.List)
				summaries.POST("", h.Summary.Generate)
				summaries.GET("/latest", h.Summary.Latest)
				summaries.GET("/:id", h.Summary.Get)
				summaries.POST("/:id/approve", h.Summary.Approve)
				summaries.DELETE("/:id", h.Summary.Delete)
				summaries.GET("/:id/export", h.Summary.Export)
			}

			// 익명 피드백
			feedbacks := authorized.Group("/feedbacks")
			{
				feedbacks.GET("", h.Feedback.ListAll)
				feedbacks.POST("", h.Feedback.Create)
				feedbacks.POST("/:id/hide", h.Feedback.Hide)
			}

			// 증빙 업로드
			authorized.POST("/uploads/evidence", h.Upload.UploadEvidence)
		}
	}
}
