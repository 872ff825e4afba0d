package handler

import (
	"testing"

	"github.com/ChaeRin-Yu1203/teamflow/internal/config"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/repository"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/service"
	"github.com/ChaeRin-Yu1203/teamflow/internal/team/testutil"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setupEnv wires repositories, services and routes against a test schema.
// Redis and MinIO are not required. Cooldown checks fail open and the
// upload endpoint returns a disabled error.
func setupEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)

	cfg := &config.Config{}
	cfg.JWT.Secret = testutil.JWTSecret
	cfg.JWT.Issuer = "teamflow"

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg, zap.NewNop())
	h := NewHandlers(services)

	r := testutil.SetupRouter()
	authorized := testutil.AuthGroup(r, "/api/v1")

	authorized.GET("/project", h.Project.Get)
	authorized.PUT("/project", h.Project.Update)

	authorized.GET("/members", h.Member.List)
	authorized.POST("/members", h.Member.Create)
	authorized.GET("/members/:id", h.Member.Get)
	authorized.PUT("/members/:id", h.Member.Update)
	authorized.DELETE("/members/:id", h.Member.Delete)
	authorized.PUT("/members/:id/decided-role", h.Member.SetDecidedRole)
	authorized.GET("/members/:id/role-scores", h.Member.RoleScores)
	authorized.GET("/recommendations", h.Member.Recommend)

	authorized.GET("/logs", h.Log.List)
	authorized.POST("/logs", h.Log.Create)
	authorized.GET("/logs/:id", h.Log.Get)
	authorized.PUT("/logs/:id", h.Log.Update)
	authorized.DELETE("/logs/:id", h.Log.Delete)
	authorized.GET("/logs/:id/feedbacks", h.Feedback.ListForLog)

	authorized.GET("/dashboard", h.Summary.Dashboard)

	authorized.GET("/summaries", h.Summary.List)
	authorized.POST("/summaries", h.Summary.Generate)
	authorized.GET("/summaries/latest", h.Summary.Latest)
	authorized.POST("/summaries/:id/approve", h.Summary.Approve)

	authorized.GET("/feedbacks", h.Feedback.ListAll)
	authorized.POST("/feedbacks", h.Feedback.Create)
	authorized.POST("/feedbacks/:id/hide", h.Feedback.Hide)

	return r, db
}

func TestAuthRequired(t *testing.T) {
	r, _ := setupEnv(t)

	w := testutil.DoRequest(r, "GET", "/api/v1/members", nil, "")
	if w.Code != 401 {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
