package app

import (
	"database/sql"

	"go-hris-compliance/internal/compliance"
	"go-hris-compliance/internal/config"
	"go-hris-compliance/internal/employee"
	"go-hris-compliance/internal/messaging/kafka"
	"go-hris-compliance/internal/middleware"
	"go-hris-compliance/internal/minimumwage"
	"go-hris-compliance/internal/rbac"
	"go-hris-compliance/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	userRateLimit = rate.Limit(10)
	userRateBurst = 20
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	wageRepo := minimumwage.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBAC.ModelPath, cfg.RBAC.PolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	wageService := minimumwage.NewServiceWithOutbox(db, wageRepo, rdb, outboxRepo)
	complianceService := compliance.NewService(
		employeeRepo,
		wageRepo,
		compliance.KeywordClassifier{},
		cfg.Compliance.DefaultState,
	)

	// --- Handlers ---
	wageHandler := minimumwage.NewHandlerWithRedis(wageService, rdb)
	complianceHandler := compliance.NewHandler(complianceService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L().Named("http")),
	)

	protected := api.Group("",
		middleware.AuthMiddleware(cfg.JWT.Secret),
		middleware.ExtractUserID(),
		middleware.RateLimitByUser(userRateLimit, userRateBurst),
	)
	{
		minimumwage.RegisterRoutes(protected, wageHandler, rbacService, rdb)
		compliance.RegisterRoutes(protected, complianceHandler, rbacService)
	}

	return nil
}
