package app

import (
	"context"
	"database/sql"
	"fmt"

	"go-hris-compliance/internal/config"
	"go-hris-compliance/internal/messaging/kafka"
	"go-hris-compliance/internal/minimumwage"
	"go-hris-compliance/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine, cfg *config.Config) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := migrate(context.Background(), gormDB, sqlDB); err != nil {
			return err
		}
		logger.Info("schema migrated")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, caching and idempotency disabled")
	}

	// 2. Register Modules & Routes
	return registerModules(router, cfg, sqlDB, gormDB, redisClient)
}

func connectDatabase(cfg *config.Config) (*gorm.DB, error) {
	return connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.MaxRetries,
	)
}

// migrate creates the tables this service owns. Employee, department and
// designation tables belong to the HRIS and are never migrated here.
func migrate(ctx context.Context, gormDB *gorm.DB, sqlDB *sql.DB) error {
	if err := gormDB.WithContext(ctx).AutoMigrate(&minimumwage.MinimumWageConfiguration{}); err != nil {
		return fmt.Errorf("migrate minimum wage configurations: %w", err)
	}
	if err := kafka.NewOutboxRepository(sqlDB).EnsureSchema(ctx); err != nil {
		return fmt.Errorf("migrate outbox: %w", err)
	}
	return nil
}
