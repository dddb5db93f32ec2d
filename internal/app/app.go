package app

import (
	"database/sql"

	"freshbit/internal/config"
	"freshbit/internal/shared/connection"
	"freshbit/internal/shared/database"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infra struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func (i *infra) Close() {
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connectDatabase(cfg *config.Config) (*infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	return &infra{gormDB: gormDB, sqlDB: sqlDB}, nil
}

// BuildApp menyiapkan database (plus migrasi), redis dan semua modul HTTP.
// Fungsi cleanup dipanggil setelah server berhenti.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	in, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := database.RunMigrations(in.sqlDB, logger); err != nil {
		in.Close()
		return nil, err
	}

	in.rdb, err = connection.ConnectRedisWithRetry(cfg.Redis, 5)
	if err != nil {
		in.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	if err := registerModules(router, cfg, in, logger); err != nil {
		in.Close()
		return nil, err
	}
	return in.Close, nil
}
