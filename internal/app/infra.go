package app

import (
	"database/sql"

	"go-payroll/internal/config"
	"go-payroll/internal/runlock"
	"go-payroll/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infra struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
	locker runlock.Locker
}

// connect opens the database and, when REDIS_ADDR is set, the Redis client
// behind the run lock.
func connect(cfg config.Config) (*infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	inf := &infra{gormDB: gormDB, sqlDB: sqlDB, locker: runlock.NewNoopLocker()}

	if cfg.RedisAddr == "" {
		zap.L().Warn("REDIS_ADDR not set, run lock disabled")
		return inf, nil
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DB.MaxRetries)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	inf.rdb = rdb
	inf.locker = runlock.NewRedisLocker(rdb, runlock.DefaultTTL)

	return inf, nil
}

func (i *infra) Close() {
	if i.rdb != nil {
		i.rdb.Close()
	}
	i.sqlDB.Close()
}
