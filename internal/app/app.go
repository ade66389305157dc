package app

import (
	"go-payroll/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every route. The
// returned func closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	inf, err := connect(cfg)
	if err != nil {
		return nil, err
	}
	zap.L().Info("infrastructure ready",
		zap.String("db_driver", cfg.DB.Driver),
		zap.Bool("run_lock", inf.rdb != nil),
		zap.Bool("outbox", cfg.KafkaBroker != ""),
	)

	registerModules(router, inf, cfg)

	return inf.Close, nil
}
