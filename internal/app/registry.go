package app

import (
	"net/http"

	"go-payroll/internal/config"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/seed"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/audit"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, inf *infra, cfg config.Config) {
	// --- Repositories ---
	payrollRepo := payroll.NewRepository(inf.gormDB)
	outboxRepo := kafka.NewOutboxRepository(inf.gormDB)

	// --- Services ---
	schemaService := payroll.NewSchemaService(inf.gormDB, inf.locker, audit.NewStdoutLogger(), &kafka.OutboxEvent{})
	seedService := newSeedService(inf, payrollRepo, outboxRepo, cfg)

	// --- Handlers ---
	payrollHandler := payroll.NewHandler(schemaService)
	seedHandler := seed.NewHandler(seedService)

	router.GET("/healthz", func(c *gin.Context) {
		if err := inf.sqlDB.PingContext(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.ContextLogger(zap.L().Named("http")))
	{
		payroll.RegisterRoutes(api, payrollHandler)
		seed.RegisterRoutes(api, seedHandler)
	}
}

// newSeedService writes seed_loaded events to the outbox only when a Kafka
// broker is configured to relay them.
func newSeedService(inf *infra, repo payroll.Repository, outboxRepo kafka.OutboxRepository, cfg config.Config) seed.Service {
	if cfg.KafkaBroker == "" {
		return seed.NewService(inf.sqlDB, repo, inf.locker)
	}
	return seed.NewServiceWithOutbox(inf.sqlDB, repo, inf.locker, outboxRepo)
}
