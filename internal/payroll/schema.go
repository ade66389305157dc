package payroll

import (
	"context"
	"fmt"

	"go-payroll/internal/runlock"
	"go-payroll/internal/shared/audit"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists the payroll tables in creation order.
func Models() []any {
	return []any{&Employee{}, &WorkLog{}, &Bonus{}, &Penalty{}, &Salary{}}
}

// ResetSchema drops every payroll table and creates it again. extraModels
// are only migrated, never dropped.
func ResetSchema(ctx context.Context, db *gorm.DB, extraModels ...any) error {
	migrator := db.WithContext(ctx).Migrator()

	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := migrator.DropTable(models[i]); err != nil {
			return fmt.Errorf("drop %T: %w", models[i], err)
		}
	}

	if err := db.WithContext(ctx).AutoMigrate(append(models, extraModels...)...); err != nil {
		return fmt.Errorf("create payroll tables: %w", err)
	}

	return nil
}

type SchemaService interface {
	Reset(ctx context.Context) error
}

type schemaService struct {
	db          *gorm.DB
	locker      runlock.Locker
	auditLogger audit.Logger
	extraModels []any
	logger      *zap.Logger
}

func NewSchemaService(
	db *gorm.DB,
	locker runlock.Locker,
	auditLogger audit.Logger,
	extraModels ...any,
) SchemaService {
	return &schemaService{
		db:          db,
		locker:      locker,
		auditLogger: auditLogger,
		extraModels: extraModels,
		logger:      zap.L().Named("payroll.schema"),
	}
}

func (s *schemaService) Reset(ctx context.Context) error {
	release, err := s.locker.Acquire(ctx, runlock.RunKey)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(context.Background()); err != nil {
			s.logger.Warn("release run lock failed", zap.Error(err))
		}
	}()

	s.auditLogger.Log(ctx, audit.Entry{
		Action:  "SCHEMA_RESET",
		Message: "dropping and recreating payroll tables",
		Meta:    map[string]any{"tables": len(Models())},
	})

	if err := ResetSchema(ctx, s.db, s.extraModels...); err != nil {
		s.logger.Error("schema reset failed", zap.Error(err))
		return err
	}

	s.logger.Info("payroll schema recreated")
	return nil
}
