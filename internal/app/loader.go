package app

import (
	"context"

	"go-payroll/internal/config"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/seed"
	"go-payroll/internal/shared/audit"
)

// RunLoad performs one load run of the seed file at path.
func RunLoad(ctx context.Context, cfg config.Config, path string) (seed.LoadReport, error) {
	inf, err := connect(cfg)
	if err != nil {
		return seed.LoadReport{}, err
	}
	defer inf.Close()

	svc := newSeedService(inf, payroll.NewRepository(inf.gormDB), kafka.NewOutboxRepository(inf.gormDB), cfg)
	return svc.LoadFile(ctx, path)
}

// RunReset drops and recreates the payroll tables and the outbox table.
func RunReset(ctx context.Context, cfg config.Config) error {
	inf, err := connect(cfg)
	if err != nil {
		return err
	}
	defer inf.Close()

	svc := payroll.NewSchemaService(inf.gormDB, inf.locker, audit.NewStdoutLogger(), &kafka.OutboxEvent{})
	return svc.Reset(ctx)
}
