package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"go-payroll/internal/app"
	"go-payroll/internal/config"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "seed JSON file (default SEED_FILE or data.json)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	path := *file
	if path == "" {
		path = cfg.SeedFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := app.RunLoad(ctx, cfg, path)
	if err != nil {
		logger.Fatal("load run failed", zap.String("file", path), zap.Error(err))
	}

	fmt.Printf("Data loaded successfully: %d employees, %d work logs, %d bonuses, %d penalties, %d salaries (%d skipped)\n",
		report.Employees, report.WorkLogs, report.Bonuses, report.Penalties, report.Salaries, len(report.Skipped))
}
