package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go-payroll/internal/app"
	"go-payroll/internal/config"

	"go.uber.org/zap"
)

func main() {
	confirm := flag.Bool("confirm", false, "drop and recreate every payroll table")
	flag.Parse()

	if !*confirm {
		fmt.Fprintln(os.Stderr, "refusing to reset schema without -confirm")
		os.Exit(2)
	}

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

	if err := app.RunReset(context.Background(), cfg); err != nil {
		logger.Fatal("schema reset failed", zap.Error(err))
	}

	fmt.Println("Schema reset complete")
}
