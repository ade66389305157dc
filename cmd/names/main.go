package main

import (
	"flag"
	"os"

	"go-payroll/internal/report"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "", "seed JSON file (default SEED_FILE or data.json)")
	xlsx := flag.String("xlsx", "", "also write the names to this .xlsx file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	path := *file
	if path == "" {
		path = os.Getenv("SEED_FILE")
	}
	if path == "" {
		path = "data.json"
	}

	names, err := report.EmployeeNames(path)
	if err != nil {
		logger.Fatal("read employee names failed", zap.String("file", path), zap.Error(err))
	}

	if err := report.PrintNames(os.Stdout, names); err != nil {
		logger.Fatal("print names failed", zap.Error(err))
	}

	if *xlsx != "" {
		if err := report.WriteNamesXLSX(*xlsx, names); err != nil {
			logger.Fatal("write xlsx failed", zap.String("file", *xlsx), zap.Error(err))
		}
	}
}
