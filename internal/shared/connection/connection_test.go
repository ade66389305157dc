package connection

import (
	"testing"

	"go-payroll/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDialector(t *testing.T) {
	t.Run("known drivers", func(t *testing.T) {
		for _, driver := range []string{config.DriverPostgres, config.DriverMySQL, config.DriverSQLite} {
			d, err := Dialector(config.DBConfig{Driver: driver, Name: "payroll"})
			assert.NoError(t, err)
			assert.Equal(t, driver, d.Name())
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Dialector(config.DBConfig{Driver: "oracle"})
		assert.Error(t, err)
	})
}

func TestConnectGORMWithRetry_SQLite(t *testing.T) {
	retryDelay = 0

	db, err := ConnectGORMWithRetry(config.DBConfig{
		Driver:     config.DriverSQLite,
		Name:       "file::memory:",
		MaxRetries: 1,
	})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
