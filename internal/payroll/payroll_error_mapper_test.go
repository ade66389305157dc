package payroll

import (
	"errors"
	"fmt"
	"testing"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapRepositoryError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, mapRepositoryError(nil))
	})

	t.Run("postgres undefined table", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "42P01", Message: `relation "employee" does not exist`})
		assert.ErrorIs(t, mapRepositoryError(err), payrollerrors.ErrSchemaNotInitialized)
	})

	t.Run("sqlite missing table", func(t *testing.T) {
		err := errors.New("no such table: employee")
		assert.ErrorIs(t, mapRepositoryError(err), payrollerrors.ErrSchemaNotInitialized)
	})

	t.Run("mysql missing table", func(t *testing.T) {
		err := errors.New("Error 1146 (42S02): Table 'accounting.employee' doesn't exist")
		assert.ErrorIs(t, mapRepositoryError(err), payrollerrors.ErrSchemaNotInitialized)
	})

	t.Run("other error passes through", func(t *testing.T) {
		err := errors.New("connection reset by peer")
		assert.Equal(t, err, mapRepositoryError(err))
	})
}
