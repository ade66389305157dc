package payroll_test

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/payroll"
	"go-payroll/internal/runlock"
	"go-payroll/internal/shared/audit"

	"github.com/stretchr/testify/assert"
)

type recordingAuditLogger struct {
	entries []audit.Entry
}

func (l *recordingAuditLogger) Log(ctx context.Context, entry audit.Entry) {
	l.entries = append(l.entries, entry)
}

type lockedLocker struct{}

func (lockedLocker) Acquire(ctx context.Context, key string) (runlock.ReleaseFunc, error) {
	return nil, runlock.ErrLocked
}

type extraTable struct {
	ID   uint `gorm:"primaryKey"`
	Note string
}

func TestSchemaService_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("drops data and recreates tables", func(t *testing.T) {
		db := openTestDB(t)
		assert.NoError(t, payroll.ResetSchema(ctx, db))

		repo := payroll.NewRepository(db)
		assert.NoError(t, repo.CreateEmployee(ctx, &payroll.Employee{Name: "Alice", BaseSalary: 1000, IsActive: true}))

		auditLogger := &recordingAuditLogger{}
		svc := payroll.NewSchemaService(db, runlock.NewNoopLocker(), auditLogger, &extraTable{})

		assert.NoError(t, svc.Reset(ctx))

		counts, err := repo.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, payroll.Counts{}, counts)

		for _, model := range payroll.Models() {
			assert.True(t, db.Migrator().HasTable(model))
		}
		assert.True(t, db.Migrator().HasTable(&extraTable{}))

		assert.Len(t, auditLogger.entries, 1)
		assert.Equal(t, "SCHEMA_RESET", auditLogger.entries[0].Action)
	})

	t.Run("works on an empty database", func(t *testing.T) {
		db := openTestDB(t)
		svc := payroll.NewSchemaService(db, runlock.NewNoopLocker(), &recordingAuditLogger{})

		assert.NoError(t, svc.Reset(ctx))
		assert.True(t, db.Migrator().HasTable(&payroll.Salary{}))
	})

	t.Run("refuses while another run holds the lock", func(t *testing.T) {
		db := openTestDB(t)
		auditLogger := &recordingAuditLogger{}
		svc := payroll.NewSchemaService(db, lockedLocker{}, auditLogger)

		err := svc.Reset(ctx)

		assert.True(t, errors.Is(err, runlock.ErrLocked))
		assert.Empty(t, auditLogger.entries)
		assert.False(t, db.Migrator().HasTable(&payroll.Employee{}))
	})
}
