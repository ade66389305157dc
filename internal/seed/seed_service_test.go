package seed_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	kafka "go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	"go-payroll/internal/payroll"
	payrollMock "go-payroll/internal/payroll/mock"
	"go-payroll/internal/runlock"
	"go-payroll/internal/seed"
	seederrors "go-payroll/internal/seed/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeLocker struct {
	err      error
	acquired int
	released int
}

func (l *fakeLocker) Acquire(ctx context.Context, key string) (runlock.ReleaseFunc, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.acquired++
	return func(ctx context.Context) error {
		l.released++
		return nil
	}, nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service seed.Service
	repo    *payrollMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	locker  *fakeLocker
}

func setupServiceTest(t *testing.T, withOutbox bool) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := payrollMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	locker := &fakeLocker{}

	var svc seed.Service
	if withOutbox {
		svc = seed.NewServiceWithOutbox(db, repo, locker, outboxRepo)
	} else {
		svc = seed.NewService(db, repo, locker)
	}

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outboxRepo,
		locker:  locker,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// expectEmployees assigns sequential IDs starting at 1.
func expectEmployees(repo *payrollMock.MockRepository, n int) *[]payroll.Employee {
	created := []payroll.Employee{}
	next := uint(1)
	repo.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *payroll.Employee) error {
			e.ID = next
			next++
			created = append(created, *e)
			return nil
		}).Times(n)
	return &created
}

func testDocument() seed.Document {
	salary := func(v float64) *float64 { return &v }
	return seed.Document{
		Employees: []seed.EmployeeRecord{
			{Name: "Alice", BaseSalary: salary(1000)},
			{Name: "Bob", BaseSalary: salary(800)},
		},
		WorkLogs: []seed.WorkLogRecord{
			{EmployeeName: "Bob", WorkDate: "2024-01-15", HoursWorked: 8},
		},
		Bonuses: []seed.BonusRecord{
			{EmployeeName: "Alice", Amount: 200, Reason: "Q1", DateGiven: "2024-01-31"},
			{EmployeeName: "Nonexistent", Amount: 99, Reason: "typo", DateGiven: "2024-01-31"},
		},
		Salaries: []seed.SalaryRecord{
			{EmployeeName: "Alice", Month: "2024-01", BaseAmount: 1000, BonusAmount: 200, PenaltyAmount: 50, GeneratedAt: "2024-02-01"},
		},
	}
}

func TestSeedService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("success links dependents by employee id", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAll(gomock.Any()).Return(nil)
		employees := expectEmployees(deps.repo, 2)
		deps.repo.EXPECT().CreateWorkLogs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, rows []payroll.WorkLog) error {
				assert.Len(t, rows, 1)
				assert.Equal(t, uint(2), rows[0].EmployeeID)
				return nil
			})
		deps.repo.EXPECT().CreateBonuses(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, rows []payroll.Bonus) error {
				assert.Len(t, rows, 1)
				assert.Equal(t, uint(1), rows[0].EmployeeID)
				return nil
			})
		deps.repo.EXPECT().CreatePenalties(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateSalaries(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, rows []payroll.Salary) error {
				assert.Len(t, rows, 1)
				assert.Equal(t, 1150.0, rows[0].TotalAmount)
				return nil
			})

		report, err := deps.service.Load(ctx, testDocument())

		assert.NoError(t, err)
		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, 2, report.Employees)
		assert.Equal(t, 1, report.WorkLogs)
		assert.Equal(t, 1, report.Bonuses)
		assert.Equal(t, 0, report.Penalties)
		assert.Equal(t, 1, report.Salaries)
		assert.Equal(t, []seed.SkippedRecord{
			{Kind: seed.KindBonus, Index: 1, EmployeeName: "Nonexistent"},
		}, report.Skipped)
		assert.True(t, (*employees)[0].IsActive)
		assert.Equal(t, 1, deps.locker.released)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid date never opens a transaction", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		doc := testDocument()
		doc.WorkLogs[0].WorkDate = "15-01-2024"

		_, err := deps.service.Load(ctx, doc)

		assert.ErrorIs(t, err, seederrors.ErrInvalidDateFormat)
		assert.Equal(t, 0, deps.locker.acquired)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing base salary", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		doc := testDocument()
		doc.Employees[1].BaseSalary = nil

		_, err := deps.service.Load(ctx, doc)

		assert.ErrorIs(t, err, seederrors.ErrMissingBaseSalary)
	})

	t.Run("missing employee name", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		doc := testDocument()
		doc.Employees[0].Name = ""

		_, err := deps.service.Load(ctx, doc)

		assert.ErrorIs(t, err, seederrors.ErrMissingEmployeeName)
	})

	t.Run("repository error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		expectTx(t, deps.sqlMock, false)
		dbErr := errors.New("insert failed")

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAll(gomock.Any()).Return(nil)
		expectEmployees(deps.repo, 2)
		deps.repo.EXPECT().CreateWorkLogs(gomock.Any(), gomock.Any()).Return(dbErr)

		_, err := deps.service.Load(ctx, testDocument())

		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, deps.locker.released)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("run lock held", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		deps.locker.err = runlock.ErrLocked

		_, err := deps.service.Load(ctx, testDocument())

		assert.ErrorIs(t, err, runlock.ErrLocked)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("enqueues seed loaded event", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAll(gomock.Any()).Return(nil)
		expectEmployees(deps.repo, 2)
		deps.repo.EXPECT().CreateWorkLogs(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateBonuses(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreatePenalties(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateSalaries(gomock.Any(), gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, "payroll.seed_loaded", event.EventType)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)
				assert.NoError(t, kafka.ValidateOutboxEvent(event))
				return nil
			})

		report, err := deps.service.Load(ctx, testDocument())

		assert.NoError(t, err)
		assert.Len(t, report.Skipped, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestSeedService_LoadFile_NotFound(t *testing.T) {
	deps := setupServiceTest(t, false)

	_, err := deps.service.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorIs(t, err, seederrors.ErrSeedFileNotFound)
}
