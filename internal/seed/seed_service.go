package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/runlock"
	seederrors "go-payroll/internal/seed/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=seed_service.go -destination=mock/seed_service_mock.go -package=mock
type Service interface {
	Load(ctx context.Context, doc Document) (LoadReport, error)
	LoadFile(ctx context.Context, path string) (LoadReport, error)
}

type service struct {
	db     *sql.DB
	repo   payroll.Repository
	locker runlock.Locker
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo payroll.Repository, locker runlock.Locker) Service {
	return &service{
		db:     db,
		repo:   repo,
		locker: locker,
		logger: zap.L().Named("seed.service"),
	}
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo payroll.Repository,
	locker runlock.Locker,
	outboxRepo kafka.OutboxRepository,
) Service {
	svc := NewService(db, repo, locker).(*service)
	svc.outbox = outboxRepo
	return svc
}

func (s *service) LoadFile(ctx context.Context, path string) (LoadReport, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return LoadReport{}, err
	}
	return s.Load(ctx, doc)
}

// Load replaces the payroll tables' contents with doc in one transaction.
// Employees are inserted first so dependents can be linked by the assigned
// ID; dependents naming an unknown employee are skipped and reported.
func (s *service) Load(ctx context.Context, doc Document) (LoadReport, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	// Semua tanggal diparse dulu, sebelum menyentuh database.
	plan, err := prepare(doc)
	if err != nil {
		return LoadReport{}, err
	}

	release, err := s.locker.Acquire(ctx, runlock.RunKey)
	if err != nil {
		return LoadReport{}, err
	}
	defer func() {
		if err := release(context.Background()); err != nil {
			log.Warn("release run lock failed", zap.Error(err))
		}
	}()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoadReport{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteAll(ctx); err != nil {
		return LoadReport{}, err
	}

	ids := make(map[string]uint, len(plan.employees))
	for i := range plan.employees {
		emp := &plan.employees[i]
		if err := qtx.CreateEmployee(ctx, emp); err != nil {
			return LoadReport{}, fmt.Errorf("employees[%d]: %w", i, err)
		}
		if _, dup := ids[emp.Name]; dup {
			log.Warn("duplicate employee name, dependents link to the later record",
				zap.String("employee_name", emp.Name),
				zap.Int("index", i),
			)
		}
		ids[emp.Name] = emp.ID
	}

	report := LoadReport{
		RunID:     uuid.NewString(),
		Employees: len(plan.employees),
		Skipped:   plan.skipped,
	}

	workLogs := link(plan.workLogs, ids, func(w *payroll.WorkLog, id uint) { w.EmployeeID = id })
	bonuses := link(plan.bonuses, ids, func(b *payroll.Bonus, id uint) { b.EmployeeID = id })
	penalties := link(plan.penalties, ids, func(p *payroll.Penalty, id uint) { p.EmployeeID = id })
	salaries := link(plan.salaries, ids, func(sal *payroll.Salary, id uint) { sal.EmployeeID = id })

	for _, skipped := range report.Skipped {
		log.Warn("unknown employee_name, record skipped",
			zap.String("kind", skipped.Kind),
			zap.Int("index", skipped.Index),
			zap.String("employee_name", skipped.EmployeeName),
		)
	}

	if err := qtx.CreateWorkLogs(ctx, workLogs); err != nil {
		return LoadReport{}, err
	}
	if err := qtx.CreateBonuses(ctx, bonuses); err != nil {
		return LoadReport{}, err
	}
	if err := qtx.CreatePenalties(ctx, penalties); err != nil {
		return LoadReport{}, err
	}
	if err := qtx.CreateSalaries(ctx, salaries); err != nil {
		return LoadReport{}, err
	}

	report.WorkLogs = len(workLogs)
	report.Bonuses = len(bonuses)
	report.Penalties = len(penalties)
	report.Salaries = len(salaries)

	if s.outbox != nil {
		if err := s.enqueueSeedLoaded(ctx, tx, report); err != nil {
			return LoadReport{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return LoadReport{}, err
	}

	log.Info("seed data loaded",
		zap.String("run_id", report.RunID),
		zap.Int("employees", report.Employees),
		zap.Int("work_logs", report.WorkLogs),
		zap.Int("bonuses", report.Bonuses),
		zap.Int("penalties", report.Penalties),
		zap.Int("salaries", report.Salaries),
		zap.Int("skipped", len(report.Skipped)),
	)

	return report, nil
}

func (s *service) enqueueSeedLoaded(ctx context.Context, tx *sql.Tx, report LoadReport) error {
	payload, err := json.Marshal(events.SeedLoadedEvent{
		EventType:  events.SeedLoadedEventType,
		RunID:      report.RunID,
		Employees:  report.Employees,
		WorkLogs:   report.WorkLogs,
		Bonuses:    report.Bonuses,
		Penalties:  report.Penalties,
		Salaries:   report.Salaries,
		Skipped:    len(report.Skipped),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "seed_run",
		AggregateID:   report.RunID,
		EventType:     events.SeedLoadedEventType,
		Topic:         events.SeedLoadedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

type pending[T any] struct {
	employeeName string
	row          T
}

type loadPlan struct {
	employees []payroll.Employee
	workLogs  []pending[payroll.WorkLog]
	bonuses   []pending[payroll.Bonus]
	penalties []pending[payroll.Penalty]
	salaries  []pending[payroll.Salary]
	skipped   []SkippedRecord
}

// prepare validates and converts doc before the store is touched. A
// dependent naming an unknown employee is skipped without looking at its
// other fields, so only rows that will be inserted can fail the run.
func prepare(doc Document) (loadPlan, error) {
	plan := loadPlan{
		employees: make([]payroll.Employee, 0, len(doc.Employees)),
		skipped:   []SkippedRecord{},
	}
	known := make(map[string]struct{}, len(doc.Employees))

	for i, rec := range doc.Employees {
		if rec.Name == "" {
			return loadPlan{}, fmt.Errorf("employees[%d]: %w", i, seederrors.ErrMissingEmployeeName)
		}
		if rec.BaseSalary == nil {
			return loadPlan{}, fmt.Errorf("employees[%d]: %w", i, seederrors.ErrMissingBaseSalary)
		}
		hired, err := parseOptionalDate(rec.HiredDate)
		if err != nil {
			return loadPlan{}, fmt.Errorf("employees[%d].hired_date: %w", i, err)
		}

		active := true
		if rec.IsActive != nil {
			active = *rec.IsActive
		}

		plan.employees = append(plan.employees, payroll.Employee{
			Name:       rec.Name,
			Position:   rec.Position,
			BaseSalary: *rec.BaseSalary,
			HiredDate:  hired,
			IsActive:   active,
		})
		known[rec.Name] = struct{}{}
	}

	var err error

	plan.workLogs, err = planDependents(KindWorkLog, "work_logs", doc.WorkLogs, known, &plan.skipped,
		func(rec WorkLogRecord) string { return rec.EmployeeName },
		func(rec WorkLogRecord) (payroll.WorkLog, error) {
			workDate, err := ParseDate(rec.WorkDate)
			if err != nil {
				return payroll.WorkLog{}, fmt.Errorf("work_date: %w", err)
			}
			return payroll.WorkLog{WorkDate: workDate, HoursWorked: rec.HoursWorked}, nil
		})
	if err != nil {
		return loadPlan{}, err
	}

	plan.bonuses, err = planDependents(KindBonus, "bonuses", doc.Bonuses, known, &plan.skipped,
		func(rec BonusRecord) string { return rec.EmployeeName },
		func(rec BonusRecord) (payroll.Bonus, error) {
			given, err := ParseDate(rec.DateGiven)
			if err != nil {
				return payroll.Bonus{}, fmt.Errorf("date_given: %w", err)
			}
			return payroll.Bonus{Amount: rec.Amount, Reason: rec.Reason, DateGiven: given}, nil
		})
	if err != nil {
		return loadPlan{}, err
	}

	plan.penalties, err = planDependents(KindPenalty, "penalties", doc.Penalties, known, &plan.skipped,
		func(rec PenaltyRecord) string { return rec.EmployeeName },
		func(rec PenaltyRecord) (payroll.Penalty, error) {
			given, err := ParseDate(rec.DateGiven)
			if err != nil {
				return payroll.Penalty{}, fmt.Errorf("date_given: %w", err)
			}
			return payroll.Penalty{Amount: rec.Amount, Reason: rec.Reason, DateGiven: given}, nil
		})
	if err != nil {
		return loadPlan{}, err
	}

	plan.salaries, err = planDependents(KindSalary, "salaries", doc.Salaries, known, &plan.skipped,
		func(rec SalaryRecord) string { return rec.EmployeeName },
		func(rec SalaryRecord) (payroll.Salary, error) {
			generated, err := ParseDate(rec.GeneratedAt)
			if err != nil {
				return payroll.Salary{}, fmt.Errorf("generated_at: %w", err)
			}
			return payroll.Salary{
				Month:         rec.Month,
				BaseAmount:    rec.BaseAmount,
				BonusAmount:   rec.BonusAmount,
				PenaltyAmount: rec.PenaltyAmount,
				TotalAmount:   payroll.ComputeTotal(rec.BaseAmount, rec.BonusAmount, rec.PenaltyAmount),
				GeneratedAt:   generated,
			}, nil
		})
	if err != nil {
		return loadPlan{}, err
	}

	return plan, nil
}

func planDependents[R, T any](
	kind string,
	field string,
	records []R,
	known map[string]struct{},
	skipped *[]SkippedRecord,
	employeeName func(R) string,
	build func(R) (T, error),
) ([]pending[T], error) {
	items := make([]pending[T], 0, len(records))
	for i, rec := range records {
		name := employeeName(rec)
		if _, ok := known[name]; !ok {
			*skipped = append(*skipped, SkippedRecord{Kind: kind, Index: i, EmployeeName: name})
			continue
		}
		row, err := build(rec)
		if err != nil {
			return nil, fmt.Errorf("%s[%d].%w", field, i, err)
		}
		items = append(items, pending[T]{employeeName: name, row: row})
	}
	return items, nil
}

// link sets each row's employee ID from the name -> ID map built while
// inserting employees. prepare already dropped unknown names.
func link[T any](items []pending[T], ids map[string]uint, set func(row *T, employeeID uint)) []T {
	rows := make([]T, 0, len(items))
	for _, item := range items {
		row := item.row
		set(&row, ids[item.employeeName])
		rows = append(rows, row)
	}
	return rows
}
