package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	DeleteAll(ctx context.Context) error
	CreateEmployee(ctx context.Context, employee *Employee) error
	CreateWorkLogs(ctx context.Context, logs []WorkLog) error
	CreateBonuses(ctx context.Context, bonuses []Bonus) error
	CreatePenalties(ctx context.Context, penalties []Penalty) error
	CreateSalaries(ctx context.Context, salaries []Salary) error
	Count(ctx context.Context) (Counts, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose statements run on tx. gorm sees the
// *sql.Tx as its connection pool, the same way gorm.DB.Begin wires it.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	if tx == nil {
		return r
	}

	db := r.db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	db.Statement.ConnPool = tx

	return &repository{
		db: db,
		tx: tx,
	}
}

// DeleteAll removes every payroll row, dependents before employees.
func (r *repository) DeleteAll(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	for _, model := range []any{&Salary{}, &Penalty{}, &Bonus{}, &WorkLog{}, &Employee{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return mapRepositoryError(err)
		}
	}
	return nil
}

func (r *repository) CreateEmployee(ctx context.Context, employee *Employee) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(employee).Error)
}

func (r *repository) CreateWorkLogs(ctx context.Context, logs []WorkLog) error {
	if len(logs) == 0 {
		return nil
	}
	return mapRepositoryError(r.db.WithContext(ctx).Omit("Employee").Create(&logs).Error)
}

func (r *repository) CreateBonuses(ctx context.Context, bonuses []Bonus) error {
	if len(bonuses) == 0 {
		return nil
	}
	return mapRepositoryError(r.db.WithContext(ctx).Omit("Employee").Create(&bonuses).Error)
}

func (r *repository) CreatePenalties(ctx context.Context, penalties []Penalty) error {
	if len(penalties) == 0 {
		return nil
	}
	return mapRepositoryError(r.db.WithContext(ctx).Omit("Employee").Create(&penalties).Error)
}

func (r *repository) CreateSalaries(ctx context.Context, salaries []Salary) error {
	if len(salaries) == 0 {
		return nil
	}
	return mapRepositoryError(r.db.WithContext(ctx).Omit("Employee").Create(&salaries).Error)
}

func (r *repository) Count(ctx context.Context) (Counts, error) {
	var counts Counts
	db := r.db.WithContext(ctx)

	targets := []struct {
		model any
		dest  *int64
	}{
		{&Employee{}, &counts.Employees},
		{&WorkLog{}, &counts.WorkLogs},
		{&Bonus{}, &counts.Bonuses},
		{&Penalty{}, &counts.Penalties},
		{&Salary{}, &counts.Salaries},
	}

	for _, t := range targets {
		if err := db.Model(t.model).Count(t.dest).Error; err != nil {
			return Counts{}, mapRepositoryError(err)
		}
	}

	return counts, nil
}
