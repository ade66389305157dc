package payroll

import "time"

// Employee owns work logs, bonuses, penalties and salaries through their
// EmployeeID column.
type Employee struct {
	ID         uint       `gorm:"primaryKey"`
	Name       string     `gorm:"type:varchar(255);not null"`
	Position   *string    `gorm:"type:varchar(255)"`
	BaseSalary float64    `gorm:"not null"`
	HiredDate  *time.Time `gorm:"type:date"`
	IsActive   bool       `gorm:"not null"`
}

func (Employee) TableName() string {
	return "employee"
}

type WorkLog struct {
	ID          uint      `gorm:"primaryKey"`
	EmployeeID  uint      `gorm:"not null;index"`
	Employee    *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	WorkDate    time.Time `gorm:"type:date"`
	HoursWorked float64
}

func (WorkLog) TableName() string {
	return "work_log"
}

type Bonus struct {
	ID         uint      `gorm:"primaryKey"`
	EmployeeID uint      `gorm:"not null;index"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Amount     float64
	Reason     string    `gorm:"type:text"`
	DateGiven  time.Time `gorm:"type:date"`
}

func (Bonus) TableName() string {
	return "bonus"
}

type Penalty struct {
	ID         uint      `gorm:"primaryKey"`
	EmployeeID uint      `gorm:"not null;index"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Amount     float64
	Reason     string    `gorm:"type:text"`
	DateGiven  time.Time `gorm:"type:date"`
}

func (Penalty) TableName() string {
	return "penalty"
}

type Salary struct {
	ID         uint      `gorm:"primaryKey"`
	EmployeeID uint      `gorm:"not null;index"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`

	// Periode dalam format YYYY-MM
	Month string `gorm:"type:varchar(7)"`

	BaseAmount    float64
	BonusAmount   float64
	PenaltyAmount float64
	TotalAmount   float64
	GeneratedAt   time.Time `gorm:"type:date"`
}

func (Salary) TableName() string {
	return "salary"
}

// Counts is the number of rows per payroll table.
type Counts struct {
	Employees int64 `json:"employees"`
	WorkLogs  int64 `json:"work_logs"`
	Bonuses   int64 `json:"bonuses"`
	Penalties int64 `json:"penalties"`
	Salaries  int64 `json:"salaries"`
}
