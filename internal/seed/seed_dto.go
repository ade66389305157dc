package seed

// Document is the JSON seed file. Dependents point at employees by name.
type Document struct {
	Employees []EmployeeRecord `json:"employees"`
	WorkLogs  []WorkLogRecord  `json:"work_logs"`
	Bonuses   []BonusRecord    `json:"bonuses"`
	Penalties []PenaltyRecord  `json:"penalties"`
	Salaries  []SalaryRecord   `json:"salaries"`
}

type EmployeeRecord struct {
	Name       string   `json:"name"`
	Position   *string  `json:"position"`
	BaseSalary *float64 `json:"base_salary"`
	HiredDate  *string  `json:"hired_date"`
	IsActive   *bool    `json:"is_active"`
}

type WorkLogRecord struct {
	EmployeeName string  `json:"employee_name"`
	WorkDate     string  `json:"work_date"`
	HoursWorked  float64 `json:"hours_worked"`
}

type BonusRecord struct {
	EmployeeName string  `json:"employee_name"`
	Amount       float64 `json:"amount"`
	Reason       string  `json:"reason"`
	DateGiven    string  `json:"date_given"`
}

type PenaltyRecord struct {
	EmployeeName string  `json:"employee_name"`
	Amount       float64 `json:"amount"`
	Reason       string  `json:"reason"`
	DateGiven    string  `json:"date_given"`
}

type SalaryRecord struct {
	EmployeeName  string  `json:"employee_name"`
	Month         string  `json:"month"`
	BaseAmount    float64 `json:"base_amount"`
	BonusAmount   float64 `json:"bonus_amount"`
	PenaltyAmount float64 `json:"penalty_amount"`
	GeneratedAt   string  `json:"generated_at"`
}

const (
	KindWorkLog = "work_log"
	KindBonus   = "bonus"
	KindPenalty = "penalty"
	KindSalary  = "salary"
)

// SkippedRecord is a dependent whose employee_name matched no employee in
// the same document.
type SkippedRecord struct {
	Kind         string `json:"kind"`
	Index        int    `json:"index"`
	EmployeeName string `json:"employee_name"`
}

type LoadReport struct {
	RunID     string          `json:"run_id"`
	Employees int             `json:"employees"`
	WorkLogs  int             `json:"work_logs"`
	Bonuses   int             `json:"bonuses"`
	Penalties int             `json:"penalties"`
	Salaries  int             `json:"salaries"`
	Skipped   []SkippedRecord `json:"skipped"`
}
