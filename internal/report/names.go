package report

import (
	"fmt"
	"io"

	"go-payroll/internal/seed"
	seederrors "go-payroll/internal/seed/errors"
)

// EmployeeNames returns the employee names of a seed file in array order.
// It reads only the file and never touches the store. The employees array
// must be present; the other arrays are not read.
func EmployeeNames(path string) ([]string, error) {
	employees, err := seed.ReadEmployees(path)
	if err != nil {
		return nil, err
	}
	return namesOf(employees)
}

func DecodeEmployeeNames(r io.Reader) ([]string, error) {
	employees, err := seed.DecodeEmployees(r)
	if err != nil {
		return nil, err
	}
	return namesOf(employees)
}

func namesOf(employees []seed.EmployeeRecord) ([]string, error) {
	names := make([]string, 0, len(employees))
	for i, emp := range employees {
		if emp.Name == "" {
			return nil, fmt.Errorf("employees[%d]: %w", i, seederrors.ErrMissingEmployeeName)
		}
		names = append(names, emp.Name)
	}
	return names, nil
}

func PrintNames(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
