package seed

import (
	"fmt"
	"time"

	seederrors "go-payroll/internal/seed/errors"
)

const DateLayout = "2006-01-02"

// ParseDate accepts only YYYY-MM-DD.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", seederrors.ErrInvalidDateFormat, v)
	}
	return t, nil
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := ParseDate(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
