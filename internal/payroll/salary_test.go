package payroll_test

import (
	"testing"

	"go-payroll/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name                 string
		base, bonus, penalty float64
		want                 float64
	}{
		{"regular month", 1000, 200, 50, 1150},
		{"no adjustments", 52000, 0, 0, 52000},
		{"penalty larger than pay", 100, 0, 250, -150},
		{"negative inputs", -10, -20, -5, -25},
		{"fractional amounts", 1000.5, 0.25, 0.75, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payroll.ComputeTotal(tt.base, tt.bonus, tt.penalty))
		})
	}
}
