package payroll

// ComputeTotal returns base + bonus - penalty. Negative totals are allowed
// and no rounding is applied.
func ComputeTotal(base, bonus, penalty float64) float64 {
	return base + bonus - penalty
}
