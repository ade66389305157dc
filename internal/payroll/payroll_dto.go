package payroll

type TotalQuery struct {
	Base    *float64 `form:"base" binding:"required"`
	Bonus   float64  `form:"bonus"`
	Penalty float64  `form:"penalty"`
}

type TotalResponse struct {
	Base    float64 `json:"base"`
	Bonus   float64 `json:"bonus"`
	Penalty float64 `json:"penalty"`
	Total   float64 `json:"total"`
}

type ResetSchemaRequest struct {
	Confirm *bool `json:"confirm" binding:"required"`
}
