package salaryperiod

import "github.com/shopspring/decimal"

type AssignSalaryRequest struct {
	StaffID    string           `json:"staff_id" binding:"required,uuid"`
	Month      int              `json:"month" binding:"required,min=1,max=12"`
	Year       int              `json:"year" binding:"required,min=2000,max=2100"`
	BaseSalary *decimal.Decimal `json:"base_salary" binding:"required"`
}

// AdjustSalaryRequest replaces both figures; it never adds to the stored ones.
type AdjustSalaryRequest struct {
	Bonus          *decimal.Decimal `json:"bonus" binding:"required"`
	LeaveDeduction *decimal.Decimal `json:"leave_deduction" binding:"required"`
}

// Money fields are fixed two-place strings, e.g. "92000.00".
type SalaryPeriodResponse struct {
	ID             string   `json:"id"`
	StaffID        string   `json:"staff_id"`
	Month          int      `json:"month"`
	Year           int      `json:"year"`
	BaseSalary     string   `json:"base_salary"`
	Bonus          string   `json:"bonus"`
	LeaveDeduction string   `json:"leave_deduction"`
	EPFEmployee    string   `json:"epf_employee"`
	EPFEmployer    string   `json:"epf_employer"`
	ETF            string   `json:"etf"`
	Total          string   `json:"total"`
	Status         string   `json:"status"`
	PaidAt         *string  `json:"paid_at"`
	NegativeNet    bool     `json:"negative_net"`
	Warnings       []string `json:"warnings,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}
