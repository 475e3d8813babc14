package payrollquery

import (
	"school-payroll/internal/salaryperiod"
)

// AdminListFilter narrows the admin listing; zero fields are ignored.
type AdminListFilter struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"omitempty,min=2000,max=2100"`
}

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPage         = 10000
	MaxPageSize     = 200
)

type AdminListQuery struct {
	AdminListFilter
	Page     int `form:"page" binding:"omitempty,min=1,max=10000"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// normalize fills defaults and clamps to the bounds the binding tags enforce.
func (q AdminListQuery) normalize() AdminListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// BankView always carries a masked account number.
type BankView struct {
	BankName          string  `json:"bank_name"`
	Branch            string  `json:"branch"`
	AccountNumber     string  `json:"account_number"`
	AccountHolderName string  `json:"account_holder_name"`
	PassbookImageRef  *string `json:"passbook_image_ref,omitempty"`
}

type AdminPeriodView struct {
	salaryperiod.SalaryPeriodResponse
	StaffName  string    `json:"staff_name"`
	StaffEmail string    `json:"staff_email"`
	Bank       *BankView `json:"bank"`
}

type StaffTotals struct {
	TotalPaid        string `json:"total_paid"`
	TotalEPFEmployee string `json:"total_epf_employee"`
	TotalBonus       string `json:"total_bonus"`
}

type StaffPayrollView struct {
	StaffID  string                              `json:"staff_id"`
	FullName string                              `json:"full_name"`
	Email    string                              `json:"email"`
	Bank     *BankView                           `json:"bank"`
	Periods  []salaryperiod.SalaryPeriodResponse `json:"periods"`
	Totals   StaffTotals                         `json:"totals"`
}
