package salaryperiod

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// SalaryPeriod is one staff member's pay for one calendar month.
// (staff_id, month, year) is the natural key.
type SalaryPeriod struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salary_period_key,priority:1"`
	Year    int       `gorm:"not null;uniqueIndex:uq_salary_period_key,priority:2;check:chk_salary_period_year,year BETWEEN 2000 AND 2100"`
	Month   int       `gorm:"not null;uniqueIndex:uq_salary_period_key,priority:3;check:chk_salary_period_month,month BETWEEN 1 AND 12"`

	BaseSalary     decimal.Decimal `gorm:"column:base_salary;type:numeric(14,2);not null"`
	Bonus          decimal.Decimal `gorm:"column:bonus;type:numeric(14,2);not null;default:0"`
	LeaveDeduction decimal.Decimal `gorm:"column:leave_deduction;type:numeric(14,2);not null;default:0"`
	EPFEmployee    decimal.Decimal `gorm:"column:epf_employee;type:numeric(14,2);not null"`
	EPFEmployer    decimal.Decimal `gorm:"column:epf_employer;type:numeric(14,2);not null"`
	ETF            decimal.Decimal `gorm:"column:etf;type:numeric(14,2);not null"`
	Total          decimal.Decimal `gorm:"column:total;type:numeric(14,2);not null"`

	Status    string     `gorm:"type:varchar(10);not null;default:'pending';index"`
	PaidAt    *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryPeriod) TableName() string {
	return "salary_periods"
}

func (p *SalaryPeriod) Key() PeriodKey {
	return PeriodKey{StaffID: p.StaffID, Month: p.Month, Year: p.Year}
}

func (p *SalaryPeriod) IsPaid() bool {
	return p.Status == StatusPaid
}
