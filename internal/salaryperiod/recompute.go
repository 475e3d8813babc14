package salaryperiod

import (
	"school-payroll/internal/shared/apperror"
	"school-payroll/internal/statutory"

	"github.com/shopspring/decimal"
)

// maxMoney is the largest value a numeric(14,2) column holds.
var maxMoney = decimal.RequireFromString("999999999999.99")

// recompute is the only place derived amounts are written:
// contributions come from the base salary, and
// total = base + bonus - epf_employee - leave_deduction.
func recompute(p *SalaryPeriod, calc *statutory.Calculator) {
	c := calc.Compute(p.BaseSalary)
	p.EPFEmployee = c.EPFEmployee
	p.EPFEmployer = c.EPFEmployer
	p.ETF = c.ETF
	p.Total = statutory.RoundMoney(
		p.BaseSalary.Add(p.Bonus).Sub(p.EPFEmployee).Sub(p.LeaveDeduction),
	)
}

// parseMoney validates a monetary input: present, non-negative, at most two
// decimal places and within column range.
func parseMoney(field string, v *decimal.Decimal) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, apperror.RequiredField(field)
	}
	d := *v
	if d.IsNegative() {
		return decimal.Zero, apperror.NegativeField(field)
	}
	if !d.Equal(d.Round(statutory.MinorUnitPlaces)) || d.GreaterThan(maxMoney) {
		return decimal.Zero, apperror.InvalidField(field)
	}
	return d.Round(statutory.MinorUnitPlaces), nil
}
