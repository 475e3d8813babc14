// Package statutory derives EPF and ETF contributions from a base salary.
package statutory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of decimal places money is rounded to.
const MinorUnitPlaces = 2

var one = decimal.NewFromInt(1)

// Rates are fractions of base salary, e.g. 0.08 for 8%.
type Rates struct {
	EPFEmployee decimal.Decimal
	EPFEmployer decimal.Decimal
	ETF         decimal.Decimal
}

func DefaultRates() Rates {
	return Rates{
		EPFEmployee: decimal.RequireFromString("0.08"),
		EPFEmployer: decimal.RequireFromString("0.12"),
		ETF:         decimal.RequireFromString("0.03"),
	}
}

func (r Rates) Validate() error {
	for name, rate := range map[string]decimal.Decimal{
		"epf employee": r.EPFEmployee,
		"epf employer": r.EPFEmployer,
		"etf":          r.ETF,
	} {
		if rate.IsNegative() || rate.GreaterThan(one) {
			return fmt.Errorf("%s rate %s must be between 0 and 1", name, rate)
		}
	}
	return nil
}

type Contributions struct {
	EPFEmployee decimal.Decimal
	EPFEmployer decimal.Decimal
	ETF         decimal.Decimal
}

type Calculator struct {
	rates Rates
}

func NewCalculator(rates Rates) (*Calculator, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{rates: rates}, nil
}

func (c *Calculator) Rates() Rates {
	return c.rates
}

// Compute rounds each contribution on its own from the exact product, so the
// three figures never inherit each other's rounding.
func (c *Calculator) Compute(baseSalary decimal.Decimal) Contributions {
	return Contributions{
		EPFEmployee: RoundMoney(baseSalary.Mul(c.rates.EPFEmployee)),
		EPFEmployer: RoundMoney(baseSalary.Mul(c.rates.EPFEmployer)),
		ETF:         RoundMoney(baseSalary.Mul(c.rates.ETF)),
	}
}

// RoundMoney rounds half-up to the minor unit. Inputs here are never
// negative, where decimal's half-away-from-zero equals half-up.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MinorUnitPlaces)
}
