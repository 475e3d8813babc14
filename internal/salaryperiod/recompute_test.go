package salaryperiod

import (
	"testing"

	"school-payroll/internal/statutory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecompute(t *testing.T) {
	calc, err := statutory.NewCalculator(statutory.DefaultRates())
	require.NoError(t, err)

	tests := []struct {
		name                string
		base, bonus, leave  string
		epf, epfEr, etf, to string
	}{
		{"reference salary", "100000", "0", "0", "8000.00", "12000.00", "3000.00", "92000.00"},
		{"with adjustment", "100000", "5000", "1000", "8000.00", "12000.00", "3000.00", "96000.00"},
		{"fractional base", "12345.67", "0", "0", "987.65", "1481.48", "370.37", "11358.02"},
		{"zero base", "0", "250", "0", "0.00", "0.00", "0.00", "250.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &SalaryPeriod{
				BaseSalary:     decimal.RequireFromString(tt.base),
				Bonus:          decimal.RequireFromString(tt.bonus),
				LeaveDeduction: decimal.RequireFromString(tt.leave),
			}

			recompute(p, calc)

			assert.Equal(t, tt.epf, p.EPFEmployee.StringFixed(2))
			assert.Equal(t, tt.epfEr, p.EPFEmployer.StringFixed(2))
			assert.Equal(t, tt.etf, p.ETF.StringFixed(2))
			assert.Equal(t, tt.to, p.Total.StringFixed(2))
		})
	}
}

func TestParseMoney(t *testing.T) {
	v := decimal.RequireFromString("1500.5")
	got, err := parseMoney("bonus", &v)
	assert.NoError(t, err)
	assert.Equal(t, "1500.50", got.StringFixed(2))

	trailing := decimal.RequireFromString("10.500")
	_, err = parseMoney("bonus", &trailing)
	assert.NoError(t, err)

	tooBig := decimal.RequireFromString("1000000000000")
	_, err = parseMoney("bonus", &tooBig)
	assert.Error(t, err)
}

func TestParsePeriodKey(t *testing.T) {
	staffID := "3f1c0c9e-6f0a-4b7e-9d55-2a7a1c0f4b11"

	key, err := ParsePeriodKey(staffID, "2025", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, key.Month)
	assert.Equal(t, 2025, key.Year)
	assert.Equal(t, staffID+"/2025-05", key.String())

	_, err = ParsePeriodKey(staffID, "twenty", "5")
	assert.Error(t, err)
	_, err = ParsePeriodKey(staffID, "2025", "may")
	assert.Error(t, err)
	_, err = ParsePeriodKey("nope", "2025", "5")
	assert.Error(t, err)
}
