package salaryperiod

import (
	"fmt"
	"strconv"

	"school-payroll/internal/shared/apperror"

	"github.com/google/uuid"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

// PeriodKey identifies a salary period: one staff member, one month.
type PeriodKey struct {
	StaffID uuid.UUID
	Month   int
	Year    int
}

func NewPeriodKey(staffID string, month, year int) (PeriodKey, error) {
	id, err := uuid.Parse(staffID)
	if err != nil {
		return PeriodKey{}, apperror.InvalidField("staff_id")
	}
	if month < 1 || month > 12 {
		return PeriodKey{}, apperror.InvalidField("month")
	}
	if year < MinYear || year > MaxYear {
		return PeriodKey{}, apperror.InvalidField("year")
	}
	return PeriodKey{StaffID: id, Month: month, Year: year}, nil
}

func (k PeriodKey) String() string {
	return fmt.Sprintf("%s/%04d-%02d", k.StaffID, k.Year, k.Month)
}

// ParsePeriodKey builds a key from path parameters.
func ParsePeriodKey(staffID, year, month string) (PeriodKey, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return PeriodKey{}, apperror.InvalidField("year")
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return PeriodKey{}, apperror.InvalidField("month")
	}
	return NewPeriodKey(staffID, m, y)
}
