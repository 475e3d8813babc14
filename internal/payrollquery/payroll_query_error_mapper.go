package payrollquery

import (
	salaryperioderrors "school-payroll/internal/salaryperiod/errors"
	"school-payroll/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	return dberr.Map(err, salaryperioderrors.ErrPeriodNotFound)
}
