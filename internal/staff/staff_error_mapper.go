package staff

import (
	stafferrors "school-payroll/internal/staff/errors"
	"school-payroll/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	return dberr.Map(err, stafferrors.ErrStaffNotFound)
}
