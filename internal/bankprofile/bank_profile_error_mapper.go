package bankprofile

import (
	bankprofileerrors "school-payroll/internal/bankprofile/errors"
	"school-payroll/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	return dberr.Map(err, bankprofileerrors.ErrBankProfileNotFound)
}
