package bankprofileerrors

import (
	"net/http"

	"school-payroll/internal/shared/apperror"
)

var (
	ErrBankProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"bank profile not found",
		http.StatusNotFound,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid staff id",
		http.StatusBadRequest,
	).WithDetails(map[string]string{"field": "staff_id"})
)
