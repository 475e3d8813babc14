package payrollqueryerrors

import (
	"net/http"

	"school-payroll/internal/shared/apperror"
)

var (
	ErrPayslipNotAvailable = apperror.New(
		"PAYSLIP_NOT_AVAILABLE",
		"payslips are only issued for paid salary periods",
		http.StatusConflict,
	)
	ErrPayslipRender = apperror.New(
		apperror.CodeInternalError,
		"payslip could not be generated",
		http.StatusInternalServerError,
	)
)
