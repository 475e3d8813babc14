package salaryperioderrors

import (
	"net/http"

	"school-payroll/internal/shared/apperror"
)

const (
	CodePeriodNotFound    = "PERIOD_NOT_FOUND"
	CodePeriodLocked      = "PERIOD_LOCKED"
	CodeNegativeNetSalary = "NEGATIVE_NET_SALARY"
)

var (
	ErrPeriodNotFound = apperror.New(
		CodePeriodNotFound,
		"salary period not found",
		http.StatusNotFound,
	)
	ErrPeriodLocked = apperror.New(
		CodePeriodLocked,
		"salary period is already paid and can no longer be changed",
		http.StatusConflict,
	)
	ErrNegativeNetSalary = apperror.New(
		CodeNegativeNetSalary,
		"net salary would be negative",
		http.StatusUnprocessableEntity,
	)
)
