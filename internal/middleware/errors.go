package middleware

import (
	"net/http"

	"school-payroll/internal/shared/apperror"
)

var (
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Token is invalid",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrTooManyRequests = apperror.New(
		apperror.CodeRateLimited,
		"Too many requests, slow down",
		http.StatusTooManyRequests,
	)

	ErrRequestInProgress = apperror.New(
		"REQUEST_IN_PROGRESS",
		"A request with this Idempotency-Key is still being processed",
		http.StatusConflict,
	)
)
