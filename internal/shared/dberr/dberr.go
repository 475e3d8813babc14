// Package dberr maps storage failures onto apperror categories and retries
// idempotent reads once when the failure looks transient.
package dberr

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
	"time"

	"school-payroll/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgAdminShutdown        = "57P01"
)

// ReadRetryDelay is the pause before the single retry of a failed read.
var ReadRetryDelay = 50 * time.Millisecond

// Map converts a repository error into an AppError. notFound is returned for
// gorm.ErrRecordNotFound; unknown errors pass through untouched.
func Map(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable, pgUniqueViolation:
			return apperror.ErrConflict.WithCause(err)
		}
	}

	if IsTransient(err) {
		return apperror.ErrServiceUnavailable.WithCause(err)
	}

	return err
}

// IsUniqueViolation reports a duplicate key on the named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return false
}

// IsTransient reports failures where the statement never reached a
// consistent outcome: lost connections, admin shutdown, dial errors.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgAdminShutdown || strings.HasPrefix(pgErr.Code, "08")
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// RetryRead runs fn and, if it fails transiently, runs it exactly once more.
// Only use it for reads: writes are never retried here.
func RetryRead(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := ReadRetryDelay
	if delay <= 0 {
		delay = time.Millisecond
	}
	backoff := retry.WithMaxRetries(1, retry.NewConstant(delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if IsTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}
