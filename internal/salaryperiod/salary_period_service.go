package salaryperiod

import (
	"context"
	"database/sql"
	"errors"
	"time"

	salaryperioderrors "school-payroll/internal/salaryperiod/errors"
	"school-payroll/internal/shared/audit"
	"school-payroll/internal/shared/contextutil"
	"school-payroll/internal/statutory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NegativeNetPolicy decides what happens when a mutation would leave total < 0.
type NegativeNetPolicy string

const (
	NegativeNetReject NegativeNetPolicy = "reject"
	NegativeNetFlag   NegativeNetPolicy = "flag"
)

const AuditActionPeriodPaid = "SALARY_PERIOD_PAID"

// BankProfileChecker is satisfied by bankprofile.Service.
type BankProfileChecker interface {
	Exists(ctx context.Context, staffID string) (bool, error)
}

//go:generate mockgen -source=salary_period_service.go -destination=mock/salary_period_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, req AssignSalaryRequest) (SalaryPeriodResponse, error)
	Adjust(ctx context.Context, key PeriodKey, req AdjustSalaryRequest) (SalaryPeriodResponse, error)
	MarkPaid(ctx context.Context, key PeriodKey) (SalaryPeriodResponse, error)
}

type Option func(*service)

func WithNegativeNetPolicy(policy NegativeNetPolicy) Option {
	return func(s *service) {
		s.negativeNet = policy
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	db          *sql.DB
	repo        Repository
	calc        *statutory.Calculator
	bank        BankProfileChecker
	audit       audit.Logger
	negativeNet NegativeNetPolicy
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	calc *statutory.Calculator,
	bank BankProfileChecker,
	auditLogger audit.Logger,
	opts ...Option,
) Service {
	s := &service{
		db:          db,
		repo:        repo,
		calc:        calc,
		bank:        bank,
		audit:       auditLogger,
		negativeNet: NegativeNetReject,
		now:         time.Now,
		logger:      zap.L().Named("salaryperiod.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Assign creates the period for the key or overwrites the base salary of a
// pending one. Bonus and leave deduction are kept on overwrite.
func (s *service) Assign(ctx context.Context, req AssignSalaryRequest) (SalaryPeriodResponse, error) {
	key, err := NewPeriodKey(req.StaffID, req.Month, req.Year)
	if err != nil {
		return SalaryPeriodResponse{}, err
	}
	base, err := parseMoney("base_salary", req.BaseSalary)
	if err != nil {
		return SalaryPeriodResponse{}, err
	}

	log := contextutil.GetLogger(ctx, s.logger).With(zap.Stringer("period", key))
	s.warnIfNoBankProfile(ctx, log, key)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.FindByKeyForUpdate(ctx, key)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		now := s.now().UTC()
		candidate := &SalaryPeriod{
			ID:             uuid.New(),
			StaffID:        key.StaffID,
			Month:          key.Month,
			Year:           key.Year,
			BaseSalary:     base,
			Bonus:          decimal.Zero,
			LeaveDeduction: decimal.Zero,
			Status:         StatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		recompute(candidate, s.calc)
		warnings, err := s.checkNegativeNet(log, candidate)
		if err != nil {
			return SalaryPeriodResponse{}, err
		}

		created, err := qtx.CreateIfAbsent(ctx, candidate)
		if err != nil {
			return SalaryPeriodResponse{}, mapRepositoryError(err)
		}
		if created {
			if err := tx.Commit(); err != nil {
				return SalaryPeriodResponse{}, mapRepositoryError(err)
			}
			log.Info("salary period created", zap.String("base_salary", base.StringFixed(2)))
			return mapToResponse(*candidate, warnings), nil
		}

		// lost the insert race; continue with the winner's row
		period, err = qtx.FindByKeyForUpdate(ctx, key)
		if err != nil {
			return SalaryPeriodResponse{}, mapRepositoryError(err)
		}
	case err != nil:
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}

	if period.IsPaid() {
		return SalaryPeriodResponse{}, salaryperioderrors.ErrPeriodLocked
	}

	period.BaseSalary = base
	recompute(period, s.calc)
	warnings, err := s.checkNegativeNet(log, period)
	if err != nil {
		return SalaryPeriodResponse{}, err
	}
	period.UpdatedAt = s.now().UTC()

	if err := qtx.Update(ctx, period); err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}

	log.Info("salary period reassigned", zap.String("base_salary", base.StringFixed(2)))
	return mapToResponse(*period, warnings), nil
}

// Adjust replaces bonus and leave deduction on a pending period.
func (s *service) Adjust(ctx context.Context, key PeriodKey, req AdjustSalaryRequest) (SalaryPeriodResponse, error) {
	bonus, err := parseMoney("bonus", req.Bonus)
	if err != nil {
		return SalaryPeriodResponse{}, err
	}
	leave, err := parseMoney("leave_deduction", req.LeaveDeduction)
	if err != nil {
		return SalaryPeriodResponse{}, err
	}

	log := contextutil.GetLogger(ctx, s.logger).With(zap.Stringer("period", key))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.FindByKeyForUpdate(ctx, key)
	if err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}
	if period.IsPaid() {
		return SalaryPeriodResponse{}, salaryperioderrors.ErrPeriodLocked
	}

	period.Bonus = bonus
	period.LeaveDeduction = leave
	recompute(period, s.calc)
	warnings, err := s.checkNegativeNet(log, period)
	if err != nil {
		return SalaryPeriodResponse{}, err
	}
	period.UpdatedAt = s.now().UTC()

	if err := qtx.Update(ctx, period); err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}

	log.Info("salary period adjusted",
		zap.String("bonus", bonus.StringFixed(2)),
		zap.String("leave_deduction", leave.StringFixed(2)),
		zap.String("total", period.Total.StringFixed(2)),
	)
	return mapToResponse(*period, warnings), nil
}

// MarkPaid moves a pending period to paid. Paying an already paid period
// returns it unchanged.
func (s *service) MarkPaid(ctx context.Context, key PeriodKey) (SalaryPeriodResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.FindByKeyForUpdate(ctx, key)
	if err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}
	if period.IsPaid() {
		return mapToResponse(*period, nil), nil
	}

	now := s.now().UTC()
	period.Status = StatusPaid
	period.PaidAt = &now
	period.UpdatedAt = now

	if err := qtx.Update(ctx, period); err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return SalaryPeriodResponse{}, mapRepositoryError(err)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  AuditActionPeriodPaid,
		Message: "salary period marked as paid",
		Meta: map[string]any{
			"period_id": period.ID.String(),
			"staff_id":  key.StaffID.String(),
			"month":     key.Month,
			"year":      key.Year,
			"total":     period.Total.StringFixed(2),
		},
	})

	return mapToResponse(*period, nil), nil
}

func (s *service) warnIfNoBankProfile(ctx context.Context, log *zap.Logger, key PeriodKey) {
	if s.bank == nil {
		return
	}
	exists, err := s.bank.Exists(ctx, key.StaffID.String())
	if err != nil {
		log.Warn("bank profile lookup failed", zap.Error(err))
		return
	}
	if !exists {
		log.Warn("assigning salary to staff member without a bank profile")
	}
}

func (s *service) checkNegativeNet(log *zap.Logger, p *SalaryPeriod) ([]string, error) {
	if !p.Total.IsNegative() {
		return nil, nil
	}
	if s.negativeNet == NegativeNetFlag {
		log.Warn("salary period has negative net pay", zap.String("total", p.Total.StringFixed(2)))
		return []string{salaryperioderrors.CodeNegativeNetSalary}, nil
	}
	return nil, salaryperioderrors.ErrNegativeNetSalary.WithDetails(map[string]string{
		"total": p.Total.StringFixed(2),
	})
}

func mapToResponse(p SalaryPeriod, warnings []string) SalaryPeriodResponse {
	var paidAt *string
	if p.PaidAt != nil {
		v := p.PaidAt.UTC().Format(time.RFC3339)
		paidAt = &v
	}

	return SalaryPeriodResponse{
		ID:             p.ID.String(),
		StaffID:        p.StaffID.String(),
		Month:          p.Month,
		Year:           p.Year,
		BaseSalary:     p.BaseSalary.StringFixed(2),
		Bonus:          p.Bonus.StringFixed(2),
		LeaveDeduction: p.LeaveDeduction.StringFixed(2),
		EPFEmployee:    p.EPFEmployee.StringFixed(2),
		EPFEmployer:    p.EPFEmployer.StringFixed(2),
		ETF:            p.ETF.StringFixed(2),
		Total:          p.Total.StringFixed(2),
		Status:         p.Status,
		PaidAt:         paidAt,
		NegativeNet:    p.Total.IsNegative(),
		Warnings:       warnings,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToResponse renders a stored period for read-side callers.
func ToResponse(p SalaryPeriod) SalaryPeriodResponse {
	return mapToResponse(p, nil)
}
