package payrollquery

import (
	"context"
	"errors"

	"school-payroll/internal/bankprofile"
	bankprofileerrors "school-payroll/internal/bankprofile/errors"
	payrollqueryerrors "school-payroll/internal/payrollquery/errors"
	"school-payroll/internal/salaryperiod"
	"school-payroll/internal/shared/contextutil"
	"school-payroll/internal/shared/dberr"
	"school-payroll/internal/staff"
	stafferrors "school-payroll/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StaffDirectory is satisfied by staff.Service.
type StaffDirectory interface {
	GetDisplayInfo(ctx context.Context, staffID string) (staff.DisplayInfo, error)
}

// BankProfiles is satisfied by bankprofile.Service.
type BankProfiles interface {
	GetMasked(ctx context.Context, staffID string) (bankprofile.BankProfileResponse, error)
}

//go:generate mockgen -source=payroll_query_service.go -destination=mock/payroll_query_service_mock.go -package=mock
type Service interface {
	ListForAdmin(ctx context.Context, q AdminListQuery) ([]AdminPeriodView, int64, error)
	ListForStaff(ctx context.Context, staffID string) (StaffPayrollView, error)
	GetPeriod(ctx context.Context, key salaryperiod.PeriodKey) (AdminPeriodView, error)
	Payslip(ctx context.Context, key salaryperiod.PeriodKey) ([]byte, error)
}

type service struct {
	repo     Repository
	staff    StaffDirectory
	bank     BankProfiles
	renderer *PayslipRenderer
	logger   *zap.Logger
}

func NewService(repo Repository, staffDir StaffDirectory, bank BankProfiles, renderer *PayslipRenderer) Service {
	return &service{
		repo:     repo,
		staff:    staffDir,
		bank:     bank,
		renderer: renderer,
		logger:   zap.L().Named("payrollquery.service"),
	}
}

func (s *service) ListForAdmin(ctx context.Context, q AdminListQuery) ([]AdminPeriodView, int64, error) {
	q = q.normalize()

	var (
		rows  []PeriodRow
		total int64
	)
	err := dberr.RetryRead(ctx, func(ctx context.Context) error {
		var err error
		rows, total, err = s.repo.ListPeriods(ctx, q)
		return err
	})
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	views := make([]AdminPeriodView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toAdminView(row))
	}
	return views, total, nil
}

func (s *service) GetPeriod(ctx context.Context, key salaryperiod.PeriodKey) (AdminPeriodView, error) {
	row, err := s.findRow(ctx, key)
	if err != nil {
		return AdminPeriodView{}, err
	}
	return toAdminView(*row), nil
}

// ListForStaff returns the staff member's own periods newest first with
// totals summed over the returned rows.
func (s *service) ListForStaff(ctx context.Context, staffID string) (StaffPayrollView, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return StaffPayrollView{}, stafferrors.ErrInvalidStaffID
	}
	log := contextutil.GetLogger(ctx, s.logger)

	var rows []PeriodRow
	err := dberr.RetryRead(ctx, func(ctx context.Context) error {
		var err error
		rows, err = s.repo.ListByStaff(ctx, staffID)
		return err
	})
	if err != nil {
		return StaffPayrollView{}, mapRepositoryError(err)
	}

	view := StaffPayrollView{
		StaffID: staffID,
		Periods: make([]salaryperiod.SalaryPeriodResponse, 0, len(rows)),
	}

	info, err := s.staff.GetDisplayInfo(ctx, staffID)
	switch {
	case err == nil:
		view.FullName = info.FullName
		view.Email = info.Email
	case errors.Is(err, stafferrors.ErrStaffNotFound):
	default:
		log.Warn("staff display info unavailable", zap.Error(err))
	}

	profile, err := s.bank.GetMasked(ctx, staffID)
	switch {
	case err == nil:
		view.Bank = &BankView{
			BankName:          profile.BankName,
			Branch:            profile.Branch,
			AccountNumber:     profile.AccountNumber,
			AccountHolderName: profile.AccountHolderName,
			PassbookImageRef:  profile.PassbookImageRef,
		}
	case errors.Is(err, bankprofileerrors.ErrBankProfileNotFound):
	default:
		log.Warn("bank profile unavailable", zap.Error(err))
	}

	totalPaid, totalEPF, totalBonus := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range rows {
		p := row.SalaryPeriod
		if p.IsPaid() {
			totalPaid = totalPaid.Add(p.Total)
		}
		totalEPF = totalEPF.Add(p.EPFEmployee)
		totalBonus = totalBonus.Add(p.Bonus)
		view.Periods = append(view.Periods, salaryperiod.ToResponse(p))
	}
	view.Totals = StaffTotals{
		TotalPaid:        totalPaid.StringFixed(2),
		TotalEPFEmployee: totalEPF.StringFixed(2),
		TotalBonus:       totalBonus.StringFixed(2),
	}

	return view, nil
}

// Payslip renders the PDF for a paid period.
func (s *service) Payslip(ctx context.Context, key salaryperiod.PeriodKey) ([]byte, error) {
	row, err := s.findRow(ctx, key)
	if err != nil {
		return nil, err
	}
	if !row.IsPaid() {
		return nil, payrollqueryerrors.ErrPayslipNotAvailable
	}

	pdf, err := s.renderer.Render(toAdminView(*row))
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("payslip render failed",
			zap.Stringer("period", key),
			zap.Error(err),
		)
		return nil, payrollqueryerrors.ErrPayslipRender
	}
	return pdf, nil
}

func (s *service) findRow(ctx context.Context, key salaryperiod.PeriodKey) (*PeriodRow, error) {
	var row *PeriodRow
	err := dberr.RetryRead(ctx, func(ctx context.Context) error {
		var err error
		row, err = s.repo.FindByKey(ctx, key)
		return err
	})
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return row, nil
}

func toAdminView(row PeriodRow) AdminPeriodView {
	view := AdminPeriodView{
		SalaryPeriodResponse: salaryperiod.ToResponse(row.SalaryPeriod),
		StaffName:            deref(row.StaffName),
		StaffEmail:           deref(row.StaffEmail),
	}
	if row.AccountNumber != nil {
		view.Bank = &BankView{
			BankName:          deref(row.BankName),
			Branch:            deref(row.Branch),
			AccountNumber:     bankprofile.MaskAccountNumber(*row.AccountNumber),
			AccountHolderName: deref(row.AccountHolderName),
			PassbookImageRef:  row.PassbookImageRef,
		}
	}
	return view
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
