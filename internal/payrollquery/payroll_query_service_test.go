package payrollquery_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"school-payroll/internal/bankprofile"
	bankprofileerrors "school-payroll/internal/bankprofile/errors"
	"school-payroll/internal/payrollquery"
	payrollqueryerrors "school-payroll/internal/payrollquery/errors"
	payrollqueryMock "school-payroll/internal/payrollquery/mock"
	"school-payroll/internal/salaryperiod"
	salaryperioderrors "school-payroll/internal/salaryperiod/errors"
	"school-payroll/internal/staff"
	stafferrors "school-payroll/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type stubStaff struct{}

func (stubStaff) GetDisplayInfo(context.Context, string) (staff.DisplayInfo, error) {
	return staff.DisplayInfo{}, stafferrors.ErrStaffNotFound
}

type stubBank struct{}

func (stubBank) GetMasked(context.Context, string) (bankprofile.BankProfileResponse, error) {
	return bankprofile.BankProfileResponse{}, bankprofileerrors.ErrBankProfileNotFound
}

type fakeRepo struct {
	byStaff  []payrollquery.PeriodRow
	byKey    *payrollquery.PeriodRow
	findErr  error
	listErrs []error
}

func (f *fakeRepo) ListPeriods(context.Context, payrollquery.AdminListQuery) ([]payrollquery.PeriodRow, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) ListByStaff(context.Context, string) ([]payrollquery.PeriodRow, error) {
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		return nil, err
	}
	return f.byStaff, nil
}

func (f *fakeRepo) FindByKey(context.Context, salaryperiod.PeriodKey) (*payrollquery.PeriodRow, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byKey, nil
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func period(staffID uuid.UUID, year, month int, base, bonus, epf, total string, paid bool) payrollquery.PeriodRow {
	created := time.Date(year, time.Month(month), 1, 8, 0, 0, 0, time.UTC)
	p := salaryperiod.SalaryPeriod{
		ID:             uuid.New(),
		StaffID:        staffID,
		Year:           year,
		Month:          month,
		BaseSalary:     money(base),
		Bonus:          money(bonus),
		LeaveDeduction: decimal.Zero,
		EPFEmployee:    money(epf),
		EPFEmployer:    money(base).Mul(decimal.NewFromFloat(0.12)).Round(2),
		ETF:            money(base).Mul(decimal.NewFromFloat(0.03)).Round(2),
		Total:          money(total),
		Status:         salaryperiod.StatusPending,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
	if paid {
		paidAt := created.AddDate(0, 0, 27)
		p.Status = salaryperiod.StatusPaid
		p.PaidAt = &paidAt
	}
	return payrollquery.PeriodRow{SalaryPeriod: p}
}

func strPtr(s string) *string { return &s }

func TestPayrollQueryService_ListForStaff(t *testing.T) {
	staffID := uuid.New()

	t.Run("newest first with totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffDir := payrollqueryMock.NewMockStaffDirectory(ctrl)
		bank := payrollqueryMock.NewMockBankProfiles(ctrl)

		repo := &fakeRepo{byStaff: []payrollquery.PeriodRow{
			period(staffID, 2025, 5, "100000", "0", "8000", "92000", true),
			period(staffID, 2025, 4, "100000", "5000", "8000", "96000", false),
			period(staffID, 2024, 12, "90000", "2500", "7200", "85300", true),
		}}

		staffDir.EXPECT().GetDisplayInfo(gomock.Any(), staffID.String()).
			Return(staff.DisplayInfo{StaffID: staffID.String(), FullName: "Amara Silva", Email: "amara@school.lk"}, nil)
		bank.EXPECT().GetMasked(gomock.Any(), staffID.String()).
			Return(bankprofile.BankProfileResponse{BankName: "BOC", Branch: "Kandy", AccountNumber: "****5678"}, nil)

		svc := payrollquery.NewService(repo, staffDir, bank, nil)
		view, err := svc.ListForStaff(context.Background(), staffID.String())

		require.NoError(t, err)
		assert.Equal(t, "Amara Silva", view.FullName)
		require.NotNil(t, view.Bank)
		assert.Equal(t, "****5678", view.Bank.AccountNumber)

		require.Len(t, view.Periods, 3)
		assert.Equal(t, 5, view.Periods[0].Month)
		assert.Equal(t, 4, view.Periods[1].Month)
		assert.Equal(t, 2024, view.Periods[2].Year)

		assert.Equal(t, "177300.00", view.Totals.TotalPaid)
		assert.Equal(t, "23200.00", view.Totals.TotalEPFEmployee)
		assert.Equal(t, "7500.00", view.Totals.TotalBonus)
	})

	t.Run("no periods, no profile", func(t *testing.T) {
		svc := payrollquery.NewService(&fakeRepo{}, stubStaff{}, stubBank{}, nil)

		view, err := svc.ListForStaff(context.Background(), staffID.String())

		require.NoError(t, err)
		assert.Empty(t, view.Periods)
		assert.NotNil(t, view.Periods)
		assert.Nil(t, view.Bank)
		assert.Equal(t, "0.00", view.Totals.TotalPaid)
	})

	t.Run("invalid staff id", func(t *testing.T) {
		svc := payrollquery.NewService(&fakeRepo{}, stubStaff{}, stubBank{}, nil)

		_, err := svc.ListForStaff(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, stafferrors.ErrInvalidStaffID)
	})

	t.Run("unexpected repo error", func(t *testing.T) {
		repo := &fakeRepo{listErrs: []error{errors.New("boom")}}
		svc := payrollquery.NewService(repo, stubStaff{}, stubBank{}, nil)

		_, err := svc.ListForStaff(context.Background(), staffID.String())

		assert.Error(t, err)
	})
}

func TestPayrollQueryService_GetPeriod(t *testing.T) {
	key := salaryperiod.PeriodKey{StaffID: uuid.New(), Month: 5, Year: 2025}

	t.Run("masks account number", func(t *testing.T) {
		row := period(key.StaffID, 2025, 5, "100000", "0", "8000", "92000", false)
		row.StaffName = strPtr("Amara Silva")
		row.BankName = strPtr("BOC")
		row.AccountNumber = strPtr("0012345678")

		svc := payrollquery.NewService(&fakeRepo{byKey: &row}, stubStaff{}, stubBank{}, nil)
		view, err := svc.GetPeriod(context.Background(), key)

		require.NoError(t, err)
		assert.Equal(t, "Amara Silva", view.StaffName)
		require.NotNil(t, view.Bank)
		assert.Equal(t, "****5678", view.Bank.AccountNumber)
		assert.Equal(t, "92000.00", view.Total)
	})

	t.Run("not found", func(t *testing.T) {
		svc := payrollquery.NewService(&fakeRepo{findErr: gorm.ErrRecordNotFound}, stubStaff{}, stubBank{}, nil)

		_, err := svc.GetPeriod(context.Background(), key)

		assert.ErrorIs(t, err, salaryperioderrors.ErrPeriodNotFound)
	})
}

func TestPayrollQueryService_Payslip(t *testing.T) {
	key := salaryperiod.PeriodKey{StaffID: uuid.New(), Month: 5, Year: 2025}
	renderer := payrollquery.NewPayslipRenderer("Hillside College", "LKR")

	t.Run("paid period renders pdf", func(t *testing.T) {
		row := period(key.StaffID, 2025, 5, "100000", "0", "8000", "92000", true)
		row.StaffName = strPtr("Amara Silva")
		row.AccountNumber = strPtr("0012345678")

		svc := payrollquery.NewService(&fakeRepo{byKey: &row}, stubStaff{}, stubBank{}, renderer)
		pdf, err := svc.Payslip(context.Background(), key)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	})

	t.Run("pending period has no payslip", func(t *testing.T) {
		row := period(key.StaffID, 2025, 5, "100000", "0", "8000", "92000", false)

		svc := payrollquery.NewService(&fakeRepo{byKey: &row}, stubStaff{}, stubBank{}, renderer)
		_, err := svc.Payslip(context.Background(), key)

		assert.ErrorIs(t, err, payrollqueryerrors.ErrPayslipNotAvailable)
	})

	t.Run("missing period", func(t *testing.T) {
		svc := payrollquery.NewService(&fakeRepo{findErr: gorm.ErrRecordNotFound}, stubStaff{}, stubBank{}, renderer)

		_, err := svc.Payslip(context.Background(), key)

		assert.ErrorIs(t, err, salaryperioderrors.ErrPeriodNotFound)
	})
}
