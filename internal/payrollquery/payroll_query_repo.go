package payrollquery

import (
	"context"

	"school-payroll/internal/salaryperiod"
	"school-payroll/internal/shared/scope"

	"gorm.io/gorm"
)

const periodTable = "salary_periods"

// PeriodRow is a salary period joined with its staff member and bank
// profile. Joined columns are nil when the other side is missing.
type PeriodRow struct {
	salaryperiod.SalaryPeriod

	StaffName         *string
	StaffEmail        *string
	BankName          *string
	Branch            *string
	AccountNumber     *string
	AccountHolderName *string
	PassbookImageRef  *string
}

type Repository interface {
	// ListPeriods returns one page of matching rows and the total match count.
	ListPeriods(ctx context.Context, q AdminListQuery) ([]PeriodRow, int64, error)
	ListByStaff(ctx context.Context, staffID string) ([]PeriodRow, error)
	FindByKey(ctx context.Context, key salaryperiod.PeriodKey) (*PeriodRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(periodTable).
		Select(`salary_periods.*,
			staff.full_name AS staff_name,
			staff.email AS staff_email,
			bank_profiles.bank_name AS bank_name,
			bank_profiles.branch AS branch,
			bank_profiles.account_number AS account_number,
			bank_profiles.account_holder_name AS account_holder_name,
			bank_profiles.passbook_image_ref AS passbook_image_ref`).
		Joins("LEFT JOIN staff ON staff.id = salary_periods.staff_id").
		Joins("LEFT JOIN bank_profiles ON bank_profiles.staff_id = salary_periods.staff_id")
}

// Scopes run at execution time, so ordering that must follow a scope's
// ordering has to be a scope too.
func byStaffName(db *gorm.DB) *gorm.DB {
	return db.Order("staff.full_name ASC NULLS LAST")
}

func (r *repository) ListPeriods(ctx context.Context, q AdminListQuery) ([]PeriodRow, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table(periodTable).
		Scopes(scope.Period(periodTable, q.Month, q.Year)).
		Count(&total).Error
	if err != nil || total == 0 {
		return nil, total, err
	}

	var rows []PeriodRow
	err = r.joined(ctx).
		Scopes(
			scope.Period(periodTable, q.Month, q.Year),
			scope.NewestFirst(periodTable),
			byStaffName,
			scope.Page(q.Page, q.PageSize),
		).
		Scan(&rows).Error
	return rows, total, err
}

func (r *repository) ListByStaff(ctx context.Context, staffID string) ([]PeriodRow, error) {
	var rows []PeriodRow
	err := r.joined(ctx).
		Scopes(
			scope.Staff(periodTable, staffID),
			scope.NewestFirst(periodTable),
		).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByKey(ctx context.Context, key salaryperiod.PeriodKey) (*PeriodRow, error) {
	var rows []PeriodRow
	err := r.joined(ctx).
		Scopes(
			scope.Staff(periodTable, key.StaffID.String()),
			scope.Period(periodTable, key.Month, key.Year),
		).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}
