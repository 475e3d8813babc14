package salaryperiod

import (
	"context"
	"database/sql"

	"school-payroll/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// FindByKeyForUpdate returns gorm.ErrRecordNotFound when the key is absent.
	FindByKeyForUpdate(ctx context.Context, key PeriodKey) (*SalaryPeriod, error)
	// CreateIfAbsent reports false when another writer inserted the key first.
	CreateIfAbsent(ctx context.Context, period *SalaryPeriod) (bool, error)
	Update(ctx context.Context, period *SalaryPeriod) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx runs every statement of the returned repository on tx. Setting
// Context makes Session clone the Statement, so rebinding ConnPool never
// touches r.db.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) FindByKeyForUpdate(ctx context.Context, key PeriodKey) (*SalaryPeriod, error) {
	var period SalaryPeriod
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(
			scope.Staff("", key.StaffID.String()),
			scope.Period("", key.Month, key.Year),
		).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *repository) CreateIfAbsent(ctx context.Context, period *SalaryPeriod) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "staff_id"},
				{Name: "year"},
				{Name: "month"},
			},
			DoNothing: true,
		}).
		Create(period)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) Update(ctx context.Context, period *SalaryPeriod) error {
	return r.db.WithContext(ctx).
		Model(period).
		Select(
			"base_salary",
			"bonus",
			"leave_deduction",
			"epf_employee",
			"epf_employer",
			"etf",
			"total",
			"status",
			"paid_at",
			"updated_at",
		).
		Updates(period).Error
}
