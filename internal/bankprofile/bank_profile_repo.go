package bankprofile

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=bank_profile_repo.go -destination=mock/bank_profile_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, profile *BankProfile) error
	FindByStaffID(ctx context.Context, staffID string) (*BankProfile, error)
	ExistsByStaffID(ctx context.Context, staffID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts the profile or updates the existing row for the same staff
// member in place, keeping its id and created_at.
func (r *repository) Upsert(ctx context.Context, profile *BankProfile) error {
	now := time.Now().UTC()
	profile.UpdatedAt = now
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}

	return r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "staff_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"bank_name",
					"branch",
					"account_number",
					"account_holder_name",
					"passbook_image_ref",
					"updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(profile).Error
}

func (r *repository) FindByStaffID(ctx context.Context, staffID string) (*BankProfile, error) {
	var profile BankProfile
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) ExistsByStaffID(ctx context.Context, staffID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BankProfile{}).
		Where("staff_id = ?", staffID).
		Count(&count).Error
	return count > 0, err
}
