package staff

import (
	"context"

	"school-payroll/internal/shared/dberr"
	stafferrors "school-payroll/internal/staff/errors"

	"github.com/google/uuid"
)

type Service interface {
	GetDisplayInfo(ctx context.Context, staffID string) (DisplayInfo, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetDisplayInfo(ctx context.Context, staffID string) (DisplayInfo, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return DisplayInfo{}, stafferrors.ErrInvalidStaffID
	}

	var member *Staff
	err := dberr.RetryRead(ctx, func(ctx context.Context) error {
		var err error
		member, err = s.repo.FindByID(ctx, staffID)
		return err
	})
	if err != nil {
		return DisplayInfo{}, mapRepositoryError(err)
	}

	return DisplayInfo{
		StaffID:  member.ID.String(),
		FullName: member.FullName,
		Email:    member.Email,
	}, nil
}
