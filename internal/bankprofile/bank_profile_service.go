package bankprofile

import (
	"context"
	"strings"
	"time"

	bankprofileerrors "school-payroll/internal/bankprofile/errors"
	"school-payroll/internal/shared/apperror"
	"school-payroll/internal/shared/contextutil"
	"school-payroll/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=bank_profile_service.go -destination=mock/bank_profile_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, staffID string, req UpsertBankProfileRequest) (BankProfileResponse, error)
	GetOwn(ctx context.Context, staffID string) (BankProfileResponse, error)
	GetMasked(ctx context.Context, staffID string) (BankProfileResponse, error)
	Exists(ctx context.Context, staffID string) (bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("bankprofile.service"),
	}
}

func (s *service) Upsert(
	ctx context.Context,
	staffID string,
	req UpsertBankProfileRequest,
) (BankProfileResponse, error) {
	staffUUID, err := uuid.Parse(staffID)
	if err != nil {
		return BankProfileResponse{}, bankprofileerrors.ErrInvalidStaffID
	}

	profile := &BankProfile{
		ID:                uuid.New(),
		StaffID:           staffUUID,
		BankName:          strings.TrimSpace(req.BankName),
		Branch:            strings.TrimSpace(req.Branch),
		AccountNumber:     strings.TrimSpace(req.AccountNumber),
		AccountHolderName: strings.TrimSpace(req.AccountHolderName),
		PassbookImageRef:  req.PassbookImageRef,
	}
	if err := validateProfile(profile); err != nil {
		return BankProfileResponse{}, err
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return BankProfileResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("bank profile saved",
		zap.String("staff_id", staffID),
	)

	return mapToResponse(*profile, false), nil
}

func (s *service) GetOwn(ctx context.Context, staffID string) (BankProfileResponse, error) {
	profile, err := s.find(ctx, staffID)
	if err != nil {
		return BankProfileResponse{}, err
	}
	return mapToResponse(*profile, false), nil
}

func (s *service) GetMasked(ctx context.Context, staffID string) (BankProfileResponse, error) {
	profile, err := s.find(ctx, staffID)
	if err != nil {
		return BankProfileResponse{}, err
	}
	return mapToResponse(*profile, true), nil
}

func (s *service) Exists(ctx context.Context, staffID string) (bool, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return false, bankprofileerrors.ErrInvalidStaffID
	}

	var exists bool
	err := dberr.RetryRead(ctx, func(ctx context.Context) error {
		var err error
		exists, err = s.repo.ExistsByStaffID(ctx, staffID)
		return err
	})
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return exists, nil
}

func (s *service) find(ctx context.Context, staffID string) (*BankProfile, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return nil, bankprofileerrors.ErrInvalidStaffID
	}

	var profile *BankProfile
	err := dberr.RetryRead(ctx, func(ctx context.Context) error {
		var err error
		profile, err = s.repo.FindByStaffID(ctx, staffID)
		return err
	})
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return profile, nil
}

func validateProfile(p *BankProfile) error {
	switch {
	case p.BankName == "":
		return apperror.RequiredField("bank_name")
	case p.Branch == "":
		return apperror.RequiredField("branch")
	case p.AccountNumber == "":
		return apperror.RequiredField("account_number")
	case p.AccountHolderName == "":
		return apperror.RequiredField("account_holder_name")
	}
	for _, r := range p.AccountNumber {
		if (r < '0' || r > '9') && r != '-' && r != ' ' {
			return apperror.InvalidField("account_number")
		}
	}
	return nil
}

func mapToResponse(p BankProfile, masked bool) BankProfileResponse {
	account := p.AccountNumber
	if masked {
		account = MaskAccountNumber(account)
	}
	return BankProfileResponse{
		StaffID:           p.StaffID.String(),
		BankName:          p.BankName,
		Branch:            p.Branch,
		AccountNumber:     account,
		AccountHolderName: p.AccountHolderName,
		PassbookImageRef:  p.PassbookImageRef,
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
