package bankprofile_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"school-payroll/internal/bankprofile"
	bankprofileerrors "school-payroll/internal/bankprofile/errors"
	bankprofileMock "school-payroll/internal/bankprofile/mock"
	"school-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (bankprofile.Service, *bankprofileMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := bankprofileMock.NewMockRepository(ctrl)
	return bankprofile.NewService(repo), repo
}

func TestBankProfileService_Upsert(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()

	validReq := bankprofile.UpsertBankProfileRequest{
		BankName:          " People's Bank ",
		Branch:            "Kandy",
		AccountNumber:     "0012345678",
		AccountHolderName: "N. Perera",
	}

	t.Run("success returns unmasked profile", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().
			Upsert(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *bankprofile.BankProfile) error {
				assert.Equal(t, staffID, p.StaffID)
				assert.Equal(t, "People's Bank", p.BankName)
				assert.NotEqual(t, uuid.Nil, p.ID)
				return nil
			})

		resp, err := svc.Upsert(ctx, staffID.String(), validReq)

		assert.NoError(t, err)
		assert.Equal(t, "0012345678", resp.AccountNumber)
		assert.Equal(t, staffID.String(), resp.StaffID)
	})

	t.Run("blank field after trim", func(t *testing.T) {
		svc, _ := setupServiceTest(t)
		req := validReq
		req.Branch = "   "

		_, err := svc.Upsert(ctx, staffID.String(), req)

		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		assert.Contains(t, err.Error(), "branch")
	})

	t.Run("non numeric account", func(t *testing.T) {
		svc, _ := setupServiceTest(t)
		req := validReq
		req.AccountNumber = "12AB5678"

		_, err := svc.Upsert(ctx, staffID.String(), req)

		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("invalid staff id", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.Upsert(ctx, "not-a-uuid", validReq)

		assert.ErrorIs(t, err, bankprofileerrors.ErrInvalidStaffID)
	})

	t.Run("repo error", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := svc.Upsert(ctx, staffID.String(), validReq)

		assert.Error(t, err)
	})
}

func TestBankProfileService_Get(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	profile := &bankprofile.BankProfile{
		ID:                uuid.New(),
		StaffID:           staffID,
		BankName:          "BOC",
		Branch:            "Galle",
		AccountNumber:     "7788990011",
		AccountHolderName: "K. Silva",
	}

	t.Run("own profile unmasked", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindByStaffID(gomock.Any(), staffID.String()).Return(profile, nil)

		resp, err := svc.GetOwn(ctx, staffID.String())

		assert.NoError(t, err)
		assert.Equal(t, "7788990011", resp.AccountNumber)
	})

	t.Run("admin view masked", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindByStaffID(gomock.Any(), staffID.String()).Return(profile, nil)

		resp, err := svc.GetMasked(ctx, staffID.String())

		assert.NoError(t, err)
		assert.Equal(t, "****0011", resp.AccountNumber)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindByStaffID(gomock.Any(), staffID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetOwn(ctx, staffID.String())

		assert.ErrorIs(t, err, bankprofileerrors.ErrBankProfileNotFound)
	})

	t.Run("transient read retried once", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		gomock.InOrder(
			repo.EXPECT().FindByStaffID(gomock.Any(), staffID.String()).Return(nil, driver.ErrBadConn),
			repo.EXPECT().FindByStaffID(gomock.Any(), staffID.String()).Return(profile, nil),
		)

		resp, err := svc.GetMasked(ctx, staffID.String())

		assert.NoError(t, err)
		assert.Equal(t, "BOC", resp.BankName)
	})
}

func TestBankProfileService_Exists(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New().String()

	svc, repo := setupServiceTest(t)
	repo.EXPECT().ExistsByStaffID(gomock.Any(), staffID).Return(true, nil)

	exists, err := svc.Exists(ctx, staffID)
	assert.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.Exists(ctx, "bad")
	assert.ErrorIs(t, err, bankprofileerrors.ErrInvalidStaffID)
}
