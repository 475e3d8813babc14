package salaryperiod_test

import (
	"context"
	"testing"

	"school-payroll/internal/salaryperiod"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const lockQuery = `SELECT \* FROM "salary_periods" WHERE staff_id = \$1 AND month = \$2 AND year = \$3 ORDER BY "salary_periods"\."id" LIMIT .* FOR UPDATE`

func setupRepo(t *testing.T) (salaryperiod.Repository, *gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return salaryperiod.NewRepository(db), db, mock
}

func TestRepository_FindByKeyForUpdate(t *testing.T) {
	key := salaryperiod.PeriodKey{StaffID: uuid.New(), Month: 5, Year: 2025}

	t.Run("runs inside the given transaction", func(t *testing.T) {
		repo, db, mock := setupRepo(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WillReturnRows(sqlmock.NewRows([]string{"id", "staff_id", "year", "month", "base_salary", "status"}).
				AddRow(uuid.New().String(), key.StaffID.String(), 2025, 5, "100000.00", "pending"))
		mock.ExpectRollback()

		tx, err := sqlDB.BeginTx(context.Background(), nil)
		require.NoError(t, err)

		period, err := repo.WithTx(tx).FindByKeyForUpdate(context.Background(), key)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		assert.Equal(t, key, period.Key())
		assert.Equal(t, "100000.00", period.BaseSalary.StringFixed(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent key", func(t *testing.T) {
		repo, _, mock := setupRepo(t)
		mock.ExpectQuery(lockQuery).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByKeyForUpdate(context.Background(), key)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_WithTxLeavesRootUntouched(t *testing.T) {
	key := salaryperiod.PeriodKey{StaffID: uuid.New(), Month: 5, Year: 2025}

	t.Run("root repository uses the pool after rollback", func(t *testing.T) {
		repo, db, mock := setupRepo(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()
		mock.ExpectQuery(lockQuery).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		tx, err := sqlDB.BeginTx(context.Background(), nil)
		require.NoError(t, err)
		_, err = repo.WithTx(tx).FindByKeyForUpdate(context.Background(), key)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		require.NoError(t, tx.Rollback())

		_, err = repo.FindByKeyForUpdate(context.Background(), key)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Same(t, sqlDB, db.Statement.ConnPool)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("each transaction keeps its own connection", func(t *testing.T) {
		repo, db, mock := setupRepo(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectBegin()
		mock.ExpectRollback()
		mock.ExpectQuery(lockQuery).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		first, err := sqlDB.BeginTx(context.Background(), nil)
		require.NoError(t, err)
		second, err := sqlDB.BeginTx(context.Background(), nil)
		require.NoError(t, err)

		firstRepo := repo.WithTx(first)
		_ = repo.WithTx(second)
		require.NoError(t, second.Rollback())

		_, err = firstRepo.FindByKeyForUpdate(context.Background(), key)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		require.NoError(t, first.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
