package counter_test

import (
	"context"
	"regexp"
	"testing"

	"freshbit/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_NextValue(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO org_counters")).
		WithArgs("org-1", counter.TypeDriveCode).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(7))

	repo := counter.NewRepository(gormDB)
	got, err := repo.NextValue(context.Background(), "org-1", counter.TypeDriveCode)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
