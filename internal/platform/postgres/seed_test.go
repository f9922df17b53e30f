package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineTools(t *testing.T) {
	baseline := BaselineTools()
	require.Len(t, baseline, 3)
	assert.Equal(t, "hammer", baseline[0].Name)
	assert.Equal(t, "drill", baseline[1].Name)
	assert.Equal(t, "toolbelt", baseline[2].Name)

	// Callers get their own copy
	baseline[0].Name = "mutated"
	assert.Equal(t, "hammer", BaselineTools()[0].Name)
}

func TestSeedTools_TruncatesAndInsertsBaselineInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	returning := []string{"id", "created_at", "updated_at"}

	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE TABLE tools RESTART IDENTITY").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO tools").
		WillReturnRows(sqlmock.NewRows(returning).AddRow(int64(1), now, now))
	mock.ExpectQuery("INSERT INTO tools").
		WillReturnRows(sqlmock.NewRows(returning).AddRow(int64(2), now, now))
	mock.ExpectQuery("INSERT INTO tools").
		WillReturnRows(sqlmock.NewRows(returning).AddRow(int64(3), now, now))
	mock.ExpectCommit()

	err = SeedTools(context.Background(), db)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedTools_TruncateFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE TABLE tools RESTART IDENTITY").
		WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = SeedTools(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to truncate tools table")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedTools_InsertFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE TABLE tools RESTART IDENTITY").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO tools").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = SeedTools(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to seed tool "hammer"`)

	assert.NoError(t, mock.ExpectationsWereMet())
}
