package database

import (
	"testing"

	"github.com/fitportal/fitportal/internal/database/schema"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase(t *testing.T) {

	t.Run("creates tables and seeds default charts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		// Setup expectations for table creation
		for range schema.TableDefinitions {
			mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(0, 0))
		}

		// No charts yet, expect the seed inserts
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM size_charts").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		for range DefaultSizeCharts() {
			mock.ExpectExec("INSERT INTO size_charts").
				WillReturnResult(sqlmock.NewResult(1, 1))
		}

		err = InitializeDatabase(db)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips seeding when charts exist", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for range schema.TableDefinitions {
			mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(0, 0))
		}

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM size_charts").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		err = InitializeDatabase(db)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error when table creation fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("").WillReturnError(assert.AnError)

		err = InitializeDatabase(db)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create table")
	})
}

func TestDefaultSizeCharts(t *testing.T) {
	charts := DefaultSizeCharts()
	require.Len(t, charts, 2)

	for _, chart := range charts {
		assert.NoError(t, chart.Validate())
		assert.Equal(t, "Generic", chart.Brand)
		assert.True(t, chart.IsActive)
	}
	assert.Equal(t, "top", charts[0].ProductType)
	assert.Equal(t, "bottom", charts[1].ProductType)
}

func TestCleanDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema.TableNames {
		mock.ExpectExec("DROP TABLE IF EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = CleanDatabase(db)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
