package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/internal/repository/testutil"
)

func TestCreateAccount(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewAccountRepository(db)

	t.Run("creates account", func(t *testing.T) {
		account := &domain.Account{
			Email:        "jane@example.com",
			PasswordHash: "$2a$10$hash",
		}

		mock.ExpectExec(`INSERT INTO accounts`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateAccount(context.Background(), account)
		require.NoError(t, err)
		assert.NotEmpty(t, account.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		account := &domain.Account{
			Email:        "jane@example.com",
			PasswordHash: "$2a$10$hash",
		}

		mock.ExpectExec(`INSERT INTO accounts`).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateAccount(context.Background(), account)
		require.Error(t, err)
		assert.IsType(t, &domain.ErrAccountExists{}, err)
	})
}

func TestGetAccountByEmail(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewAccountRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows([]string{
		"id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at",
	}).AddRow("a1", "jane@example.com", "$2a$10$hash", "Jane", nil, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE email = \$1`).
		WithArgs("jane@example.com").
		WillReturnRows(rows)

	account, err := repo.GetAccountByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", account.Email)
	assert.Equal(t, "Jane", *account.FirstName)
	assert.Nil(t, account.LastName)

	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetAccountByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrAccountNotFound{}, err)
}
