package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fitportal/fitportal/internal/domain"
)

type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	now := time.Now().UTC()
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO accounts (id, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return &domain.ErrAccountExists{Email: account.Email}
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (r *accountRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var account domain.Account
	var firstName, lastName sql.NullString
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&firstName,
		&lastName,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrAccountNotFound{Message: "account not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if firstName.Valid {
		account.FirstName = &firstName.String
	}
	if lastName.Valid {
		account.LastName = &lastName.String
	}

	return &account, nil
}
