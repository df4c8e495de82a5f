package domain

import (
	"context"
	"time"
)

// Account is a customer login account. The profile fields captured at
// registration seed the Customer record with the same email.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    *string   `json:"firstName,omitempty"`
	LastName     *string   `json:"lastName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterRequest is the payload for creating a customer account.
type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// Validate normalizes the request.
func (r *RegisterRequest) Validate() error {
	email, err := SanitizeEmail(r.Email)
	if err != nil {
		return err
	}
	r.Email = email

	if len(r.Password) < 6 {
		return NewValidationError("password must be at least 6 characters long")
	}
	return nil
}

// LoginRequest is the payload for authenticating a customer account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate normalizes the request.
func (r *LoginRequest) Validate() error {
	email, err := SanitizeEmail(r.Email)
	if err != nil {
		return err
	}
	r.Email = email

	if r.Password == "" {
		return NewValidationError("password is required")
	}
	return nil
}

//go:generate mockgen -destination=mocks/mock_account.go -package=mocks github.com/fitportal/fitportal/internal/domain AccountRepository

// AccountRepository is the persistence interface for customer accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *Account) error
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
}

// AuthResponse carries the authenticated account and its session token.
type AuthResponse struct {
	Account *Account `json:"account"`
	Token   string   `json:"token"`
	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthService authenticates the admin dashboard and customer accounts.
type AuthService interface {
	// AdminLogin checks the dashboard password and returns an admin token.
	AdminLogin(ctx context.Context, password string) (string, time.Time, error)
	// VerifyAdminToken validates an admin token and returns an error when
	// it is missing the admin role or expired.
	VerifyAdminToken(token string) error
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
}
