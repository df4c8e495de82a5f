package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"aidanwoods.dev/go-paseto"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

const (
	adminTokenTTL    = 24 * time.Hour
	customerTokenTTL = 7 * 24 * time.Hour

	roleAdmin    = "admin"
	roleCustomer = "customer"
)

type AuthService struct {
	accountRepo  domain.AccountRepository
	customerRepo domain.CustomerRepository
	logger       logger.Logger
	privateKey   paseto.V4AsymmetricSecretKey
	publicKey    paseto.V4AsymmetricPublicKey
	// adminPasswordHash is the bcrypt hash the dashboard password is
	// checked against.
	adminPasswordHash string
}

type AuthServiceConfig struct {
	AccountRepository  domain.AccountRepository
	CustomerRepository domain.CustomerRepository
	PrivateKey         []byte
	PublicKey          []byte
	AdminPasswordHash  string
	Logger             logger.Logger
}

func NewAuthService(cfg AuthServiceConfig) (*AuthService, error) {
	privateKey, err := paseto.NewV4AsymmetricSecretKeyFromBytes(cfg.PrivateKey)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.WithField("error", err.Error()).Error("Error creating PASETO private key")
		}
		return nil, err
	}

	publicKey, err := paseto.NewV4AsymmetricPublicKeyFromBytes(cfg.PublicKey)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.WithField("error", err.Error()).Error("Error creating PASETO public key")
		}
		return nil, err
	}

	return &AuthService{
		accountRepo:       cfg.AccountRepository,
		customerRepo:      cfg.CustomerRepository,
		logger:            cfg.Logger,
		privateKey:        privateKey,
		publicKey:         publicKey,
		adminPasswordHash: cfg.AdminPasswordHash,
	}, nil
}

// AdminLogin checks the dashboard password against the configured bcrypt
// hash and returns a signed admin token. bcrypt's comparison is constant
// time, so the check does not leak how much of the password matched.
func (s *AuthService) AdminLogin(ctx context.Context, password string) (string, time.Time, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Admin login attempt with wrong password")
		return "", time.Time{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(adminTokenTTL)
	signed := s.signToken(expiresAt, map[string]string{"role": roleAdmin})

	s.logger.Info("Admin logged in")
	return signed, expiresAt, nil
}

// VerifyAdminToken validates a token and checks that it carries the admin
// role.
func (s *AuthService) VerifyAdminToken(token string) error {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())

	verified, err := parser.ParseV4Public(s.publicKey, token, nil)
	if err != nil {
		return ErrInvalidToken
	}

	role, err := verified.GetString("role")
	if err != nil || role != roleAdmin {
		return ErrInvalidToken
	}
	return nil
}

// Register creates a customer account, seeds the matching customer profile
// and returns a session token.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.accountRepo.CreateAccount(ctx, account); err != nil {
		if _, ok := err.(*domain.ErrAccountExists); ok {
			return nil, err
		}
		s.logger.WithField("email", req.Email).Error(fmt.Sprintf("Failed to create account: %v", err))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// The account and the customer profile share the email key. Seeding the
	// profile here means uploads and measurements find an existing row.
	if err := s.customerRepo.UpsertCustomer(ctx, &domain.Customer{
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}); err != nil {
		s.logger.WithField("email", account.Email).Warn(fmt.Sprintf("Failed to seed customer profile: %v", err))
	}

	s.logger.WithField("email", account.Email).Info("Account registered")
	return s.authResponse(account), nil
}

// Login authenticates a customer account and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := err.(*domain.ErrAccountNotFound); ok {
			// The same error as a wrong password, so login cannot be used
			// to enumerate which emails have accounts.
			return nil, ErrInvalidCredentials
		}
		s.logger.WithField("email", req.Email).Error(fmt.Sprintf("Failed to get account: %v", err))
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(account), nil
}

func (s *AuthService) authResponse(account *domain.Account) *domain.AuthResponse {
	expiresAt := time.Now().Add(customerTokenTTL)
	signed := s.signToken(expiresAt, map[string]string{
		"role":       roleCustomer,
		"account_id": account.ID,
		"email":      account.Email,
	})
	return &domain.AuthResponse{
		Account:   account,
		Token:     signed,
		ExpiresAt: expiresAt,
	}
}

func (s *AuthService) signToken(expiresAt time.Time, claims map[string]string) string {
	token := paseto.NewToken()
	token.SetIssuedAt(time.Now())
	token.SetNotBefore(time.Now())
	token.SetExpiration(expiresAt)
	for k, v := range claims {
		token.SetString(k, v)
	}

	signed := token.V4Sign(s.privateKey, nil)
	if signed == "" {
		s.logger.Error("Failed to sign authentication token")
	}
	return signed
}
