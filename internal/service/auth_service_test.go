package service

import (
	"context"
	"testing"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/internal/domain/mocks"
)

func authFixture(t *testing.T, adminPassword string) (*AuthService, *mocks.MockAccountRepository, *mocks.MockCustomerRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	privateKey := paseto.NewV4AsymmetricSecretKey()
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)

	service, err := NewAuthService(AuthServiceConfig{
		AccountRepository:  accountRepo,
		CustomerRepository: customerRepo,
		PrivateKey:         privateKey.ExportBytes(),
		PublicKey:          privateKey.Public().ExportBytes(),
		AdminPasswordHash:  string(hash),
		Logger:             newTestLogger(ctrl),
	})
	require.NoError(t, err)
	return service, accountRepo, customerRepo
}

func TestAuthService_AdminLogin(t *testing.T) {
	ctx := context.Background()
	service, _, _ := authFixture(t, "dashboard-secret")

	t.Run("correct password issues an admin token", func(t *testing.T) {
		token, expiresAt, err := service.AdminLogin(ctx, "dashboard-secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(adminTokenTTL), expiresAt, time.Minute)

		assert.NoError(t, service.VerifyAdminToken(token))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		token, _, err := service.AdminLogin(ctx, "guess")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}

func TestAuthService_VerifyAdminToken(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, _ := authFixture(t, "dashboard-secret")

	t.Run("garbage token is rejected", func(t *testing.T) {
		assert.ErrorIs(t, service.VerifyAdminToken("not-a-token"), ErrInvalidToken)
	})

	t.Run("customer token lacks the admin role", func(t *testing.T) {
		accountRepo.EXPECT().GetAccountByEmail(ctx, "jo@example.com").Return(&domain.Account{
			ID:           "acc-1",
			Email:        "jo@example.com",
			PasswordHash: mustHash(t, "password1"),
		}, nil)

		resp, err := service.Login(ctx, &domain.LoginRequest{Email: "jo@example.com", Password: "password1"})
		require.NoError(t, err)

		assert.ErrorIs(t, service.VerifyAdminToken(resp.Token), ErrInvalidToken)
	})

	t.Run("token signed by another key is rejected", func(t *testing.T) {
		other, _, _ := authFixture(t, "dashboard-secret")
		token, _, err := other.AdminLogin(ctx, "dashboard-secret")
		require.NoError(t, err)

		assert.ErrorIs(t, service.VerifyAdminToken(token), ErrInvalidToken)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	firstName := "Jo"

	t.Run("creates the account and seeds the customer profile", func(t *testing.T) {
		service, accountRepo, customerRepo := authFixture(t, "dashboard-secret")

		accountRepo.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, account *domain.Account) error {
				account.ID = "acc-1"
				assert.NotEqual(t, "password1", account.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("password1")))
				return nil
			})
		customerRepo.EXPECT().UpsertCustomer(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, customer *domain.Customer) error {
				assert.Equal(t, "jo@example.com", customer.Email)
				require.NotNil(t, customer.FirstName)
				assert.Equal(t, "Jo", *customer.FirstName)
				return nil
			})

		resp, err := service.Register(ctx, &domain.RegisterRequest{
			Email:     "Jo@Example.com",
			Password:  "password1",
			FirstName: &firstName,
		})
		require.NoError(t, err)
		assert.Equal(t, "acc-1", resp.Account.ID)
		assert.NotEmpty(t, resp.Token)
		assert.True(t, resp.ExpiresAt.After(time.Now()))
	})

	t.Run("duplicate email passes through typed", func(t *testing.T) {
		service, accountRepo, _ := authFixture(t, "dashboard-secret")

		accountRepo.EXPECT().CreateAccount(ctx, gomock.Any()).
			Return(&domain.ErrAccountExists{Email: "jo@example.com"})

		resp, err := service.Register(ctx, &domain.RegisterRequest{
			Email:    "jo@example.com",
			Password: "password1",
		})
		assert.Nil(t, resp)
		assert.IsType(t, &domain.ErrAccountExists{}, err)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		service, _, _ := authFixture(t, "dashboard-secret")

		resp, err := service.Register(ctx, &domain.RegisterRequest{
			Email:    "jo@example.com",
			Password: "123",
		})
		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a token", func(t *testing.T) {
		service, accountRepo, _ := authFixture(t, "dashboard-secret")

		accountRepo.EXPECT().GetAccountByEmail(ctx, "jo@example.com").Return(&domain.Account{
			ID:           "acc-1",
			Email:        "jo@example.com",
			PasswordHash: mustHash(t, "password1"),
		}, nil)

		resp, err := service.Login(ctx, &domain.LoginRequest{Email: "Jo@Example.com", Password: "password1"})
		require.NoError(t, err)
		assert.Equal(t, "acc-1", resp.Account.ID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		service, accountRepo, _ := authFixture(t, "dashboard-secret")

		accountRepo.EXPECT().GetAccountByEmail(ctx, "jo@example.com").Return(&domain.Account{
			Email:        "jo@example.com",
			PasswordHash: mustHash(t, "password1"),
		}, nil)
		accountRepo.EXPECT().GetAccountByEmail(ctx, "nobody@example.com").
			Return(nil, &domain.ErrAccountNotFound{})

		_, wrongPassword := service.Login(ctx, &domain.LoginRequest{Email: "jo@example.com", Password: "guess"})
		_, unknownEmail := service.Login(ctx, &domain.LoginRequest{Email: "nobody@example.com", Password: "guess"})

		assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	})
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}
