package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookhub/internal/config"
	"bookhub/internal/microservices/http-api/dto"
	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/middleware/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{BcryptCost: bcrypt.MinCost, TokenTTL: time.Hour}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockSessionIssuer)
	svc := NewAuthService(users, issuer, testConfig())
	ctx := context.Background()

	users.On("FindByEmail", ctx, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = "user-1"
		}).
		Return(nil)
	issuer.On("IssueSession", ctx, "user-1").Return("0123456789abcdef", nil)

	result, err := svc.Register(ctx, dto.RegisterRequest{UserName: "ann", Email: "a@x.com", Password: "Abc12345!"})
	require.NoError(t, err)

	assert.Equal(t, "ann", result.User.Username)
	assert.NotEqual(t, "Abc12345!", result.User.Password)
	assert.NoError(t, auth.VerifyPassword(result.User.Password, "Abc12345!"))

	claims, err := auth.VerifyToken(result.Token, "0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	users.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestRegister_EmailInUse(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockSessionIssuer)
	svc := NewAuthService(users, issuer, testConfig())
	ctx := context.Background()

	users.On("FindByEmail", ctx, "a@x.com").Return(&models.User{ID: "user-1"}, nil)

	_, err := svc.Register(ctx, dto.RegisterRequest{UserName: "ann", Email: "a@x.com", Password: "Abc12345!"})
	assert.ErrorIs(t, err, ErrEmailInUse)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	issuer.AssertNotCalled(t, "IssueSession", mock.Anything, mock.Anything)
}

func TestRegister_LosesUniqueIndexRace(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, new(MockSessionIssuer), testConfig())
	ctx := context.Background()

	users.On("FindByEmail", ctx, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Register(ctx, dto.RegisterRequest{UserName: "ann", Email: "a@x.com", Password: "Abc12345!"})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestRegister_StoreFailure(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, new(MockSessionIssuer), testConfig())
	ctx := context.Background()

	users.On("FindByEmail", ctx, "a@x.com").Return(nil, errors.New("connection refused"))

	_, err := svc.Register(ctx, dto.RegisterRequest{UserName: "ann", Email: "a@x.com", Password: "Abc12345!"})
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockSessionIssuer)
	svc := NewAuthService(users, issuer, testConfig())
	ctx := context.Background()

	user := &models.User{ID: "user-1", Email: "a@x.com", Password: hashed(t, "Abc12345!")}
	users.On("FindByEmail", ctx, "a@x.com").Return(user, nil)
	issuer.On("IssueSession", ctx, "user-1").Return("fedcba9876543210", nil)

	result, err := svc.Login(ctx, dto.LoginRequest{Email: "a@x.com", Password: "Abc12345!"})
	require.NoError(t, err)
	assert.Equal(t, user, result.User)

	userID, err := auth.DecodeUnverified(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(users *MockUserRepository)
	}{
		{
			name: "unknown email",
			setup: func(users *MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(users *MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "a@x.com").
					Return(&models.User{ID: "user-1", Password: hashed(t, "Other123!")}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			issuer := new(MockSessionIssuer)
			tt.setup(users)
			svc := NewAuthService(users, issuer, testConfig())

			_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "Abc12345!"})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			issuer.AssertNotCalled(t, "IssueSession", mock.Anything, mock.Anything)
		})
	}
}

func TestLogin_SessionFailure(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockSessionIssuer)
	svc := NewAuthService(users, issuer, testConfig())

	users.On("FindByEmail", mock.Anything, "a@x.com").
		Return(&models.User{ID: "user-1", Password: hashed(t, "Abc12345!")}, nil)
	issuer.On("IssueSession", mock.Anything, "user-1").Return("", persistence("issue session", errors.New("db down")))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "Abc12345!"})
	assert.ErrorIs(t, err, ErrPersistence)
}
