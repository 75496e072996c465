package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookhub/internal/config"
	"bookhub/internal/microservices/http-api/dto"
	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/microservices/http-api/repository"
	"bookhub/internal/middleware/auth"

	"gorm.io/gorm"
)

// AuthResult is what a successful registration or login yields.
type AuthResult struct {
	Token string
	User  *models.User
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req dto.LoginRequest) (*AuthResult, error)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   SessionIssuer
	bcryptCost int
	tokenTTL   time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionIssuer, cfg *config.Config) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		bcryptCost: cfg.BcryptCost,
		tokenTTL:   cfg.TokenTTL,
	}
}

// Register creates the user, opens its first session and signs a token with it.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*AuthResult, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, ErrEmailInUse
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, persistence("register", err)
	}

	hashed, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &models.User{
		Username: req.UserName,
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent registration won the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailInUse
		}
		return nil, persistence("register", err)
	}

	return s.signIn(ctx, user)
}

// Login checks the credentials and replaces the user's session.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same bcrypt cost as a real check so unknown emails answer in the same time
			auth.BurnPasswordCheck(req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, persistence("login", err)
	}

	if err := auth.VerifyPassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.signIn(ctx, user)
}

func (s *authService) signIn(ctx context.Context, user *models.User) (*AuthResult, error) {
	secret, err := s.sessions.IssueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := auth.IssueToken(user.ID, secret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}
