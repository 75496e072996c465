package dto

import (
	"time"

	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/validation"
)

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration, built from a validated body
type RegisterRequest struct {
	UserName string
	Email    string
	Password string
}

func NewRegisterRequest(v validation.Values) RegisterRequest {
	return RegisterRequest{
		UserName: v.String("userName"),
		Email:    v.String("email"),
		Password: v.String("password"),
	}
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string
	Password string
}

func NewLoginRequest(v validation.Values) LoginRequest {
	return LoginRequest{
		Email:    v.String("email"),
		Password: v.String("password"),
	}
}

// RegisteredUser is the user part of the registration response.
type RegisteredUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterResponse struct {
	Token   string         `json:"token"`
	User    RegisteredUser `json:"user"`
	Message string         `json:"message"`
}

func NewRegisterResponse(token string, user *models.User) RegisterResponse {
	return RegisterResponse{
		Token: token,
		User: RegisteredUser{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		},
		Message: "User created successfully",
	}
}

// LoggedInUser is the user part of the login response.
type LoggedInUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  LoggedInUser `json:"user"`
}

func NewLoginResponse(token string, user *models.User) LoginResponse {
	return LoginResponse{
		Token: token,
		User: LoggedInUser{
			ID:    user.ID,
			Name:  user.Username,
			Email: user.Email,
		},
	}
}
