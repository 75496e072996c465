package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"bookhub/internal/microservices/http-api/dto"
	"bookhub/internal/microservices/http-api/service"
	"bookhub/internal/validation"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create", h.Register)
	router.POST("/login", h.Login)
}

// Register handles user registration
// POST /auth/create
func (h *AuthHandler) Register(c *gin.Context) {
	values, ok := bindBody(c, validation.RegisterSchema)
	if !ok {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), dto.NewRegisterRequest(values))
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			writeMessage(c, http.StatusBadRequest, "User already registered")
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRegisterResponse(result.Token, result.User))
}

// Login handles user login
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	values, ok := bindBody(c, validation.LoginSchema)
	if !ok {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), dto.NewLoginRequest(values))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLoginResponse(result.Token, result.User))
}
