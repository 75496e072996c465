// Package httpapi wires repositories, services and handlers into the gin engine.
package httpapi

import (
	"log/slog"
	"net/http"

	"bookhub/internal/config"
	"bookhub/internal/microservices/http-api/handler"
	"bookhub/internal/microservices/http-api/middleware"
	"bookhub/internal/microservices/http-api/repository"
	"bookhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	// Sessions defaults to the database-backed store when nil.
	Sessions repository.SessionRepository
}

// NewRouter builds the engine serving every route of the API.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := deps.Sessions
	if sessions == nil {
		sessions = repository.NewSessionRepository(deps.DB)
	}

	userRepo := repository.NewUserRepository(deps.DB)
	bookRepo := repository.NewBookRepository(deps.DB)
	reviewRepo := repository.NewReviewRepository(deps.DB)
	watchlistRepo := repository.NewWatchlistRepository(deps.DB)

	issuer := service.NewSessionIssuer(sessions, deps.Config.SessionKeyBytes)
	authService := service.NewAuthService(userRepo, issuer, deps.Config)
	bookService := service.NewBookService(bookRepo)
	reviewService := service.NewReviewService(reviewRepo, bookRepo)
	watchlistService := service.NewWatchlistService(watchlistRepo, bookRepo)

	r := gin.New()
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(gin.Recovery())

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive"})
	})

	guard := middleware.AuthMiddleware(sessions, deps.Logger)

	handler.NewAuthHandler(authService, deps.Logger).RegisterRoutes(r.Group("/auth"))
	handler.NewBookHandler(bookService, deps.Logger).RegisterRoutes(r.Group("/books", guard))
	handler.NewReviewHandler(reviewService, deps.Logger).RegisterRoutes(r.Group("/review", guard))
	handler.NewWatchlistHandler(watchlistService, deps.Logger).RegisterRoutes(r.Group("/watchlist", guard))

	return r
}
