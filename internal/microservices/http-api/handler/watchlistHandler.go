package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"bookhub/internal/microservices/http-api/dto"
	"bookhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	watchlistService service.WatchlistService
	logger           *slog.Logger
}

func NewWatchlistHandler(watchlistService service.WatchlistService, logger *slog.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
		logger:           logger,
	}
}

func (h *WatchlistHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create/:bookId", h.Add)
	router.GET("/user/list", h.List)
	router.DELETE("/delete/:bookId", h.Remove)
}

// Add puts a book on the current user's watchlist
// POST /watchlist/create/:bookId
func (h *WatchlistHandler) Add(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	bookID, ok := parseID(c, "bookId", msgInvalidBookID)
	if !ok {
		return
	}

	err := h.watchlistService.Add(c.Request.Context(), userID, bookID)
	switch {
	case err == nil:
		writeMessage(c, http.StatusCreated, "Book added to watchlist")
	case errors.Is(err, service.ErrBookNotFound):
		writeMessage(c, http.StatusBadRequest, msgBookNotFound)
	case errors.Is(err, service.ErrAlreadyInWatchlist):
		writeMessage(c, http.StatusConflict, "Book already in your watchlist")
	default:
		internalError(c, h.logger, err)
	}
}

// List returns the current user's watchlist. An empty watchlist answers 401.
// GET /watchlist/user/list
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := h.watchlistService.List(c.Request.Context(), userID)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}
	if len(entries) == 0 {
		writeMessage(c, http.StatusUnauthorized, "User has no watchlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"watchlist": dto.FromModelsToWatchlistResponses(entries)})
}

// Remove takes a book off the watchlist. Removing an absent book still answers 200.
// DELETE /watchlist/delete/:bookId
func (h *WatchlistHandler) Remove(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	bookID, ok := parseID(c, "bookId", msgInvalidBookID)
	if !ok {
		return
	}

	if err := h.watchlistService.Remove(c.Request.Context(), userID, bookID); err != nil {
		internalError(c, h.logger, err)
		return
	}

	writeMessage(c, http.StatusOK, "Book removed from watchlist")
}
