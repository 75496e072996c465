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

const (
	msgInvalidReviewID = "Invalid review id"
	msgReviewNotFound  = "Review not found"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *slog.Logger
}

func NewReviewHandler(reviewService service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers review routes, the group is expected to carry the auth guard
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create/:bookId", h.Create)
	router.GET("/user-reviews", h.ListMine)
	router.PUT("/edit/:id", h.Edit)
	router.DELETE("/delete/:id", h.Delete)
}

// Create reviews a book as the current user
// POST /review/create/:bookId
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	bookID, ok := parseID(c, "bookId", msgInvalidBookID)
	if !ok {
		return
	}
	values, ok := bindBody(c, validation.ReviewSchema)
	if !ok {
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), userID, bookID, dto.NewReviewRequest(values))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			writeMessage(c, http.StatusBadRequest, msgBookNotFound)
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"review":  dto.FromModelToReviewResponse(review),
		"message": "Review created successfully",
	})
}

// ListMine lists the current user's reviews. No reviews answers 401.
// GET /review/user-reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}
	if len(reviews) == 0 {
		writeMessage(c, http.StatusUnauthorized, "User has no reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{"userReviews": dto.FromModelsToReviewResponses(reviews)})
}

// Edit replaces the text and rating of one of the current user's reviews.
// A review that does not exist or belongs to someone else answers 401.
// PUT /review/edit/:id
func (h *ReviewHandler) Edit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "id", msgInvalidReviewID)
	if !ok {
		return
	}
	values, ok := bindBody(c, validation.ReviewSchema)
	if !ok {
		return
	}

	review, err := h.reviewService.Edit(c.Request.Context(), userID, reviewID, dto.NewReviewRequest(values))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			writeMessage(c, http.StatusUnauthorized, msgReviewNotFound)
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"review":  dto.FromModelToReviewResponse(review),
		"message": "Review updated successfully",
	})
}

// Delete removes one of the current user's reviews
// DELETE /review/delete/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "id", msgInvalidReviewID)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), userID, reviewID); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			writeMessage(c, http.StatusNotFound, msgReviewNotFound)
			return
		}
		internalError(c, h.logger, err)
		return
	}

	writeMessage(c, http.StatusOK, "Review deleted successfully")
}
