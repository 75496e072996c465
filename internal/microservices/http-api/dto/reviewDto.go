package dto

import (
	"time"

	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/validation"
)

// ReviewRequest is shared by create and edit. Edits replace both fields.
type ReviewRequest struct {
	ReviewText *string
	Rating     int
}

func NewReviewRequest(v validation.Values) ReviewRequest {
	return ReviewRequest{
		ReviewText: v.OptionalString("review_text"),
		Rating:     v.Int("rating"),
	}
}

type ReviewResponse struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	ReviewText *string   `json:"review_text"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         review.ID,
		BookID:     review.BookID,
		ReviewText: review.ReviewText,
		Rating:     review.Rating,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

func FromModelsToReviewResponses(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, *FromModelToReviewResponse(&reviews[i]))
	}
	return out
}
