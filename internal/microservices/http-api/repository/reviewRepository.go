package repository

import (
	"context"
	"fmt"

	"bookhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// ReviewRepository scopes every write to the owning user. Update and Delete
// report the number of rows they touched so callers can tell "not found"
// apart from a store failure.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	Delete(ctx context.Context, id int64, userID string) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &review, nil
}

// Update replaces review_text and rating of the review matching both the id and the user id.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ? AND user_id = ?", review.ID, review.UserID).
		Updates(map[string]any{
			"review_text": review.ReviewText,
			"rating":      review.Rating,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("update review: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Review{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete review: %w", result.Error)
	}
	return result.RowsAffected, nil
}
