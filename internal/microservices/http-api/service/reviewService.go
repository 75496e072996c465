package service

import (
	"context"
	"errors"

	"bookhub/internal/microservices/http-api/dto"
	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	Create(ctx context.Context, userID string, bookID int64, req dto.ReviewRequest) (*models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	Edit(ctx context.Context, userID string, reviewID int64, req dto.ReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, userID string, reviewID int64) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookRepo repository.BookRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
	}
}

// Create checks the book exists before writing the review
func (s *reviewService) Create(ctx context.Context, userID string, bookID int64, req dto.ReviewRequest) (*models.Review, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, persistence("create review", err)
	}

	review := &models.Review{
		UserID:     userID,
		BookID:     bookID,
		ReviewText: req.ReviewText,
		Rating:     req.Rating,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		// book deleted between the check and the insert
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrBookNotFound
		}
		return nil, persistence("create review", err)
	}
	return review, nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, persistence("list reviews", err)
	}
	return reviews, nil
}

// Edit replaces the text and rating of a review owned by userID.
func (s *reviewService) Edit(ctx context.Context, userID string, reviewID int64, req dto.ReviewRequest) (*models.Review, error) {
	rows, err := s.reviewRepo.Update(ctx, &models.Review{
		ID:         reviewID,
		UserID:     userID,
		ReviewText: req.ReviewText,
		Rating:     req.Rating,
	})
	if err != nil {
		return nil, persistence("edit review", err)
	}
	if rows == 0 {
		return nil, ErrReviewNotFound
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, persistence("edit review", err)
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, userID string, reviewID int64) error {
	rows, err := s.reviewRepo.Delete(ctx, reviewID, userID)
	if err != nil {
		return persistence("delete review", err)
	}
	if rows == 0 {
		return ErrReviewNotFound
	}
	return nil
}
