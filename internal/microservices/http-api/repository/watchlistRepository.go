package repository

import (
	"context"
	"fmt"

	"bookhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type WatchlistRepository interface {
	Add(ctx context.Context, userID string, bookID int64) error
	Remove(ctx context.Context, userID string, bookID int64) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	Exists(ctx context.Context, userID string, bookID int64) (bool, error)
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) Add(ctx context.Context, userID string, bookID int64) error {
	entry := &models.WatchlistEntry{
		UserID: userID,
		BookID: bookID,
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("add to watchlist: %w", err)
	}
	return nil
}

func (r *watchlistRepository) Remove(ctx context.Context, userID string, bookID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.WatchlistEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("remove from watchlist: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *watchlistRepository) ListByUser(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry

	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("added_at, id").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return entries, nil
}

func (r *watchlistRepository) Exists(ctx context.Context, userID string, bookID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WatchlistEntry{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check watchlist: %w", err)
	}
	return count > 0, nil
}
