package service

import (
	"context"
	"errors"

	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type WatchlistService interface {
	Add(ctx context.Context, userID string, bookID int64) error
	List(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	Remove(ctx context.Context, userID string, bookID int64) error
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	bookRepo      repository.BookRepository
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository, bookRepo repository.BookRepository) WatchlistService {
	return &watchlistService{
		watchlistRepo: watchlistRepo,
		bookRepo:      bookRepo,
	}
}

// Add rejects a pair that is already listed before writing. The unique index
// on (user_id, book_id) catches the insert that loses a concurrent race.
func (s *watchlistService) Add(ctx context.Context, userID string, bookID int64) error {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return persistence("add to watchlist", err)
	}

	exists, err := s.watchlistRepo.Exists(ctx, userID, bookID)
	if err != nil {
		return persistence("add to watchlist", err)
	}
	if exists {
		return ErrAlreadyInWatchlist
	}

	if err := s.watchlistRepo.Add(ctx, userID, bookID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return ErrAlreadyInWatchlist
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return ErrBookNotFound
		}
		return persistence("add to watchlist", err)
	}
	return nil
}

func (s *watchlistService) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	entries, err := s.watchlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, persistence("list watchlist", err)
	}
	return entries, nil
}

// Remove succeeds whether or not the pair was listed.
func (s *watchlistService) Remove(ctx context.Context, userID string, bookID int64) error {
	if _, err := s.watchlistRepo.Remove(ctx, userID, bookID); err != nil {
		return persistence("remove from watchlist", err)
	}
	return nil
}
