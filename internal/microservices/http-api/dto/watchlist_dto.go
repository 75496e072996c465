package dto

import (
	"time"

	"bookhub/internal/microservices/http-api/models"
)

// WatchlistResponse: response for a watchlist item
type WatchlistResponse struct {
	ID      int64         `json:"id"`
	BookID  int64         `json:"book_id"`
	Book    *BookResponse `json:"book,omitempty"`
	AddedAt time.Time     `json:"added_at"`
}

func FromModelsToWatchlistResponses(entries []models.WatchlistEntry) []WatchlistResponse {
	out := make([]WatchlistResponse, 0, len(entries))
	for _, entry := range entries {
		item := WatchlistResponse{
			ID:      entry.ID,
			BookID:  entry.BookID,
			AddedAt: entry.AddedAt,
		}
		if entry.Book != nil {
			item.Book = FromModelToBookResponse(entry.Book)
		}
		out = append(out, item)
	}
	return out
}
