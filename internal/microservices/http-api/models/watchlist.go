package models

import "time"

// WatchlistEntry is unique per (user, book) pair.
type WatchlistEntry struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_book" json:"user_id"`
	BookID  int64     `gorm:"not null;uniqueIndex:idx_watchlist_user_book" json:"book_id"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;" json:"book,omitempty"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}
