package models

import "time"

type Book struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"not null;size:255"`
	Author        string    `json:"author" gorm:"not null;size:255"`
	Description   *string   `json:"description,omitempty" gorm:"type:text"`
	PublishedYear *int      `json:"published_year,omitempty"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Book) TableName() string {
	return "books"
}
