package dto

import (
	"time"

	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/validation"
)

type CreateBookRequest struct {
	Title         string
	Author        string
	Description   *string
	PublishedYear *int
}

func NewCreateBookRequest(v validation.Values) CreateBookRequest {
	return CreateBookRequest{
		Title:         v.String("title"),
		Author:        v.String("author"),
		Description:   v.OptionalString("description"),
		PublishedYear: v.OptionalInt("published_year"),
	}
}

// ToModel converts the request into a Book ready to insert
func (r CreateBookRequest) ToModel() *models.Book {
	return &models.Book{
		Title:         r.Title,
		Author:        r.Author,
		Description:   r.Description,
		PublishedYear: r.PublishedYear,
	}
}

type BookResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   *string   `json:"description"`
	PublishedYear *int      `json:"published_year"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromModelToBookResponse(book *models.Book) *BookResponse {
	return &BookResponse{
		ID:            book.ID,
		Title:         book.Title,
		Author:        book.Author,
		Description:   book.Description,
		PublishedYear: book.PublishedYear,
		CreatedAt:     book.CreatedAt,
	}
}

func FromModelsToBookResponses(books []models.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, *FromModelToBookResponse(&books[i]))
	}
	return out
}
