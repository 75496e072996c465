package service

import (
	"context"

	"bookhub/internal/microservices/http-api/dto"
	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/microservices/http-api/repository"
)

type BookService interface {
	Create(ctx context.Context, req dto.CreateBookRequest) (*models.Book, error)
	List(ctx context.Context) ([]models.Book, error)
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req dto.CreateBookRequest) (*models.Book, error) {
	book := req.ToModel()
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, persistence("create book", err)
	}
	return book, nil
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, persistence("list books", err)
	}
	return books, nil
}
