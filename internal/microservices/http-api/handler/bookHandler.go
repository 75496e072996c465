package handler

import (
	"log/slog"
	"net/http"

	"bookhub/internal/microservices/http-api/dto"
	"bookhub/internal/microservices/http-api/service"
	"bookhub/internal/validation"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService service.BookService
	logger      *slog.Logger
}

func NewBookHandler(bookService service.BookService, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		logger:      logger,
	}
}

// RegisterRoutes registers book routes, the group is expected to carry the auth guard
func (h *BookHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create", h.Create)
	router.GET("/list", h.List)
}

// Create adds a book to the catalog
// POST /books/create
func (h *BookHandler) Create(c *gin.Context) {
	values, ok := bindBody(c, validation.BookSchema)
	if !ok {
		return
	}

	book, err := h.bookService.Create(c.Request.Context(), dto.NewCreateBookRequest(values))
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"book":    dto.FromModelToBookResponse(book),
		"message": "Book created successfully",
	})
}

// List returns the whole catalog. An empty catalog answers 404.
// GET /books/list
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.List(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, err)
		return
	}
	if len(books) == 0 {
		writeMessage(c, http.StatusNotFound, "No books found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": dto.FromModelsToBookResponses(books)})
}
