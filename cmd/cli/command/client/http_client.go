package client

// http_client.go = talks to the bookhub HTTP API on behalf of the CLI commands.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Auth-related request/response structures
type RegisterRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
}

type AuthResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// Book-related request/response structures
type CreateBookRequest struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   *string `json:"description,omitempty"`
	PublishedYear *int    `json:"published_year,omitempty"`
}

type Book struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   *string `json:"description"`
	PublishedYear *int    `json:"published_year"`
}

// Review-related request/response structures
type ReviewRequest struct {
	ReviewText *string `json:"review_text,omitempty"`
	Rating     int     `json:"rating"`
}

type Review struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	ReviewText *string   `json:"review_text"`
	Rating     int       `json:"rating"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Watchlist-related response structures
type WatchlistItem struct {
	ID      int64     `json:"id"`
	BookID  int64     `json:"book_id"`
	Book    *Book     `json:"book,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// APIError carries the status and the message(s) of a failed call.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", strings.Join(e.Messages, "; "), e.Status)
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken sets the raw token sent in the Authorization header.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Register(request *RegisterRequest) (*AuthResponse, error) {
	var result AuthResponse
	if err := c.do(http.MethodPost, "/auth/create", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(request *LoginRequest) (*AuthResponse, error) {
	var result AuthResponse
	if err := c.do(http.MethodPost, "/auth/login", request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateBook(request *CreateBookRequest) (*Book, error) {
	var result struct {
		Book Book `json:"book"`
	}
	if err := c.do(http.MethodPost, "/books/create", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result.Book, nil
}

func (c *HTTPClient) ListBooks() ([]Book, error) {
	var result struct {
		Books []Book `json:"books"`
	}
	if err := c.do(http.MethodGet, "/books/list", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Books, nil
}

func (c *HTTPClient) CreateReview(bookID int64, request *ReviewRequest) (*Review, error) {
	var result struct {
		Review Review `json:"review"`
	}
	path := fmt.Sprintf("/review/create/%d", bookID)
	if err := c.do(http.MethodPost, path, request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result.Review, nil
}

func (c *HTTPClient) ListReviews() ([]Review, error) {
	var result struct {
		Reviews []Review `json:"userReviews"`
	}
	if err := c.do(http.MethodGet, "/review/user-reviews", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Reviews, nil
}

func (c *HTTPClient) EditReview(reviewID int64, request *ReviewRequest) (*Review, error) {
	var result struct {
		Review Review `json:"review"`
	}
	path := fmt.Sprintf("/review/edit/%d", reviewID)
	if err := c.do(http.MethodPut, path, request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result.Review, nil
}

func (c *HTTPClient) DeleteReview(reviewID int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/review/delete/%d", reviewID), nil, http.StatusOK, nil)
}

func (c *HTTPClient) AddToWatchlist(bookID int64) error {
	return c.do(http.MethodPost, fmt.Sprintf("/watchlist/create/%d", bookID), nil, http.StatusCreated, nil)
}

func (c *HTTPClient) ListWatchlist() ([]WatchlistItem, error) {
	var result struct {
		Watchlist []WatchlistItem `json:"watchlist"`
	}
	if err := c.do(http.MethodGet, "/watchlist/user/list", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Watchlist, nil
}

func (c *HTTPClient) RemoveFromWatchlist(bookID int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/watchlist/delete/%d", bookID), nil, http.StatusOK, nil)
}

// do sends body as JSON and decodes the response into out when the status matches want.
func (c *HTTPClient) do(method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != want {
		return decodeError(response)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}

// decodeError understands both {"message":"..."} and {"message":[{"message":"..."}]}.
func decodeError(response *http.Response) error {
	apiErr := &APIError{Status: response.StatusCode}

	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil || len(envelope.Message) == 0 {
		return apiErr
	}

	var single string
	if err := json.Unmarshal(envelope.Message, &single); err == nil {
		apiErr.Messages = []string{single}
		return apiErr
	}

	var list []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Message, &list); err == nil {
		for _, item := range list {
			apiErr.Messages = append(apiErr.Messages, item.Message)
		}
	}
	return apiErr
}
