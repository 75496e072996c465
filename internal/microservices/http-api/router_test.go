package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookhub/database/dbtest"
	"bookhub/internal/config"
	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/microservices/http-api/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "Abc12345!"

type RouterSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func testConfig() *config.Config {
	return &config.Config{
		GoEnv:           "test",
		SessionKeyBytes: 8,
		TokenTTL:        time.Hour,
		BcryptCost:      bcrypt.MinCost,
	}
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.db = dbtest.New(s.T())
	s.router = NewRouter(Dependencies{
		Config: testConfig(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		DB:     s.db,
	})
}

func (s *RouterSuite) do(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var decoded map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

func (s *RouterSuite) register(email string) string {
	w, body := s.do(http.MethodPost, "/auth/create", "", map[string]any{
		"userName": "reader",
		"email":    email,
		"password": testPassword,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return body["token"].(string)
}

func (s *RouterSuite) login(email string) string {
	w, body := s.do(http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": testPassword,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	return body["token"].(string)
}

func (s *RouterSuite) createBook(token, title string) int64 {
	w, body := s.do(http.MethodPost, "/books/create", token, map[string]any{"title": title, "author": "Au"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return int64(body["book"].(map[string]any)["id"].(float64))
}

func (s *RouterSuite) count(model any) int64 {
	var n int64
	s.Require().NoError(s.db.Model(model).Count(&n).Error)
	return n
}

func (s *RouterSuite) TestCheckConn() {
	w, _ := s.do(http.MethodGet, "/check-conn", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestRegisterBookReviewFlow() {
	token := s.register("a@x.com")
	bookID := s.createBook(token, "T")

	w, _ := s.do(http.MethodPost, fmt.Sprintf("/review/create/%d", bookID), token, map[string]any{"rating": 5})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w, body := s.do(http.MethodGet, "/review/user-reviews", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	reviews := body["userReviews"].([]any)
	s.Require().Len(reviews, 1)
	review := reviews[0].(map[string]any)
	s.EqualValues(5, review["rating"])
	s.EqualValues(bookID, review["book_id"])
}

func (s *RouterSuite) TestProtectedRoutesNeedToken() {
	w, body := s.do(http.MethodGet, "/books/list", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Authorization token not provided.", body["message"])

	w, body = s.do(http.MethodGet, "/books/list", "12345434553", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid JWT token.", body["message"])
}

func (s *RouterSuite) TestLoginInvalidatesPreviousToken() {
	first := s.register("a@x.com")
	second := s.login("a@x.com")

	w, body := s.do(http.MethodGet, "/books/list", first, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid authorization token.", body["message"])

	w, _ = s.do(http.MethodGet, "/books/list", second, nil)
	s.Equal(http.StatusNotFound, w.Code, "empty catalog")

	s.EqualValues(1, s.count(&models.Session{}))
}

func (s *RouterSuite) TestLoginWithWrongPassword() {
	s.register("a@x.com")

	w, _ := s.do(http.MethodPost, "/auth/login", "", map[string]any{"email": "a@x.com", "password": "Wrong123!"})
	s.Equal(http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodPost, "/auth/login", "", map[string]any{"email": "nobody@x.com", "password": testPassword})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestDuplicateEmail() {
	s.register("a@x.com")

	w, _ := s.do(http.MethodPost, "/auth/create", "", map[string]any{
		"userName": "again",
		"email":    "a@x.com",
		"password": testPassword,
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.EqualValues(1, s.count(&models.User{}))
}

func (s *RouterSuite) TestReviewForMissingBook() {
	token := s.register("a@x.com")

	w, _ := s.do(http.MethodPost, "/review/create/9999", token, map[string]any{"rating": 5})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Zero(s.count(&models.Review{}))
}

func (s *RouterSuite) TestReviewEditAndDelete() {
	owner := s.register("a@x.com")
	stranger := s.register("b@x.com")
	bookID := s.createBook(owner, "T")

	w, body := s.do(http.MethodPost, fmt.Sprintf("/review/create/%d", bookID), owner, map[string]any{"rating": 5, "review_text": "ok"})
	s.Require().Equal(http.StatusCreated, w.Code)
	reviewID := int64(body["review"].(map[string]any)["id"].(float64))
	path := func(op string) string { return fmt.Sprintf("/review/%s/%d", op, reviewID) }

	w, _ = s.do(http.MethodPut, path("edit"), stranger, map[string]any{"rating": 1})
	s.Equal(http.StatusUnauthorized, w.Code)

	w, body = s.do(http.MethodPut, path("edit"), owner, map[string]any{"rating": 4, "review_text": "better"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("better", body["review"].(map[string]any)["review_text"])

	w, _ = s.do(http.MethodDelete, path("delete"), stranger, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.EqualValues(1, s.count(&models.Review{}))

	w, _ = s.do(http.MethodDelete, path("delete"), owner, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Zero(s.count(&models.Review{}))

	w, _ = s.do(http.MethodDelete, path("delete"), owner, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestWatchlist() {
	token := s.register("a@x.com")
	bookID := s.createBook(token, "T")
	path := fmt.Sprintf("/watchlist/create/%d", bookID)

	w, _ := s.do(http.MethodGet, "/watchlist/user/list", token, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodPost, path, token, nil)
	s.Equal(http.StatusCreated, w.Code)

	w, _ = s.do(http.MethodPost, path, token, nil)
	s.Equal(http.StatusConflict, w.Code)
	s.EqualValues(1, s.count(&models.WatchlistEntry{}))

	w, _ = s.do(http.MethodPost, "/watchlist/create/9999", token, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w, body := s.do(http.MethodGet, "/watchlist/user/list", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(body["watchlist"].([]any), 1)

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/watchlist/delete/%d", bookID), token, nil)
	s.Equal(http.StatusOK, w.Code)
	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/watchlist/delete/%d", bookID), token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Zero(s.count(&models.WatchlistEntry{}))
}

func TestRouter_RedisSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := testConfig()
	s := &RouterSuite{db: dbtest.New(t)}
	s.SetT(t)
	s.router = NewRouter(Dependencies{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		DB:       s.db,
		Sessions: repository.NewRedisSessionRepository(client, cfg.TokenTTL),
	})

	first := s.register("a@x.com")
	s.createBook(first, "T")
	s.Zero(s.count(&models.Session{}))
	s.True(mr.Exists("session:user:" + s.firstUserID()))

	second := s.login("a@x.com")
	w, _ := s.do(http.MethodGet, "/books/list", first, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	w, _ = s.do(http.MethodGet, "/books/list", second, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) firstUserID() string {
	var user models.User
	s.Require().NoError(s.db.First(&user).Error)
	return user.ID
}
