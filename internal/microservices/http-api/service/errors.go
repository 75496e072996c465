package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBookNotFound       = errors.New("book not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrAlreadyInWatchlist = errors.New("book already in watchlist")

	// ErrPersistence marks an unexpected store failure. Handlers answer it with
	// a generic 500 and log the wrapped cause.
	ErrPersistence = errors.New("persistence failure")
)

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}
