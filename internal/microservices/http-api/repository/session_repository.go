package repository

import (
	"context"
	"errors"
	"fmt"

	"bookhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// ErrSessionNotFound is returned when a user has no active session.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores the single active signing key of each user.
type SessionRepository interface {
	DeleteByUser(ctx context.Context, userID string) error
	Create(ctx context.Context, session *models.Session) error
	FindKeyByUser(ctx context.Context, userID string) (string, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepository) FindKeyByUser(ctx context.Context, userID string) (string, error) {
	var session models.Session
	err := r.db.WithContext(ctx).
		Select("ses_key").
		Where("user_id = ?", userID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find session: %w", err)
	}
	return session.Key, nil
}
