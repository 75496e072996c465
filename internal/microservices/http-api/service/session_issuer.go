package service

import (
	"context"
	"fmt"

	"bookhub/internal/microservices/http-api/models"
	"bookhub/internal/microservices/http-api/repository"
	"bookhub/internal/middleware/auth"
)

// SessionIssuer replaces the session of a user and hands back the new signing key.
type SessionIssuer interface {
	IssueSession(ctx context.Context, userID string) (string, error)
}

type sessionIssuer struct {
	sessions repository.SessionRepository
	keyBytes int
}

func NewSessionIssuer(sessions repository.SessionRepository, keyBytes int) SessionIssuer {
	return &sessionIssuer{sessions: sessions, keyBytes: keyBytes}
}

// IssueSession deletes every session of the user then stores a fresh key.
// The two writes are not atomic; two concurrent logins end with whichever
// insert lands last, and tokens signed with the other key stop verifying.
func (s *sessionIssuer) IssueSession(ctx context.Context, userID string) (string, error) {
	key, err := auth.GenerateSessionKey(s.keyBytes)
	if err != nil {
		return "", fmt.Errorf("generate session key: %w", err)
	}

	if err := s.sessions.DeleteByUser(ctx, userID); err != nil {
		return "", persistence("issue session", err)
	}

	session := &models.Session{
		UserID:   userID,
		Key:      key,
		IP:       models.PlaceholderLocation,
		City:     models.PlaceholderLocation,
		Country:  models.PlaceholderLocation,
		Location: models.PlaceholderLocation,
		State:    models.PlaceholderLocation,
		Timezone: models.PlaceholderLocation,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", persistence("issue session", err)
	}

	return key, nil
}
