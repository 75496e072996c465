package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"bookhub/internal/microservices/http-api/repository"
	"bookhub/internal/middleware/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userID"

const (
	msgTokenMissing  = "Authorization token not provided."
	msgInvalidJWT    = "Invalid JWT token."
	msgInvalidToken  = "Invalid authorization token."
	msgInternalError = "Internal server error."
)

// AuthMiddleware guards routes with per-user session tokens.
//
// The Authorization header carries the raw token. Its payload names the user,
// the user's current session key is looked up, and only then is the signature
// checked against that key. A login issues a new key, which invalidates every
// token signed before it.
func AuthMiddleware(sessions repository.SessionRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			reject(c, http.StatusUnauthorized, msgTokenMissing)
			return
		}

		// unverified: only tells us whose key to check against
		userID, err := auth.DecodeUnverified(token)
		if err != nil {
			reject(c, http.StatusUnauthorized, msgInvalidJWT)
			return
		}
		// user ids are uuids; anything else cannot have a session
		if _, err := uuid.Parse(userID); err != nil {
			reject(c, http.StatusUnauthorized, msgInvalidJWT)
			return
		}

		secret, err := sessions.FindKeyByUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				reject(c, http.StatusUnauthorized, msgInvalidJWT)
				return
			}
			logger.Error("session lookup failed", "user_id", userID, "error", err)
			reject(c, http.StatusInternalServerError, msgInternalError)
			return
		}

		claims, err := auth.VerifyToken(token, secret)
		if err != nil {
			reject(c, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func reject(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// UserID returns the id stored by AuthMiddleware.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(UserIDKey)
	return id, id != ""
}
