package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClientAPI is the client claim stamped on every token issued by the HTTP API.
const ClientAPI = "API"

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrMissingUser      = errors.New("token payload has no user")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token has expired")
)

// Claims is the token payload. The user id sits in "user" and the token is
// signed with that user's current session key, not with a server-wide secret.
type Claims struct {
	UserID string `json:"user"`
	Client string `json:"client"`
	jwt.RegisteredClaims
}

// IssueToken signs a token for userID with the given session secret.
func IssueToken(userID, secret string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", ErrMissingUser
	}
	if secret == "" {
		return "", errors.New("auth: empty signing secret")
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Client: ClientAPI,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// DecodeUnverified reads the user id out of a token without checking its
// signature. The result only says which session key to verify against.
func DecodeUnverified(tokenString string) (string, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if claims.UserID == "" {
		return "", ErrMissingUser
	}
	return claims.UserID, nil
}

// VerifyToken checks the signature against secret and the expiry.
func VerifyToken(tokenString, secret string) (*Claims, error) {
	if secret == "" {
		return nil, ErrInvalidSignature
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrMalformedToken
	}
	return claims, nil
}
