package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for expired or tampered tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the session identity inside API tokens.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// GenerateToken signs a token for the session, used by the JSON API routes.
func GenerateToken(sess *Session, secret string, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Username: sess.Username,
		Role:     sess.Role,
	})

	return token.SignedString([]byte(secret))
}

// ParseToken validates a token and returns the session it carries.
func ParseToken(tokenString, secret string) (*Session, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Session{Username: claims.Username, Role: claims.Role}, nil
}
