package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// gin context keys set by the middlewares
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"

	// cookie carrying the issued token for page routes
	SessionName     = "solari_session"
	sessionTokenKey = "token"

	tokenTTL = 7 * 24 * time.Hour
)

var ErrLoginDisabled = errors.New("login providers not configured")

// represents JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
