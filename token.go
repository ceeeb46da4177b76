package main

import (
	"errors"
	"time"

	"fintrack/models"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the fixed validity window of a session token. There is no refresh
// or server-side revocation; a token stays valid until it expires or the client
// discards it.
const tokenTTL = 24 * time.Hour

// Verification failure modes. All of them leave the request anonymous; the
// distinction exists only for logging.
var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
)

// Identity is the verified claim asserting which user is making a request.
type Identity struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type sessionClaims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// mintToken signs a session token for the user. now is a parameter so expiry
// behavior stays testable.
func mintToken(user models.User, now time.Time) (string, error) {
	claims := sessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// verifyToken parses and validates a session token and returns its identity claim.
func verifyToken(tokenString string) (Identity, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return jwtSecret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, ErrTokenBadSignature
		default:
			return Identity{}, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return Identity{}, ErrTokenMalformed
	}
	return Identity{UserID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
