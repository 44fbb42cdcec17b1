package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMissing   = errors.New("jwt must be provided")
	ErrTokenMalformed = errors.New("jwt malformed")
	ErrTokenInvalid   = errors.New("invalid token")
)

// TokenIssuer signs and verifies HS256 tokens carrying the caller's username.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

type claims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

func (t *TokenIssuer) GenerateToken(username string) (string, error) {
	if username == "" {
		return "", errors.New("empty username passed to GenerateToken")
	}
	if len(t.secret) == 0 {
		return "", errors.New("signing secret not configured")
	}

	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		User: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return token.SignedString(t.secret)
}

// ValidateToken returns the username a token was issued for.
func (t *TokenIssuer) ValidateToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrTokenMissing
	}

	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if errors.Is(err, jwt.ErrTokenMalformed) {
		return "", ErrTokenMalformed
	}
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}
	if c.User == "" {
		return "", ErrTokenInvalid
	}
	return c.User, nil
}
