package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("could not validate credentials")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenService issues and validates the signed bearer tokens that carry an
// admin identity between requests. Tokens are stateless: there is no
// server-side revocation list, a token stays valid until its expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service signing with secret. ttl <= 0
// falls back to the 30 minute default.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token whose subject is the admin id, expiring
// after the service's configured ttl.
func (s *TokenService) Issue(adminID int) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(adminID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Resolve verifies signature and expiry and returns the admin id the token
// was issued for. An unverified payload is never trusted: any signature or
// shape problem yields ErrInvalidToken, a good signature past its expiry
// yields ErrExpiredToken.
func (s *TokenService) Resolve(tokenStr string) (int, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}

	adminID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return adminID, nil
}
