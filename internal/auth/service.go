package auth

import (
	"crypto/subtle"
	"errors"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotConfigured = errors.New("admin credentials not configured")
)

// Config holds the single shared admin credential and the signing secret.
// There is no user table; the whole admin area is gated by this one pair.
type Config struct {
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
}

type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Login validates the presented credential pair and mints an admin token.
func (s *Service) Login(username, password string) (string, error) {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPasswordHash == "" {
		return "", ErrNotConfigured
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	if !VerifyPassword(s.cfg.AdminPasswordHash, password) || !usernameMatch {
		return "", ErrUnauthorized
	}

	return GenerateToken(s.cfg.JWTSecret, TokenTTL)
}

// Verify checks a bearer token's signature and expiry.
func (s *Service) Verify(token string) error {
	if _, err := ParseToken(s.cfg.JWTSecret, token); err != nil {
		return ErrUnauthorized
	}
	return nil
}
