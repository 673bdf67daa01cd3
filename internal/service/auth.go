package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"parnika-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// authService verifies the single shared admin password and issues a session
// token with an expiry. There are no per-user accounts.
type authService struct {
	password string
	tokens   security.TokenManager
}

func NewAuthService(password string, tokens security.TokenManager) AuthService {
	return &authService{password: password, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrInvalidCredentials
	}
	// The configured credential may be a bcrypt hash or, for local setups,
	// the plain password.
	if strings.HasPrefix(s.password, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)); err != nil {
			return "", ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) != 1 {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateAdminToken()
}
