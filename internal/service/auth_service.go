package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAuthenticationFailed = errors.New("authentication failed: invalid password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService gates the app behind a single trainer login. There are no
// user accounts: one password, checked against a bcrypt hash from config,
// yields a session token.
type AuthService interface {
	Login(password string) (token string, err error)
}

type authService struct {
	passwordHash  string
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates the single-user auth service.
func NewAuthService(passwordHash, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 1
	}
	return &authService{
		passwordHash:  passwordHash,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *authService) Login(password string) (string, error) {
	if password == "" {
		return "", ErrAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrAuthenticationFailed
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "trainer",
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    "personal-plan-creator",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", ErrTokenGeneration
	}
	return signed, nil
}
