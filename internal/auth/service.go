package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"safar-travel-api/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialVerifier is the credential-checking capability behind the admin
// login. The default implementation compares against env-provided values;
// swapping in a real identity provider only touches this seam.
type CredentialVerifier interface {
	Verify(username, password string) error
}

type EnvCredentialVerifier struct {
	Username     string
	PasswordHash string
}

func (v *EnvCredentialVerifier) Verify(username, password string) error {
	if subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) != 1 {
		return ErrInvalidCredentials
	}
	if err := util.VerifyPassword(password, v.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

type AuthService struct {
	Verifier  CredentialVerifier
	JWTSecret string
}

func (s *AuthService) Login(username, password string) (string, error) {
	if err := s.Verifier.Verify(username, password); err != nil {
		return "", err
	}

	exp := time.Now().Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  exp.Unix(),
	})

	return token.SignedString([]byte(s.JWTSecret))
}
