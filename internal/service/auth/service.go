package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/auth"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	credentialsPath string
	jwtService      jwt.Service
}

func NewAuthService(credentialsPath string, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		credentialsPath: credentialsPath,
		jwtService:      jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	credentials, err := s.loadCredentials()
	if err != nil {
		return auth.LoginResponse{}, err
	}

	stored, ok := credentials[req.Username]
	if !ok || !passwordMatches(stored, req.Password) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("Admin logged in", "username", req.Username)

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Username:    req.Username,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(token)
	return nil
}

// loadCredentials reads the username->password map. A missing file yields the
// bootstrap admin account so a fresh deployment is reachable.
func (s *AuthServiceImpl) loadCredentials() (map[string]string, error) {
	raw, err := os.ReadFile(s.credentialsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{"msnglobalit": "msnglobalit123"}, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var credentials map[string]string
	if err := json.Unmarshal(raw, &credentials); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return credentials, nil
}

// passwordMatches supports both bcrypt hashes and legacy plaintext entries.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
