package auth

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/auth"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/jwt"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/validator"
)

const testSecret = "test-secret-key-for-jwt"

func newTestAuthService(t *testing.T, credentials map[string]string) (auth.AuthService, jwt.Service) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")

	if credentials != nil {
		raw, err := json.Marshal(credentials)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0600))
	}

	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthService(path, jwtService), jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	svc, _ := newTestAuthService(t, map[string]string{"admin": string(hashed)})

	response, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "password123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Greater(t, response.ExpiresAt, int64(0))
	assert.Equal(t, "admin", response.Username)
}

func TestAuthService_Login_PlaintextCredential(t *testing.T) {
	svc, _ := newTestAuthService(t, map[string]string{"admin": "password123"})

	response, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "password123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	svc, _ := newTestAuthService(t, map[string]string{"admin": string(hashed)})

	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "wrong"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc, _ := newTestAuthService(t, map[string]string{"admin": "password123"})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "nobody", Password: "password123"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_BootstrapAccountWhenFileMissing(t *testing.T) {
	svc, _ := newTestAuthService(t, nil)

	response, err := svc.Login(context.Background(), auth.LoginRequest{Username: "msnglobalit", Password: "msnglobalit123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
}

func TestAuthService_Login_ValidationError(t *testing.T) {
	svc, _ := newTestAuthService(t, map[string]string{"admin": "password123"})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin"})

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, jwtService := newTestAuthService(t, map[string]string{"admin": "password123"})
	ctx := context.Background()

	response, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, response.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(response.AccessToken))
}

func TestAuthService_Logout_EmptyToken(t *testing.T) {
	svc, _ := newTestAuthService(t, map[string]string{"admin": "password123"})

	err := svc.Logout(context.Background(), "")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
