package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

func newAuthFixture(t *testing.T) (*AuthService, *JWTService, context.Context) {
	t.Helper()
	db := newTestDB(t)
	jwt := NewJWTService("test-secret", 60)
	svc := NewAuthService(repository.NewUserRepository(db), jwt, newTestLogger())
	return svc, jwt, context.Background()
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, jwt, ctx := newAuthFixture(t)

	user, err := svc.Register(ctx, "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)

	token, err := svc.Login(ctx, "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)

	email, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", email)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc, _, ctx := newAuthFixture(t)

	_, err := svc.Register(ctx, "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "owner@example.com", "different-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _, ctx := newAuthFixture(t)

	_, err := svc.Register(ctx, "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "owner@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc, _, ctx := newAuthFixture(t)

	_, err := svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	jwt := NewJWTService("test-secret", 60)
	other := NewJWTService("other-secret", 60)

	token, err := jwt.GenerateToken("owner@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
