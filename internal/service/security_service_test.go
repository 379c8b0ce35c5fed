package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSecurity(expiry time.Duration) *SecurityServiceImpl {
	return NewSecurityService(newMemKV(), "test-secret-at-least-32-chars-long!", expiry, "voltx", zerolog.Nop())
}

func TestSecurityService_SetAndVerifyPIN(t *testing.T) {
	ctx := context.Background()
	svc := newTestSecurity(time.Hour)

	require.NoError(t, svc.SetPIN(ctx, "123456"))

	token, expiresAt, err := svc.VerifyPIN(ctx, "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	require.NoError(t, svc.ValidateToken(token))
}

func TestSecurityService_WrongPIN(t *testing.T) {
	ctx := context.Background()
	svc := newTestSecurity(time.Hour)

	require.NoError(t, svc.SetPIN(ctx, "123456"))

	_, _, err := svc.VerifyPIN(ctx, "654321")
	assertAppError(t, err, "AUTH_001")
}

func TestSecurityService_PINNotSet(t *testing.T) {
	svc := newTestSecurity(time.Hour)

	_, _, err := svc.VerifyPIN(context.Background(), "123456")
	assertAppError(t, err, "AUTH_003")
}

func TestSecurityService_PINValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestSecurity(time.Hour)

	assertAppError(t, svc.SetPIN(ctx, "123"), "VAL_001")
	assertAppError(t, svc.SetPIN(ctx, "123456789"), "VAL_001")
	assertAppError(t, svc.SetPIN(ctx, "12ab56"), "VAL_001")
}

func TestSecurityService_InvalidToken(t *testing.T) {
	svc := newTestSecurity(time.Hour)

	assertAppError(t, svc.ValidateToken("not-a-token"), "AUTH_002")
}

func TestSecurityService_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestSecurity(-time.Minute)

	require.NoError(t, svc.SetPIN(ctx, "123456"))
	token, _, err := svc.VerifyPIN(ctx, "123456")
	require.NoError(t, err)

	assertAppError(t, svc.ValidateToken(token), "AUTH_002")
}

func TestSecurityService_TokenFromOtherSecretRejected(t *testing.T) {
	ctx := context.Background()
	issuer := NewSecurityService(newMemKV(), "secret-one-that-is-long-enough!!", time.Hour, "voltx", zerolog.Nop())
	verifier := NewSecurityService(newMemKV(), "secret-two-that-is-long-enough!!", time.Hour, "voltx", zerolog.Nop())

	require.NoError(t, issuer.SetPIN(ctx, "123456"))
	token, _, err := issuer.VerifyPIN(ctx, "123456")
	require.NoError(t, err)

	assertAppError(t, verifier.ValidateToken(token), "AUTH_002")
}
