package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonidsliusar/webtronics-social/config"
	"github.com/leonidsliusar/webtronics-social/internal/repository"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:        "09d25e094faa6ca2556c818166b7a9563b93f709",
		Algorithm:     "HS256",
		AccessTTLMin:  30,
		RefreshTTLMin: 1440,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService(testJWTConfig(), nil)

	token, err := tokens.IssueAccess("b@example.com")
	require.NoError(t, err)

	subject, err := tokens.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", subject)
}

func TestRefreshTokenExpiry(t *testing.T) {
	tokens := NewTokenService(testJWTConfig(), nil)

	token, expiry, err := tokens.IssueRefresh("b@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(1440*time.Minute), expiry, time.Minute)
}

func TestDecodeRejectsTamperedSignature(t *testing.T) {
	tokens := NewTokenService(testJWTConfig(), nil)

	token, err := tokens.IssueAccess("b@example.com")
	require.NoError(t, err)

	// flip one byte of the signature segment
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}
	_, err = tokens.Decode(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestDecodeRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTTLMin = -1
	tokens := NewTokenService(cfg, nil)

	token, err := tokens.IssueAccess("b@example.com")
	require.NoError(t, err)

	_, err = tokens.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tokens := NewTokenService(testJWTConfig(), nil)

	for _, token := range []string{"", "garbage", strings.Repeat("a.", 3)} {
		_, err := tokens.Decode(token)
		assert.ErrorIs(t, err, ErrInvalidCredential)
	}
}

func TestDecodeRejectsOtherSecret(t *testing.T) {
	other := testJWTConfig()
	other.Secret = "another-secret-entirely-padded-out"
	token, err := NewTokenService(other, nil).IssueAccess("b@example.com")
	require.NoError(t, err)

	_, err = NewTokenService(testJWTConfig(), nil).Decode(token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestResolveIdentity(t *testing.T) {
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	tokens := NewTokenService(testJWTConfig(), users)
	ctx := context.Background()

	user := seedUser(t, db, "b@example.com", false)

	token, err := tokens.IssueAccess(user.Email)
	require.NoError(t, err)

	resolved, err := tokens.ResolveIdentity(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Email, resolved.Email)
}

func TestResolveIdentityUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	tokens := NewTokenService(testJWTConfig(), repository.NewUserRepository(db))

	token, err := tokens.IssueAccess("ghost@example.com")
	require.NoError(t, err)

	_, err = tokens.ResolveIdentity(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
