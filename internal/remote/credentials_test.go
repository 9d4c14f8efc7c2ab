package remote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestCredentialStore_AcquireAndToken(t *testing.T) {
	store := NewCredentialStore(testSecret, time.Hour)

	sessionID, err := store.Acquire("remote-bearer-token")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	ctx := WithSession(context.Background(), sessionID)
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "remote-bearer-token", token)
}

func TestCredentialStore_TokenWithoutSession(t *testing.T) {
	store := NewCredentialStore(testSecret, time.Hour)

	_, err := store.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestCredentialStore_TokenForUnknownSession(t *testing.T) {
	store := NewCredentialStore(testSecret, time.Hour)

	ctx := WithSession(context.Background(), "never-acquired")
	_, err := store.Token(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestCredentialStore_ClearRevokesToken(t *testing.T) {
	store := NewCredentialStore(testSecret, time.Hour)

	sessionID, err := store.Acquire("remote-bearer-token")
	require.NoError(t, err)

	store.Clear(sessionID)

	ctx := WithSession(context.Background(), sessionID)
	_, err = store.Token(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestCredentialStore_ExpiredSession(t *testing.T) {
	store := NewCredentialStore(testSecret, -time.Minute)

	sessionID, err := store.Acquire("remote-bearer-token")
	require.NoError(t, err)

	ctx := WithSession(context.Background(), sessionID)
	_, err = store.Token(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestCredentialStore_SweepDropsOnlyExpired(t *testing.T) {
	expired := NewCredentialStore(testSecret, -time.Minute)
	fresh := NewCredentialStore(testSecret, time.Hour)

	_, err := expired.Acquire("a")
	require.NoError(t, err)
	_, err = expired.Acquire("b")
	require.NoError(t, err)

	liveID, err := fresh.Acquire("c")
	require.NoError(t, err)

	assert.Equal(t, 2, expired.Sweep())
	assert.Equal(t, 0, expired.Sweep())

	assert.Equal(t, 0, fresh.Sweep())
	token, err := fresh.Token(WithSession(context.Background(), liveID))
	require.NoError(t, err)
	assert.Equal(t, "c", token)
}

func TestSessionFromContext(t *testing.T) {
	_, ok := SessionFromContext(context.Background())
	assert.False(t, ok)

	id, ok := SessionFromContext(WithSession(context.Background(), "s1"))
	assert.True(t, ok)
	assert.Equal(t, "s1", id)
}
