package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youquote/internal/database"
	"youquote/internal/testutil"
)

func TestRevokedTokenRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRevokedTokenRepository(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Revoke(ctx, "live", 1, now.Add(time.Hour)))
	require.NoError(t, repo.Revoke(ctx, "live", 1, now.Add(time.Hour)))
	require.NoError(t, repo.Revoke(ctx, "stale", 1, now.Add(-time.Hour)))

	revoked, err := repo.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRevoked(ctx, "never-issued")
	require.NoError(t, err)
	assert.False(t, revoked)

	purged, err := repo.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	revoked, err = repo.IsRevoked(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevokedTokenStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := database.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisRevokedTokenStore(client)
	jti := "test-" + time.Now().Format("150405.000000000")

	require.NoError(t, store.Revoke(ctx, jti, 7, time.Now().Add(time.Minute)))
	revoked, err := store.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, store.Revoke(ctx, jti+"-old", 7, time.Now().Add(-time.Minute)))
	revoked, err = store.IsRevoked(ctx, jti+"-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}
