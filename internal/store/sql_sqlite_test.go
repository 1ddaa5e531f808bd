package store

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func newSQLiteRepo(t *testing.T) *UserRepository {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnect(ctx, config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "auth.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return NewUserRepository(db, logger.Nop())
}

func TestSQLiteUserRepository_RoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.User{
		Username:     "alice",
		Email:        "alice@x.io",
		FullName:     "Alice",
		PasswordHash: "hash",
	}, SaveOptions{})
	require.NoError(t, err)
	require.NotZero(t, saved.UserID)

	_, err = repo.Save(ctx, models.User{Username: "alice", Email: "b@x.io", FullName: "B", PasswordHash: "h"}, SaveOptions{})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	found, err := repo.FindByUsernameOrEmail(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, saved.UserID, found.UserID)
	assert.Empty(t, found.RefreshToken)

	require.NoError(t, repo.SwapField(ctx, saved.UserID, FieldRefreshToken, nil, "r1"))
	require.NoError(t, repo.SwapField(ctx, saved.UserID, FieldRefreshToken, "r1", "r2"))
	assert.ErrorIs(t, repo.SwapField(ctx, saved.UserID, FieldRefreshToken, "r1", "r3"), ErrFieldMismatch)

	found, err = repo.FindByID(ctx, saved.UserID)
	require.NoError(t, err)
	assert.Equal(t, "r2", found.RefreshToken)

	require.NoError(t, repo.UpdateField(ctx, saved.UserID, FieldRefreshTokenExpiresAt, time.Now().Add(-time.Minute)))
	n, err := repo.ClearExpiredSessions(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	found, err = repo.FindByID(ctx, saved.UserID)
	require.NoError(t, err)
	assert.Empty(t, found.RefreshToken)
	assert.True(t, found.RefreshTokenExpiresAt.IsZero())
}

func TestSQLiteUserRepository_ConcurrentSwap(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.User{Username: "bob", Email: "bob@x.io", FullName: "Bob", PasswordHash: "h"}, SaveOptions{})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateField(ctx, saved.UserID, FieldRefreshToken, "r1"))

	const workers = 8
	var wg sync.WaitGroup
	var successes atomic.Int32
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if repo.SwapField(ctx, saved.UserID, FieldRefreshToken, "r1", "next") == nil {
				successes.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "oracle"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
