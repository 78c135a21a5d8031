package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMuteStore_TimedMute(t *testing.T) {
	req := require.New(t)
	store := NewMuteStore(openTestDB(t), slog.Default())
	id := uuid.New()

	req.False(store.IsMuted(id))
	req.Zero(store.RemainingMillis(id))

	err := store.Mute(id, time.Minute, "console", "spamming")
	req.NoError(err)
	req.True(store.IsMuted(id))

	remaining := store.RemainingMillis(id)
	req.Positive(remaining)
	req.LessOrEqual(remaining, int64(60000))
}

func TestMuteStore_PermanentMute(t *testing.T) {
	req := require.New(t)
	store := NewMuteStore(openTestDB(t), slog.Default())
	id := uuid.New()

	err := store.Mute(id, 0, "console", "")
	req.NoError(err)
	req.True(store.IsMuted(id))
	// Permanent mutes have no countdown; callers show the generic notice
	req.Zero(store.RemainingMillis(id))
}

func TestMuteStore_Unmute(t *testing.T) {
	req := require.New(t)
	store := NewMuteStore(openTestDB(t), slog.Default())
	id := uuid.New()

	req.NoError(store.Mute(id, time.Hour, "console", ""))
	req.True(store.IsMuted(id))

	req.NoError(store.Unmute(id))
	req.False(store.IsMuted(id))
}

func TestMuteStore_Expiry(t *testing.T) {
	req := require.New(t)
	store := NewMuteStore(openTestDB(t), slog.Default())
	id := uuid.New()

	req.NoError(store.Mute(id, time.Second, "console", ""))
	req.True(store.IsMuted(id))

	// Badger's TTL drops the record once it lapses
	req.Eventually(func() bool { return !store.IsMuted(id) }, 5*time.Second, 100*time.Millisecond)
	req.Zero(store.RemainingMillis(id))
}
