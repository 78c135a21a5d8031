package repositories

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIgnoreStore(t *testing.T) {
	req := require.New(t)
	store := NewIgnoreStore(openTestDB(t), slog.Default())
	viewer := uuid.New()
	sender := uuid.New()

	req.False(store.IsIgnored(viewer, sender))

	req.NoError(store.Ignore(viewer, sender))
	req.True(store.IsIgnored(viewer, sender))

	// Ignoring is one-directional: the sender still sees the viewer
	req.False(store.IsIgnored(sender, viewer))

	req.NoError(store.Unignore(viewer, sender))
	req.False(store.IsIgnored(viewer, sender))
}
