package repositories

import (
	"testing"

	"chat-render/domain"
	"chat-render/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestColorStore(t *testing.T) {
	req := require.New(t)
	store := NewColorStore()
	id := uuid.New()

	req.Equal(domain.ColorPreference{}, store.Preference(id))

	req.NoError(store.SetCustom(id, "#FF0000"))
	req.Equal("#FF0000", store.Preference(id).Custom)

	req.NoError(store.SetCustom(id, "<gradient:#ff0000:#00ff00>"))
	req.True(store.Preference(id).IsGradient())

	req.NoError(store.SetTag(id, "<red>"))
	pref := store.Preference(id)
	req.Equal("<red>", pref.Tag)

	store.Clear(id)
	req.Equal(domain.ColorPreference{}, store.Preference(id))
}

func TestColorStore_RejectsInvalidSpecs(t *testing.T) {
	req := require.New(t)
	store := NewColorStore()
	id := uuid.New()

	req.ErrorIs(store.SetCustom(id, "red"), errors.ErrInvalidColorSpec)
	req.ErrorIs(store.SetCustom(id, "#GGGGGG"), errors.ErrInvalidColorSpec)
	req.ErrorIs(store.SetTag(id, "red"), errors.ErrInvalidColorSpec)
	req.Equal(domain.ColorPreference{}, store.Preference(id))
}
