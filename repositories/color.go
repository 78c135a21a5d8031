package repositories

import (
	"chat-render/domain"
	"chat-render/errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var colorValidate = validator.New()

// ColorStore keeps per-sender chat color preferences in memory behind a
// read/write mutex. Durable storage of preferences belongs to the host; the
// rendering pipeline only needs lookups.
type ColorStore struct {
	mu    sync.RWMutex
	prefs map[uuid.UUID]domain.ColorPreference
}

func NewColorStore() *ColorStore {
	return &ColorStore{prefs: make(map[uuid.UUID]domain.ColorPreference)}
}

// Preference returns the stored preference for id, zero when none was set.
func (s *ColorStore) Preference(id uuid.UUID) domain.ColorPreference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs[id]
}

// SetCustom stores a custom color spec: either a "#RRGGBB" hex color or a
// "<gradient:...>" opening tag. Anything else is rejected.
func (s *ColorStore) SetCustom(id uuid.UUID, spec string) error {
	if !strings.HasPrefix(spec, "<gradient:") {
		if err := colorValidate.Var(spec, "hexcolor"); err != nil {
			return fmt.Errorf("%w: %q", errors.ErrInvalidColorSpec, spec)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pref := s.prefs[id]
	pref.Custom = spec
	s.prefs[id] = pref
	return nil
}

// SetTag stores a named color tag such as "<red>".
func (s *ColorStore) SetTag(id uuid.UUID, tag string) error {
	if len(tag) < 3 || !strings.HasPrefix(tag, "<") || !strings.HasSuffix(tag, ">") {
		return fmt.Errorf("%w: %q", errors.ErrInvalidColorSpec, tag)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pref := s.prefs[id]
	pref.Tag = tag
	s.prefs[id] = pref
	return nil
}

// Clear removes every preference stored for id.
func (s *ColorStore) Clear(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.prefs, id)
}
