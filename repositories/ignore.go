package repositories

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const ignorePrefix = "ignore:"

// IgnoreStore persists one-directional ignore pairs in BadgerDB under
// "ignore:{viewer}:{sender}" keys. The value only records when the choice
// was made; existence of the key is the fact.
type IgnoreStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewIgnoreStore(db *badger.DB, log *slog.Logger) IgnoreStore {
	return IgnoreStore{db: db, log: log}
}

// Ignore records that viewer no longer wants to see sender's messages.
func (s IgnoreStore) Ignore(viewer, sender uuid.UUID) error {
	since := time.Now().UTC().Format(time.RFC3339)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(ignoreKey(viewer, sender), []byte(since))
	})
}

func (s IgnoreStore) Unignore(viewer, sender uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(ignoreKey(viewer, sender))
	})
}

// IsIgnored reports whether viewer previously chose to ignore sender.
func (s IgnoreStore) IsIgnored(viewer, sender uuid.UUID) bool {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(ignoreKey(viewer, sender))
		return err
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		s.log.Warn("Failed to read ignore pair", "viewer", viewer, "sender", sender, "err", err)
	}
	return err == nil
}

func ignoreKey(viewer, sender uuid.UUID) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", ignorePrefix, viewer, sender))
}
