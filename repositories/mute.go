package repositories

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const mutePrefix = "mute:"

// MuteRecord is the persisted state of a mute. A zero ExpiresAt means the
// mute is permanent.
type MuteRecord struct {
	By        string    `json:"by"`
	Reason    string    `json:"reason"`
	MutedAt   time.Time `json:"muted_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// MuteStore persists mutes in BadgerDB under "mute:{uuid}" keys. Timed mutes
// also carry a badger TTL so expired records disappear on their own.
type MuteStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMuteStore(db *badger.DB, log *slog.Logger) MuteStore {
	return MuteStore{db: db, log: log}
}

// Mute records a mute for id. A zero duration mutes permanently.
func (s MuteStore) Mute(id uuid.UUID, d time.Duration, by, reason string) error {
	record := MuteRecord{By: by, Reason: reason, MutedAt: time.Now().UTC()}
	if d > 0 {
		record.ExpiresAt = record.MutedAt.Add(d)
	}
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(muteKey(id), bytes)
		if d > 0 {
			entry = entry.WithTTL(d)
		}
		return txn.SetEntry(entry)
	})
}

func (s MuteStore) Unmute(id uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(muteKey(id))
	})
}

// IsMuted reports whether id currently has a live mute record.
func (s MuteStore) IsMuted(id uuid.UUID) bool {
	_, err := s.record(id)
	return err == nil
}

// RemainingMillis returns the time left on a timed mute. Permanent and
// expired mutes both report zero; callers distinguish them via IsMuted.
func (s MuteStore) RemainingMillis(id uuid.UUID) int64 {
	record, err := s.record(id)
	if err != nil || record.ExpiresAt.IsZero() {
		return 0
	}
	remaining := time.Until(record.ExpiresAt).Milliseconds()
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s MuteStore) record(id uuid.UUID) (MuteRecord, error) {
	var record MuteRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(muteKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		s.log.Warn("Failed to read mute record", "id", id, "err", err)
	}
	return record, err
}

func muteKey(id uuid.UUID) []byte {
	return []byte(mutePrefix + id.String())
}
