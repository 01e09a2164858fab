// Package bookmark holds the only durable state the dashboard owns: the
// set of bookmarked employee identifiers.
package bookmark

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// StorageKey names the persisted entry, carried over from the
// dashboard's original localStorage key.
const StorageKey = "hr-bookmarks"

// schemaVersion tags the persisted payload so a future layout change
// can migrate instead of guessing.
const schemaVersion = 1

// Storage is the key-value port the store persists through. The sqlite
// adapter implements it in production; tests swap in an in-memory fake.
type Storage interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

type persistedSet struct {
	Version int     `json:"version"`
	IDs     []int64 `json:"ids"`
}

// Store is an insertion-ordered set of employee ids. Mutations
// re-serialize the whole set; there are no delta writes. A read
// immediately after a write always sees the new value.
type Store struct {
	storage Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	ids   []int64
	index map[int64]struct{}
}

// NewStore loads prior state from storage. A missing or corrupt
// persisted value means "no bookmarks", never an error.
func NewStore(storage Storage, logger *slog.Logger) *Store {
	s := &Store{
		storage: storage,
		logger:  logger,
		index:   make(map[int64]struct{}),
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Warn("failed to load bookmarks, starting empty", "error", err)
		return
	}
	if !ok || len(raw) == 0 {
		return
	}

	ids, err := decodePersisted(raw)
	if err != nil {
		s.logger.Warn("corrupt bookmark payload, starting empty", "error", err)
		return
	}

	for _, id := range ids {
		if _, dup := s.index[id]; dup {
			continue
		}
		s.ids = append(s.ids, id)
		s.index[id] = struct{}{}
	}

	s.logger.Info("bookmarks loaded", "count", len(s.ids))
}

// decodePersisted accepts the current versioned envelope and the legacy
// bare-array layout older deployments wrote.
func decodePersisted(raw []byte) ([]int64, error) {
	var envelope persistedSet
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Version > 0 {
		return envelope.IDs, nil
	}

	var legacy []int64
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, err
	}
	return legacy, nil
}

// Add inserts an id; adding an already-bookmarked id is a no-op, so
// count-based consumers never double count.
func (s *Store) Add(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[id]; exists {
		return nil
	}

	s.ids = append(s.ids, id)
	s.index[id] = struct{}{}
	return s.persistLocked()
}

// Remove drops an id; removing an absent id is a no-op.
func (s *Store) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[id]; !exists {
		return nil
	}

	delete(s.index, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return s.persistLocked()
}

func (s *Store) Has(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// All returns the current set in insertion order. The order is
// preserved but carries no meaning.
func (s *Store) All() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *Store) persistLocked() error {
	payload, err := json.Marshal(persistedSet{Version: schemaVersion, IDs: s.ids})
	if err != nil {
		return err
	}
	if err := s.storage.Set(StorageKey, payload); err != nil {
		s.logger.Error("failed to persist bookmarks", "error", err, "count", len(s.ids))
		return err
	}
	return nil
}
