// Package favorites persists the user's favorited pokemon ids.
//
// The set lives under a single key as a JSON array of ints, in insertion
// order. Load never fails the caller: a missing or unreadable value yields
// an empty set. Every Toggle rewrites the whole array.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/five82/pokeview/internal/kv"
)

// StorageKey is the key the set is stored under.
const StorageKey = "pokemon-favorites"

// Set is an ordered set of positive ids. The zero value is empty. Sets are
// treated as values: Toggle returns a new Set and never mutates its input.
type Set struct {
	ids []int
}

// NewSet builds a Set from ids, dropping duplicates and non-positive values.
func NewSet(ids ...int) Set {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return Set{ids: out}
}

// Contains reports whether id is favorited.
func (s Set) Contains(id int) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns a copy of the ids in insertion order.
func (s Set) IDs() []int {
	return slices.Clone(s.ids)
}

// Len returns the number of favorites.
func (s Set) Len() int {
	return len(s.ids)
}

// Toggled returns a copy of s with id removed if present or appended if
// absent. It does not persist anything.
func (s Set) Toggled(id int) Set {
	if s.Contains(id) {
		out := make([]int, 0, len(s.ids))
		for _, v := range s.ids {
			if v != id {
				out = append(out, v)
			}
		}
		return Set{ids: out}
	}
	out := make([]int, len(s.ids), len(s.ids)+1)
	copy(out, s.ids)
	return Set{ids: append(out, id)}
}

// Store reads and writes the favorites set through a kv.Store.
type Store struct {
	kv     kv.Store
	logger *zap.Logger
}

// NewStore wraps backend. A nil logger is replaced with a no-op logger.
func NewStore(backend kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: backend, logger: logger.Named("favorites")}
}

// Load reads the persisted set. Missing, unreadable or malformed data
// degrades to an empty set.
func (s *Store) Load(ctx context.Context) Set {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn("read favorites failed", zap.Error(err))
		return Set{}
	}
	if !ok || raw == "" {
		return Set{}
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("stored favorites are not a JSON int array", zap.Error(err))
		return Set{}
	}
	return NewSet(ids...)
}

// Toggle returns set with id toggled and persists the full result. The
// returned Set reflects the toggle even when persisting fails.
func (s *Store) Toggle(ctx context.Context, set Set, id int) (Set, error) {
	if id <= 0 {
		return set, fmt.Errorf("invalid pokemon id %d", id)
	}
	next := set.Toggled(id)
	if err := s.Save(ctx, next); err != nil {
		return next, err
	}
	s.logger.Debug("favorites updated", zap.Int("id", id), zap.Bool("favorite", next.Contains(id)), zap.Int("count", next.Len()))
	return next, nil
}

// Save writes set in full.
func (s *Store) Save(ctx context.Context, set Set) error {
	ids := set.ids
	if ids == nil {
		ids = []int{}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(payload)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

// IsFavorite reports whether id is in set.
func IsFavorite(set Set, id int) bool {
	return set.Contains(id)
}
