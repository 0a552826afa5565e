package state

import (
	"sync"
	"time"

	"github.com/five82/pokeview/internal/pokeapi"
)

// DetailSnapshot is the detail view's state for one route parameter.
type DetailSnapshot struct {
	Param        string
	Detail       *pokeapi.Pokemon
	Phase        Phase
	ErrorMessage string
	Generation   uint64
	LastUpdated  time.Time
}

// DetailStore holds the latest DetailSnapshot with the same generation
// rules as PageStore.
type DetailStore struct {
	mu       sync.RWMutex
	snapshot DetailSnapshot
	gen      uint64
}

// Begin moves to Loading for param and returns the write generation.
func (s *DetailStore) Begin(param string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.snapshot = DetailSnapshot{
		Param:       param,
		Phase:       PhaseLoading,
		Generation:  s.gen,
		LastUpdated: time.Now(),
	}
	return s.gen
}

// Complete moves to Ready with p.
func (s *DetailStore) Complete(gen uint64, p pokeapi.Pokemon) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.snapshot.Detail = &p
	s.snapshot.Phase = PhaseReady
	s.snapshot.ErrorMessage = ""
	s.snapshot.LastUpdated = time.Now()
	return true
}

// Fail moves to Failed with message.
func (s *DetailStore) Fail(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.snapshot.Detail = nil
	s.snapshot.Phase = PhaseFailed
	s.snapshot.ErrorMessage = message
	s.snapshot.LastUpdated = time.Now()
	return true
}

// Snapshot returns a copy of the current state.
func (s *DetailStore) Snapshot() DetailSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.Detail != nil {
		d := *s.snapshot.Detail
		snap.Detail = &d
	}
	return snap
}
