package state

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/five82/pokeview/internal/pokeapi"
	"github.com/five82/pokeview/internal/pokemon"
)

// PageSnapshot is the list view's state for one page index.
type PageSnapshot struct {
	PageIndex    int
	PerPage      int
	List         *pokeapi.PokemonList
	Details      map[int]pokeapi.Pokemon
	Phase        Phase
	ErrorMessage string
	Generation   uint64
	LastUpdated  time.Time
}

// Entry pairs a list reference with its resolved detail, if any.
type Entry struct {
	Name   string
	ID     int // 0 when the URL could not be parsed
	Detail *pokeapi.Pokemon
}

// TotalPages returns ceil(count/perPage), or 0 when either is non-positive.
func TotalPages(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

// TotalPages derives the page count from the fetched list.
func (s PageSnapshot) TotalPages() int {
	if s.List == nil {
		return 0
	}
	return TotalPages(s.List.Count, s.PerPage)
}

// Indicator renders "Page N of M". It renders "Page 1 of 0" for an empty
// catalog rather than erroring.
func (s PageSnapshot) Indicator() string {
	return fmt.Sprintf("Page %d of %d", s.PageIndex+1, s.TotalPages())
}

// HasPrevious reports whether a previous page exists.
func (s PageSnapshot) HasPrevious() bool {
	return s.PageIndex > 0
}

// HasNext reports whether a next page exists.
func (s PageSnapshot) HasNext() bool {
	return s.PageIndex < s.TotalPages()-1
}

// Entries returns the page entries in list order with their details.
// Entries whose detail was dropped have a nil Detail.
func (s PageSnapshot) Entries() []Entry {
	if s.List == nil {
		return nil
	}
	entries := make([]Entry, 0, len(s.List.Results))
	for _, ref := range s.List.Results {
		e := Entry{Name: ref.Name, ID: pokemon.IDFromResourceURL(ref.URL)}
		if d, ok := s.Details[e.ID]; ok && e.ID != 0 {
			e.Detail = &d
		}
		entries = append(entries, e)
	}
	return entries
}

// PageStore holds the latest PageSnapshot. Writes carry the generation
// returned by Begin; writes from a superseded generation are discarded.
type PageStore struct {
	mu       sync.RWMutex
	snapshot PageSnapshot
	gen      uint64
}

// Begin moves to Loading for pageIndex, drops the previous page's data and
// returns the generation for subsequent writes.
func (s *PageStore) Begin(pageIndex, perPage int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.snapshot = PageSnapshot{
		PageIndex:   pageIndex,
		PerPage:     perPage,
		Phase:       PhaseLoading,
		Generation:  s.gen,
		LastUpdated: time.Now(),
	}
	return s.gen
}

// SetList records the fetched index page while details are still loading.
func (s *PageStore) SetList(gen uint64, list *pokeapi.PokemonList) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.snapshot.List = list
	s.snapshot.LastUpdated = time.Now()
	return true
}

// Complete moves to Ready with details.
func (s *PageStore) Complete(gen uint64, details map[int]pokeapi.Pokemon) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.snapshot.Details = maps.Clone(details)
	if s.snapshot.Details == nil {
		s.snapshot.Details = make(map[int]pokeapi.Pokemon)
	}
	s.snapshot.Phase = PhaseReady
	s.snapshot.ErrorMessage = ""
	s.snapshot.LastUpdated = time.Now()
	return true
}

// Fail moves to Failed with message.
func (s *PageStore) Fail(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.snapshot.Phase = PhaseFailed
	s.snapshot.ErrorMessage = message
	s.snapshot.LastUpdated = time.Now()
	return true
}

// Snapshot returns a copy of the current state.
func (s *PageStore) Snapshot() PageSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Details = maps.Clone(s.snapshot.Details)
	if s.snapshot.List != nil {
		list := *s.snapshot.List
		list.Results = append([]pokeapi.NamedResource(nil), s.snapshot.List.Results...)
		snap.List = &list
	}
	return snap
}
