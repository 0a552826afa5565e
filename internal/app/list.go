package app

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/pokeview/internal/pokeapi"
	"github.com/five82/pokeview/internal/pokemon"
	"github.com/five82/pokeview/internal/state"
)

// PageErrorMessage is shown when the index page cannot be fetched.
const PageErrorMessage = "Failed to load Pokemon data"

// ListLoader loads one catalog page and the details of every entry on it.
type ListLoader struct {
	fetcher pokeapi.Fetcher
	store   *state.PageStore
	perPage int
	logger  *zap.Logger
}

// NewListLoader builds a loader. perPage <= 0 uses pokeapi.DefaultPageLimit
// and a nil store or logger is replaced with a fresh one.
func NewListLoader(fetcher pokeapi.Fetcher, store *state.PageStore, perPage int, logger *zap.Logger) *ListLoader {
	if perPage <= 0 {
		perPage = pokeapi.DefaultPageLimit
	}
	if store == nil {
		store = &state.PageStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListLoader{fetcher: fetcher, store: store, perPage: perPage, logger: logger.Named("list")}
}

// PerPage returns the page size used for every fetch.
func (l *ListLoader) PerPage() int { return l.perPage }

// Store exposes the backing page store.
func (l *ListLoader) Store() *state.PageStore { return l.store }

// Load fetches page pageIndex, then fans out one detail request per entry
// and waits for all of them. Detail failures are dropped; only an index
// failure marks the page Failed. Load returns the store's snapshot, which
// belongs to a newer load when this one was superseded.
func (l *ListLoader) Load(ctx context.Context, pageIndex int) state.PageSnapshot {
	if pageIndex < 0 {
		pageIndex = 0
	}
	gen := l.store.Begin(pageIndex, l.perPage)
	logger := l.logger.With(zap.Int("page", pageIndex), zap.Uint64("generation", gen))

	list, err := l.fetcher.FetchPage(ctx, l.perPage, pageIndex*l.perPage)
	if err != nil {
		logger.Warn("page fetch failed", zap.Stringer("kind", pokeapi.KindOf(err)), zap.Error(err))
		l.store.Fail(gen, PageErrorMessage)
		return l.store.Snapshot()
	}
	if !l.store.SetList(gen, list) {
		logger.Debug("discarding superseded page")
		return l.store.Snapshot()
	}

	details := l.fetchDetails(ctx, logger, list.Results)
	if !l.store.Complete(gen, details) {
		logger.Debug("discarding superseded details")
		return l.store.Snapshot()
	}
	logger.Info("page loaded",
		zap.Int("entries", len(list.Results)),
		zap.Int("details", len(details)),
		zap.Int("count", list.Count),
	)
	return l.store.Snapshot()
}

// fetchDetails settles every request before returning. Goroutines never
// report an error to the group so one failure cannot cancel the rest.
func (l *ListLoader) fetchDetails(ctx context.Context, logger *zap.Logger, refs []pokeapi.NamedResource) map[int]pokeapi.Pokemon {
	var (
		mu      sync.Mutex
		details = make(map[int]pokeapi.Pokemon, len(refs))
		eg      errgroup.Group
	)
	for _, ref := range refs {
		id := pokemon.IDFromResourceURL(ref.URL)
		if id == 0 {
			logger.Debug("skipping entry without id", zap.String("name", ref.Name), zap.String("url", ref.URL))
			continue
		}
		eg.Go(func() error {
			p, err := l.fetcher.FetchDetail(ctx, strconv.Itoa(id))
			if err != nil {
				logger.Debug("detail fetch dropped", zap.Int("id", id), zap.String("name", ref.Name), zap.Error(err))
				return nil
			}
			mu.Lock()
			details[id] = *p
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()
	return details
}
