package app

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/pokeview/internal/pokeapi"
	"github.com/five82/pokeview/internal/state"
)

// NotFoundMessage is shown for every detail failure, whatever the cause.
const NotFoundMessage = "Pokemon not found"

// DetailLoader loads the record for a single route parameter.
type DetailLoader struct {
	fetcher pokeapi.Fetcher
	store   *state.DetailStore
	logger  *zap.Logger
}

// NewDetailLoader builds a loader; nil store or logger get defaults.
func NewDetailLoader(fetcher pokeapi.Fetcher, store *state.DetailStore, logger *zap.Logger) *DetailLoader {
	if store == nil {
		store = &state.DetailStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailLoader{fetcher: fetcher, store: store, logger: logger.Named("detail")}
}

// Store exposes the backing detail store.
func (d *DetailLoader) Store() *state.DetailStore { return d.store }

// Load resolves param and fetches it. Unresolvable parameters fail without
// a request.
func (d *DetailLoader) Load(ctx context.Context, param string) state.DetailSnapshot {
	gen := d.store.Begin(param)
	logger := d.logger.With(zap.String("param", param), zap.Uint64("generation", gen))

	key, ok := ResolveParam(param)
	if !ok {
		logger.Debug("unresolvable detail parameter")
		d.store.Fail(gen, NotFoundMessage)
		return d.store.Snapshot()
	}

	p, err := d.fetcher.FetchDetail(ctx, key)
	if err != nil {
		logger.Warn("detail fetch failed", zap.Stringer("kind", pokeapi.KindOf(err)), zap.Error(err))
		d.store.Fail(gen, NotFoundMessage)
		return d.store.Snapshot()
	}
	if !d.store.Complete(gen, *p) {
		logger.Debug("discarding superseded detail")
	}
	return d.store.Snapshot()
}

// ResolveParam turns a route parameter into a fetch key. Numeric
// parameters must be positive and are normalized ("025" becomes "25");
// anything else is used as a name. Blank parameters do not resolve.
func ResolveParam(param string) (string, bool) {
	trimmed := strings.TrimSpace(param)
	if trimmed == "" {
		return "", false
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n <= 0 {
			return "", false
		}
		return strconv.Itoa(n), true
	}
	return trimmed, true
}
