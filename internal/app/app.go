package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/pokeview/internal/config"
	"github.com/five82/pokeview/internal/favorites"
	"github.com/five82/pokeview/internal/kv"
	"github.com/five82/pokeview/internal/logging"
	"github.com/five82/pokeview/internal/pokeapi"
	"github.com/five82/pokeview/internal/prefs"
	"github.com/five82/pokeview/internal/state"
	"github.com/five82/pokeview/internal/ui"
)

// Options configure the pokeview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/pokeview/prefs.toml
	Backend    string // overrides storage.backend when set
	LogFile    string // overrides log.file when set; "-" is stderr
	Debug      bool
	Route      string // TUI start location, "/" or "/pokemon/<id|name>"
}

// App is the composition root shared by the TUI and the CLI commands.
type App struct {
	Config    config.Config
	Logger    *zap.Logger
	Client    *pokeapi.Client
	Favorites *favorites.Store
	List      *ListLoader
	Detail    *DetailLoader

	storage kv.Store
}

// New loads configuration and wires every component. Callers must Close
// the returned App.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Backend != "" {
		cfg.Storage.Backend = opts.Backend
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File, Debug: opts.Debug})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	for _, w := range cfg.Warnings {
		logger.Warn("config fallback", zap.String("detail", w))
	}

	client, err := pokeapi.NewClient(cfg.API.BaseURL, pokeapi.Options{Timeout: cfg.API.Timeout, Logger: logger})
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init pokeapi client: %w", err)
	}

	storage, err := kv.Open(kv.Config{
		Backend:   cfg.Storage.Backend,
		Path:      cfg.Storage.Path,
		RedisAddr: cfg.Storage.RedisAddr,
		RedisDB:   cfg.Storage.RedisDB,
	})
	if err != nil {
		_ = client.Close()
		_ = logger.Sync()
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}

	logger.Info("pokeview starting",
		zap.String("base_url", client.BaseURL()),
		zap.String("storage", cfg.Storage.Backend),
		zap.Int("page_size", cfg.Catalog.PageSize),
		zap.String("config", cfg.Source),
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Client:    client,
		Favorites: favorites.NewStore(storage, logger),
		List:      NewListLoader(client, &state.PageStore{}, cfg.Catalog.PageSize, logger),
		Detail:    NewDetailLoader(client, &state.DetailStore{}, logger),
		storage:   storage,
	}, nil
}

// Close releases storage and the HTTP client and flushes the logger.
func (a *App) Close() error {
	var errs []error
	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	if a.Client != nil {
		if err := a.Client.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close client: %w", err))
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return errors.Join(errs...)
}

// Run boots the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	a, err := New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		a.Logger.Warn("prefs unreadable, using defaults", zap.Error(err))
	}

	return ui.Run(ui.Options{
		Context:    ctx,
		Pages:      a.List,
		Details:    a.Detail,
		Favorites:  a.Favorites,
		Logger:     a.Logger,
		BaseURL:    a.Client.BaseURL(),
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		StartRoute: ui.ParseRoute(opts.Route),
	})
}
