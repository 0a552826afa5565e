// Package main is the pokeview command: a terminal PokeAPI browser.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/pokeview/internal/app"
	"github.com/five82/pokeview/internal/kv"
)

var (
	configPath string
	prefsPath  string
	backend    string
	logFile    string
	debug      bool
	ephemeral  bool
)

var rootCmd = &cobra.Command{
	Use:   "pokeview [/pokemon/<id|name>]",
	Short: "Browse the PokeAPI catalog in the terminal",
	Long: `pokeview lists the PokeAPI catalog page by page, shows stats and abilities
for a single pokemon, and keeps a local list of favorites.

Run without a subcommand to start the interactive viewer. Pass a route
such as /pokemon/25 to open it on that pokemon.`,
	SilenceUsage: true,
	Args:         cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := appOptions()
		if len(args) == 1 {
			opts.Route = args[0]
		}
		return app.Run(cmd.Context(), opts)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/pokeview/config.toml)")
	flags.StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/pokeview/prefs.toml)")
	flags.StringVar(&backend, "backend", "", "favorites storage backend: file, redis, sqlite or memory")
	flags.StringVar(&logFile, "log-file", "", `log destination, "-" for stderr (default ~/.local/share/pokeview/pokeview.log)`)
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.BoolVar(&ephemeral, "ephemeral", false, "keep favorites in memory for this run only")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(favCmd)
	rootCmd.AddCommand(logsCmd)
}

func appOptions() app.Options {
	opts := app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Backend:    backend,
		LogFile:    logFile,
		Debug:      debug,
	}
	if ephemeral {
		opts.Backend = kv.BackendMemory
	}
	return opts
}

// withApp builds the application for a one-shot command and closes it
// afterwards.
func withApp(fn func(a *app.App) error) error {
	a, err := app.New(appOptions())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(a)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
