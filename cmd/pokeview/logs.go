package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/five82/pokeview/internal/config"
	"github.com/five82/pokeview/internal/logtail"
)

var (
	logsLines int
	logsLevel string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the end of the pokeview log",
	Args:  cobra.NoArgs,
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 40, "number of lines to read, 0 for all")
	logsCmd.Flags().StringVar(&logsLevel, "level", "debug", "minimum level to print")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	path := cfg.Log.File
	if logFile != "" {
		path = logFile
	}
	if path == "-" {
		return fmt.Errorf("logging to stderr, nothing to read")
	}

	entries, err := logtail.ReadEntries(path, logsLines, logsLevel)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, err := fmt.Fprintf(out, "No log entries in %s\n", path)
		return err
	}
	color := out == os.Stdout && term.IsTerminal(os.Stdout.Fd())
	for _, e := range entries {
		if _, err := fmt.Fprintln(out, logtail.Format(e, color)); err != nil {
			return err
		}
	}
	return nil
}
