package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/pokeview/internal/app"
	"github.com/five82/pokeview/internal/favorites"
	"github.com/five82/pokeview/internal/pokemon"
	"github.com/five82/pokeview/internal/state"
)

var (
	listPage  int
	listLimit int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one catalog page",
	Long:  `Print one page of the catalog with type, height and weight for every entry. Entries whose details could not be fetched are still listed.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number, starting at 1")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "entries per page (default catalog.page_size)")
}

func runList(cmd *cobra.Command, _ []string) error {
	if listPage < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", listPage)
	}
	return withApp(func(a *app.App) error {
		loader := a.List
		if listLimit > 0 {
			loader = app.NewListLoader(a.Client, nil, listLimit, a.Logger)
		}
		ctx := cmd.Context()
		snap := loader.Load(ctx, listPage-1)
		if snap.Phase == state.PhaseFailed {
			return errors.New(snap.ErrorMessage)
		}
		favs := a.Favorites.Load(ctx)
		_, err := fmt.Fprintln(cmd.OutOrStdout(), formatPage(snap, favs))
		return err
	})
}

// formatPage renders a page snapshot as a borderless table with the page
// indicator underneath.
func formatPage(snap state.PageSnapshot, favs favorites.Set) string {
	rows := make([][]string, 0, len(snap.Entries()))
	for _, e := range snap.Entries() {
		rows = append(rows, entryRow(e, favs))
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("NO.", "NAME", "TYPES", "HEIGHT", "WEIGHT", "FAV").
		Rows(rows...)

	total := 0
	if snap.List != nil {
		total = snap.List.Count
	}
	return t.Render() + "\n" + fmt.Sprintf("%s (%d total)", snap.Indicator(), total)
}

func entryRow(e state.Entry, favs favorites.Set) []string {
	dex := "#???"
	if e.ID > 0 {
		dex = pokemon.FormatDexNumber(e.ID)
	}
	fav := ""
	if e.ID > 0 && favs.Contains(e.ID) {
		fav = "★"
	}
	if e.Detail == nil {
		return []string{dex, pokemon.TitleCase(e.Name), "-", "-", "-", fav}
	}
	types := pokemon.TypeNames(*e.Detail)
	for i, t := range types {
		types[i] = pokemon.TitleCase(t)
	}
	return []string{
		dex,
		pokemon.TitleCase(e.Detail.Name),
		strings.Join(types, "/"),
		pokemon.FormatHeight(e.Detail.Height),
		pokemon.FormatWeight(e.Detail.Weight),
		fav,
	}
}
