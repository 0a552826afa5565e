package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/pokeview/internal/app"
	"github.com/five82/pokeview/internal/pokemon"
)

var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage favorites",
}

var favListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print favorite ids in the order they were added",
	Args:  cobra.NoArgs,
	RunE:  runFavList,
}

var favToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Add a pokemon to favorites, or remove it if already present",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavToggle,
}

func init() {
	favCmd.AddCommand(favListCmd)
	favCmd.AddCommand(favToggleCmd)
}

func runFavList(cmd *cobra.Command, _ []string) error {
	return withApp(func(a *app.App) error {
		set := a.Favorites.Load(cmd.Context())
		out := cmd.OutOrStdout()
		if set.Len() == 0 {
			_, err := fmt.Fprintln(out, "No favorites yet.")
			return err
		}
		for _, id := range set.IDs() {
			if _, err := fmt.Fprintln(out, pokemon.FormatDexNumber(id)); err != nil {
				return err
			}
		}
		return nil
	})
}

func runFavToggle(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid pokemon id %q", args[0])
	}
	return withApp(func(a *app.App) error {
		ctx := cmd.Context()
		next, err := a.Favorites.Toggle(ctx, a.Favorites.Load(ctx), id)
		if err != nil {
			return err
		}
		verb := "Removed"
		prep := "from"
		if next.Contains(id) {
			verb, prep = "Added", "to"
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s favorites.\n", verb, pokemon.FormatDexNumber(id), prep)
		return err
	})
}
