package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/pokeview/internal/app"
	"github.com/five82/pokeview/internal/render"
	"github.com/five82/pokeview/internal/state"
)

var (
	showRaw   bool
	showWidth int
	showStyle string
)

var showCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Print the details of one pokemon",
	Long:  `Print types, basic information, abilities and base stats for a pokemon given by national dex number or name.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print Markdown instead of rendering it")
	showCmd.Flags().IntVar(&showWidth, "width", 80, "wrap width for rendered output")
	showCmd.Flags().StringVar(&showStyle, "style", string(render.StyleAuto), "glamour style: auto, dark, light or ascii")
}

func runShow(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app.App) error {
		ctx := cmd.Context()
		snap := a.Detail.Load(ctx, args[0])
		if snap.Phase == state.PhaseFailed || snap.Detail == nil {
			return errors.New(app.NotFoundMessage)
		}

		favs := a.Favorites.Load(ctx)
		md := render.Markdown(*snap.Detail, favs.Contains(snap.Detail.ID))
		if showRaw {
			_, err := fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		}

		out, err := render.Terminal(md, showWidth, render.Style(showStyle))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	})
}
