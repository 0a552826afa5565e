// Package render turns a pokemon record into Markdown and renders it for
// the terminal with glamour. The TUI detail view and `pokeview show` share it.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/five82/pokeview/internal/pokeapi"
	"github.com/five82/pokeview/internal/pokemon"
)

const (
	statBarWidth = 20
	defaultWrap  = 80
)

// Markdown renders the detail sections: header, types, basic information,
// abilities and base stats.
func Markdown(p pokeapi.Pokemon, favorite bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", pokemon.TitleCase(p.Name), pokemon.FormatDexNumber(p.ID))
	if favorite {
		b.WriteString("★ **Favorite**\n\n")
	}

	image := pokemon.SelectImage(p)
	fmt.Fprintf(&b, "Artwork: %s\n\n", image)

	if types := pokemon.TypeNames(p); len(types) > 0 {
		labels := make([]string, 0, len(types))
		for _, t := range types {
			labels = append(labels, "`"+pokemon.TitleCase(t)+"`")
		}
		fmt.Fprintf(&b, "**Types:** %s\n\n", strings.Join(labels, " "))
	}

	b.WriteString("## Basic Information\n\n")
	b.WriteString("| Height | Weight | Base Experience | Species |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %s | %s | %d | %s |\n\n",
		pokemon.FormatHeight(p.Height),
		pokemon.FormatWeight(p.Weight),
		p.BaseExperience,
		speciesLabel(p),
	)

	if len(p.Abilities) > 0 {
		b.WriteString("## Abilities\n\n")
		for _, a := range p.Abilities {
			fmt.Fprintf(&b, "- %s\n", pokemon.AbilityLabel(a))
		}
		b.WriteString("\n")
	}

	if len(p.Stats) > 0 {
		b.WriteString("## Base Stats\n\n")
		b.WriteString("| Stat | Value | |\n")
		b.WriteString("| --- | ---: | --- |\n")
		for _, s := range p.Stats {
			fmt.Fprintf(&b, "| %s | %d | `%s` |\n", pokemon.FormatStatName(s.Stat.Name), s.BaseStat, StatBar(s.BaseStat, statBarWidth))
		}
	}

	return b.String()
}

// StatBar draws a fixed-width bar filled in proportion to base/255.
func StatBar(base, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pokemon.StatPercent(base)/100*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func speciesLabel(p pokeapi.Pokemon) string {
	if p.Species.Name == "" {
		return "-"
	}
	return pokemon.TitleCase(p.Species.Name)
}

// Style selects the glamour style for Terminal.
type Style string

const (
	// StyleAuto detects the terminal background. Do not use it while a
	// Bubble Tea program owns the terminal.
	StyleAuto  Style = "auto"
	StyleDark  Style = "dark"
	StyleLight Style = "light"
	StyleASCII Style = "ascii"
)

// Terminal renders Markdown for a terminal of the given width.
func Terminal(markdown string, width int, style Style) (string, error) {
	if width <= 0 {
		width = defaultWrap
	}
	styleOpt := glamour.WithStylePath(string(style))
	if style == StyleAuto || style == "" {
		styleOpt = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
