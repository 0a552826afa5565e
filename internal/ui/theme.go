package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette. Every theme shares the pokemon type colors.
type Theme struct {
	Name string

	Background    string
	Surface       string // header, footer
	SurfaceAlt    string // unfocused panels
	FocusBg       string
	SelectionBg   string
	SelectionText string
	Border        string
	BorderFocus   string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	TypeColors map[string]string
}

// Styles holds the text styles derived from a Theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	Logo        lipgloss.Style

	typeColors map[string]string
	badgeText  string
	muted      string
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		Logo:        fg(t.Warning).Bold(true),
		typeColors:  t.TypeColors,
		badgeText:   t.Background,
		muted:       t.Muted,
	}
}

// TypeStyle returns a badge style for a display token. Unknown tokens,
// including pokemon.MutedToken, use the theme's muted color.
func (s Styles) TypeStyle(token string) lipgloss.Style {
	color, ok := s.typeColors[token]
	if !ok {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.badgeText)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground pins every text style to bgColor so segments rendered
// inside a filled bar do not punch holes in it. Badges keep their own
// background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText, &out.Logo,
	} {
		*st = st.Background(bg)
	}
	return out
}

// themeList is in cycle order; the first entry is the fallback.
var themeList = []Theme{
	{
		// https://github.com/EdenEast/nightfox.nvim
		Name:       "Nightfox",
		Background: "#131a24", Surface: "#192330", SurfaceAlt: "#212e3f", FocusBg: "#29394f",
		SelectionBg: "#2b3b51", SelectionText: "#cdcecf",
		Border: "#39506d", BorderFocus: "#719cd6",
		Text: "#cdcecf", Muted: "#738091", Faint: "#71839b", Accent: "#719cd6",
		Success: "#81b29a", Warning: "#dbc074", Danger: "#c94f6d",
	},
	{
		// https://github.com/rebelot/kanagawa.nvim
		Name:       "Kanagawa",
		Background: "#16161D", Surface: "#1F1F28", SurfaceAlt: "#2A2A37", FocusBg: "#2A2A37",
		SelectionBg: "#2D4F67", SelectionText: "#DCD7BA",
		Border: "#54546D", BorderFocus: "#7E9CD8",
		Text: "#DCD7BA", Muted: "#C8C093", Faint: "#727169", Accent: "#7E9CD8",
		Success: "#98BB6C", Warning: "#E6C384", Danger: "#E46876",
	},
	{
		// Tailwind slate and sky.
		Name:       "Slate",
		Background: "#020617", Surface: "#0f172a", SurfaceAlt: "#1e293b", FocusBg: "#283548",
		SelectionBg: "#0284c7", SelectionText: "#f8fafc",
		Border: "#334155", BorderFocus: "#38bdf8",
		Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b", Accent: "#38bdf8",
		Success: "#22c55e", Warning: "#f59e0b", Danger: "#ef4444",
	},
}

// typeColors are the usual in-game badge colors, keyed by display token.
var typeColors = map[string]string{
	"type-normal":   "#A8A77A",
	"type-fire":     "#EE8130",
	"type-water":    "#6390F0",
	"type-electric": "#F7D02C",
	"type-grass":    "#7AC74C",
	"type-ice":      "#96D9D6",
	"type-fighting": "#C22E28",
	"type-poison":   "#A33EA1",
	"type-ground":   "#E2BF65",
	"type-flying":   "#A98FF3",
	"type-psychic":  "#F95587",
	"type-bug":      "#A6B91A",
	"type-rock":     "#B6A136",
	"type-ghost":    "#735797",
	"type-dragon":   "#6F35FC",
	"type-dark":     "#705746",
	"type-steel":    "#B7B7CE",
}

// GetTheme returns the named theme, or the first theme when unknown.
func GetTheme(name string) Theme {
	t := themeList[0]
	for _, candidate := range themeList {
		if candidate.Name == name {
			t = candidate
			break
		}
	}
	t.TypeColors = typeColors
	return t
}

// NextTheme returns the theme after current, wrapping around.
func NextTheme(current string) string {
	for i, t := range themeList {
		if t.Name == current {
			return themeList[(i+1)%len(themeList)].Name
		}
	}
	return themeList[0].Name
}

// ThemeNames lists the themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themeList))
	for i, t := range themeList {
		names[i] = t.Name
	}
	return names
}
