package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokeview/internal/state"
)

// renderHeader renders the status bar: logo, location, page and favorites.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newPainter(m.theme.Surface)

	parts := []string{
		bg.Render("pokeview", styles.Logo),
		bg.Render(m.route.Path(), styles.AccentText),
	}

	if m.route.Kind == RouteList {
		switch m.pageSnap.Phase {
		case state.PhaseReady:
			parts = append(parts, bg.Render(m.pageSnap.Indicator(), styles.Text))
			if m.pageSnap.List != nil {
				parts = append(parts,
					bg.Render("Total:", styles.MutedText)+bg.Space()+
						bg.Render(fmt.Sprintf("%d", m.pageSnap.List.Count), styles.Text))
			}
		case state.PhaseLoading:
			parts = append(parts, bg.Render(fmt.Sprintf("Page %d", m.page+1), styles.MutedText))
		}
	}

	parts = append(parts,
		bg.Render("★", styles.WarningText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.favs.Len()), styles.Text))

	if m.baseURL != "" && m.width >= 100 {
		parts = append(parts, bg.Render(truncateMiddle(m.baseURL, 40), styles.FaintText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderCommandBar shows the search input while searching, otherwise the
// keys that apply to the current route.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := newPainter(m.theme.Background)

	if m.searching {
		return bg.FillLine(m.searchInput.View()+bg.Spaces(2)+
			bg.Render("enter to open, esc to cancel", styles.FaintText), m.width)
	}

	type hint struct{ key, desc string }
	hints := []hint{{"/", "search"}, {"f", "favorite"}}
	if m.route.Kind == RouteDetail {
		hints = append(hints, hint{"esc", "back"}, hint{"y", "copy link"}, hint{"j/k", "scroll"})
	} else {
		hints = append(hints, hint{"enter", "open"}, hint{"n/p", "page"}, hint{"j/k", "move"})
	}
	hints = append(hints, hint{"T", "theme"}, hint{"?", "help"}, hint{"q", "quit"})

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.Render("<"+h.key+">", styles.WarningText)+bg.Space()+bg.Render(h.desc, styles.MutedText))
	}
	return bg.FillLine(bg.Join(parts, "  "), m.width)
}

// renderFooter shows the last action's outcome.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newPainter(m.theme.Surface)
	if m.flash == "" {
		return bg.FillLine(bg.Render(m.theme.Name, styles.FaintText), m.width)
	}
	style := styles.SuccessText
	if m.flashErr {
		style = styles.DangerText
	}
	return bg.FillLine(bg.Render(m.flash, style), m.width)
}
