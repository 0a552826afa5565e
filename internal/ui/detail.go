package ui

import (
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/pokeview/internal/pokemon"
	"github.com/five82/pokeview/internal/render"
	"github.com/five82/pokeview/internal/state"
)

// detailViewportSize is the area inside the titled box.
func (m Model) detailViewportSize() (int, int) {
	return max(m.width-2, 1), max(m.contentHeight()-2, 1)
}

// updateDetailViewport re-renders the detail document into the viewport.
// It runs when the record, the favorites set or the width changes.
func (m *Model) updateDetailViewport() {
	d := m.detailSnap.Detail
	if !m.ready || m.detailSnap.Phase != state.PhaseReady || d == nil {
		return
	}
	md := render.Markdown(*d, m.favs.Contains(d.ID))
	out, err := render.Terminal(md, max(m.detailViewport.Width-2, 20), render.StyleDark)
	if err != nil {
		m.logger.Debug("markdown render failed", zap.Error(err))
		out = md
	}
	m.detailViewport.SetContent(out)
}

// renderDetail renders the detail route.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	switch m.detailSnap.Phase {
	case state.PhaseLoading, state.PhaseIdle:
		msg := m.spinner.View() + " " + styles.MutedText.Render("Loading "+m.route.Param+"...")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	case state.PhaseFailed:
		msg := styles.DangerText.Render(m.detailSnap.ErrorMessage) + "\n" +
			styles.MutedText.Render("esc to go back")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	title := m.route.Param
	if d := m.detailSnap.Detail; d != nil {
		title = pokemon.TitleCase(d.Name) + " " + pokemon.FormatDexNumber(d.ID)
		if m.favs.Contains(d.ID) {
			title += " ★"
		}
	}
	return m.renderTitledBox(title, m.detailViewport.View(), m.width, height, true)
}
