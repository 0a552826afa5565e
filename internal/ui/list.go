package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokeview/internal/pokemon"
	"github.com/five82/pokeview/internal/state"
)

const (
	dexColWidth  = 6
	nameColWidth = 14
	typeColWidth = 22
)

// renderList renders the catalog page: spinner while loading, the error
// banner on failure, otherwise the rows and the pager.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	switch m.pageSnap.Phase {
	case state.PhaseLoading, state.PhaseIdle:
		msg := m.spinner.View() + " " + styles.MutedText.Render("Loading Pokemon...")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	case state.PhaseFailed:
		msg := styles.DangerText.Render(m.pageSnap.ErrorMessage) + "\n" +
			styles.MutedText.Render("press r to retry")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	entries := m.pageSnap.Entries()
	if len(entries) == 0 {
		msg := styles.MutedText.Render("No Pokemon found")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	innerWidth := m.width - 2
	bgColor := m.theme.FocusBg

	// Rows plus a blank line and the pager must fit inside the box.
	visible := max(height-2-2, 1)
	start := 0
	if m.selectedRow >= visible {
		start = m.selectedRow - visible + 1
	}
	end := min(start+visible, len(entries))

	lines := make([]string, 0, end-start+2)
	for i := start; i < end; i++ {
		selected := i == m.selectedRow
		rowBg := bgColor
		if selected {
			rowBg = m.theme.SelectionBg
		}
		content := m.formatListRow(entries[i], rowBg, selected)
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(rowBg)).
			Width(innerWidth).
			Render(content))
	}
	lines = append(lines, "", m.renderPager(bgColor))

	return m.renderTitledBox("Pokemon", strings.Join(lines, "\n"), m.width, height, true)
}

// formatListRow formats one entry: "#025  Pikachu  Electric  0.4 m  6.0 kg  ★".
// Entries whose detail was dropped show only what the list carried.
func (m Model) formatListRow(e state.Entry, bgColor string, selected bool) string {
	bg := newPainter(bgColor)
	styles := m.theme.Styles()

	idStyle, nameStyle, metaStyle := styles.MutedText, styles.Text.Bold(true), styles.MutedText
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle, nameStyle, metaStyle = selText, selText.Bold(true), selText
	}

	dex := "#???"
	if e.ID > 0 {
		dex = pokemon.FormatDexNumber(e.ID)
	}
	row := bg.Render(padRight(dex, dexColWidth), idStyle) +
		bg.Render(padRight(truncate(pokemon.TitleCase(e.Name), nameColWidth-1), nameColWidth), nameStyle)

	if e.Detail == nil {
		hint := "details unavailable"
		if e.ID == 0 {
			hint = "no id in listing"
		}
		return row + bg.Render(hint, styles.FaintText)
	}

	badges := make([]string, 0, len(e.Detail.Types))
	for _, name := range pokemon.TypeNames(*e.Detail) {
		badges = append(badges, styles.TypeStyle(pokemon.TypeColorToken(name)).Render(pokemon.TitleCase(name)))
	}
	typeCol := strings.Join(badges, bg.Space())
	if w := lipgloss.Width(typeCol); w < typeColWidth {
		typeCol += bg.Spaces(typeColWidth - w)
	}

	meta := fmt.Sprintf("%8s  %9s", pokemon.FormatHeight(e.Detail.Height), pokemon.FormatWeight(e.Detail.Weight))
	row += typeCol + bg.Render(meta, metaStyle)

	if m.favs.Contains(e.ID) {
		row += bg.Space() + bg.Space() + bg.Render("★", styles.WarningText)
	}
	return row
}

// renderPager renders "< Previous   Page N of M   Next >", dimming the
// directions that are unavailable.
func (m Model) renderPager(bgColor string) string {
	bg := newPainter(bgColor)
	styles := m.theme.Styles()

	prevStyle, nextStyle := styles.AccentText, styles.AccentText
	if !m.pageSnap.HasPrevious() {
		prevStyle = styles.FaintText
	}
	if !m.pageSnap.HasNext() {
		nextStyle = styles.FaintText
	}

	pager := bg.Render("< Previous", prevStyle) + bg.Spaces(3) +
		bg.Render(m.pageSnap.Indicator(), styles.Text) + bg.Spaces(3) +
		bg.Render("Next >", nextStyle)
	return lipgloss.PlaceHorizontal(m.width-2, lipgloss.Center, pager,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := newPainter(bgColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
