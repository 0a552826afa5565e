package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// painter renders text segments on a fixed background. lipgloss resets the
// background between separately rendered segments, so spaces and joins are
// painted explicitly to keep rows solid.
type painter struct {
	bg    lipgloss.Color
	blank lipgloss.Style
}

func newPainter(bgColor string) painter {
	bg := lipgloss.Color(bgColor)
	return painter{bg: bg, blank: lipgloss.NewStyle().Background(bg)}
}

// Render applies style on the painter's background, word by word so runs of
// spaces keep the background too.
func (p painter) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(p.bg)
	if !strings.Contains(text, " ") {
		return style.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, p.Space())
}

func (p painter) Space() string { return p.Spaces(1) }

func (p painter) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return p.blank.Render(strings.Repeat(" ", n))
}

func (p painter) Join(parts []string, sep string) string {
	return strings.Join(parts, p.blank.Render(sep))
}

// FillLine pads content to width on the background.
func (p painter) FillLine(content string, width int) string {
	return p.blank.Width(width).Render(content)
}
