package logtail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	loggerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	levelStyles = map[string]lipgloss.Style{
		"debug": lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		"info":  lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
		"warn":  lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true),
		"error": lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
	}
)

// Format renders an entry on one line: time, level, logger, message, then
// the remaining fields. Raw entries are returned unchanged.
func Format(e Entry, color bool) string {
	if !e.Structured() {
		return e.Raw
	}
	paint := func(s lipgloss.Style, text string) string {
		if !color || text == "" {
			return text
		}
		return s.Render(text)
	}

	parts := make([]string, 0, 5)
	if e.Time != "" {
		parts = append(parts, paint(timeStyle, e.Time))
	}
	level := strings.ToUpper(e.Level)
	if len(level) < 5 {
		level += strings.Repeat(" ", 5-len(level))
	}
	parts = append(parts, paint(levelStyles[strings.ToLower(e.Level)], level))
	if e.Logger != "" {
		parts = append(parts, paint(loggerStyle, e.Logger))
	}
	parts = append(parts, e.Message)
	if pairs := e.FieldPairs(); len(pairs) > 0 {
		parts = append(parts, paint(fieldStyle, strings.Join(pairs, " ")))
	}
	return strings.Join(parts, " ")
}
