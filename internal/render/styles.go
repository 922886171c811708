// Package render turns skills, dashboards and alerts into styled terminal
// text for the interactive client.
package render

import (
	"strings"

	"github.com/Sathvik1533/Skillsync/internal/models"
	"github.com/charmbracelet/lipgloss"
)

// palette is the set of colours for one theme.
type palette struct {
	accent    lipgloss.Color
	text      lipgloss.Color
	secondary lipgloss.Color
	border    lipgloss.Color
	success   lipgloss.Color
	danger    lipgloss.Color
	info      lipgloss.Color
	levels    map[string]lipgloss.Color
}

var lightPalette = palette{
	accent:    lipgloss.Color("#4f46e5"),
	text:      lipgloss.Color("#1f2937"),
	secondary: lipgloss.Color("#6b7280"),
	border:    lipgloss.Color("#d1d5db"),
	success:   lipgloss.Color("#059669"),
	danger:    lipgloss.Color("#dc2626"),
	info:      lipgloss.Color("#2563eb"),
	levels: map[string]lipgloss.Color{
		"learning":     lipgloss.Color("#d97706"),
		"beginner":     lipgloss.Color("#0891b2"),
		"intermediate": lipgloss.Color("#2563eb"),
		"advanced":     lipgloss.Color("#7c3aed"),
		"expert":       lipgloss.Color("#db2777"),
		"completed":    lipgloss.Color("#059669"),
	},
}

var darkPalette = palette{
	accent:    lipgloss.Color("#818cf8"),
	text:      lipgloss.Color("#f3f4f6"),
	secondary: lipgloss.Color("#9ca3af"),
	border:    lipgloss.Color("#374151"),
	success:   lipgloss.Color("#34d399"),
	danger:    lipgloss.Color("#f87171"),
	info:      lipgloss.Color("#60a5fa"),
	levels: map[string]lipgloss.Color{
		"learning":     lipgloss.Color("#fbbf24"),
		"beginner":     lipgloss.Color("#22d3ee"),
		"intermediate": lipgloss.Color("#60a5fa"),
		"advanced":     lipgloss.Color("#a78bfa"),
		"expert":       lipgloss.Color("#f472b6"),
		"completed":    lipgloss.Color("#34d399"),
	},
}

// styles are the lipgloss styles derived from a palette.
type styles struct {
	p         palette
	title     lipgloss.Style
	heading   lipgloss.Style
	category  lipgloss.Style
	secondary lipgloss.Style
	text      lipgloss.Style
	card      lipgloss.Style
	stat      lipgloss.Style
	statValue lipgloss.Style
}

func newStyles(t models.Theme) styles {
	p := lightPalette
	if t == models.ThemeDark {
		p = darkPalette
	}

	return styles{
		p:         p,
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(p.text),
		category:  lipgloss.NewStyle().Italic(true).Foreground(p.accent),
		secondary: lipgloss.NewStyle().Foreground(p.secondary),
		text:      lipgloss.NewStyle().Foreground(p.text),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		stat: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 2).
			Align(lipgloss.Center),
		statValue: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
	}
}

// levelBadge renders a level label in its level colour; unknown levels use
// the accent colour.
func (s styles) levelBadge(level string) string {
	c, ok := s.p.levels[strings.ToLower(level)]
	if !ok {
		c = s.p.accent
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render("[" + level + "]")
}
