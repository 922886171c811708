package render

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertKind selects the colour and icon of an alert.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
	AlertInfo    AlertKind = "info"
)

// Alert renders a one-line status message.
func (r *Renderer) Alert(kind AlertKind, msg string) string {
	p := r.styles.p

	var icon string
	var c lipgloss.Color
	switch kind {
	case AlertSuccess:
		icon, c = "✔", p.success
	case AlertError:
		icon, c = "✖", p.danger
	default:
		icon, c = "ℹ", p.info
	}

	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(icon + " " + msg)
}
