package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/ui/theme"
)

// ProgressBar renders "label  ████░░░░  42%".
type ProgressBar struct {
	Label      string
	LabelWidth int // pad labels to this width so stacked bars line up
	Percent    int // clamped to 0-100 when drawn

	// ShowPercent appends the percentage. Detail, when set, is shown
	// instead, e.g. "3/5".
	ShowPercent bool
	Detail      string

	// Graded tints the fill by score band instead of the secondary color.
	Graded bool

	Width int
}

// NewProgressBar creates a bar of the given total width.
func NewProgressBar(label string, percent int, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) suffix() string {
	switch {
	case p.Detail != "":
		return "  " + p.Detail
	case p.ShowPercent:
		return fmt.Sprintf("  %3d%%", p.Percent)
	default:
		return ""
	}
}

// View renders the bar.
func (p ProgressBar) View() string {
	var label string
	if p.Label != "" {
		pad := max(p.LabelWidth-lipgloss.Width(p.Label), 0)
		label = theme.Body.Render(p.Label+strings.Repeat(" ", pad)) + "  "
	}
	suffix := p.suffix()

	track := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), 4)
	filled := track * min(max(p.Percent, 0), 100) / 100

	fill := theme.ProgressFilled
	if p.Graded {
		fill = lipgloss.NewStyle().Background(theme.ScoreColor(p.Percent))
	}

	return label +
		fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", track-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
