// Package theme holds the HealthSkill palette and shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/catalog"
)

// Palette: clinical blues and greens on navy.
var (
	Primary   = lipgloss.Color("#0EA5E9") // sky
	Secondary = lipgloss.Color("#10B981") // emerald
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#EF4444")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0B1220")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Score bands used to tint readiness, coverage and quiz scores.
const (
	ScoreGood = 70
	ScoreFair = 40
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Section  = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Locked     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// ScoreColor maps a 0-100 score to red, amber or green.
func ScoreColor(percent int) color.Color {
	switch {
	case percent >= ScoreGood:
		return Success
	case percent >= ScoreFair:
		return Accent
	default:
		return Error
	}
}

// LevelStyle colors a proficiency or difficulty level.
func LevelStyle(l catalog.Level) lipgloss.Style {
	switch l {
	case catalog.LevelBeginner:
		return lipgloss.NewStyle().Foreground(Accent)
	case catalog.LevelIntermediate:
		return lipgloss.NewStyle().Foreground(Primary)
	case catalog.LevelAdvanced:
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	default:
		return Hint
	}
}
