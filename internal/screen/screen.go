// Package screen defines the contract shared by every TUI view.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/ui/layout"
)

// Screen is one view on the router stack.
type Screen interface {
	// Init runs when the screen becomes active, both on first push and
	// when a screen above it is popped.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Gated is implemented by screens that stay locked until onboarding is
// complete.
type Gated interface {
	Feature() auth.Feature
}

// FeatureOf returns the feature gating s, or "" if s is always reachable.
func FeatureOf(s Screen) auth.Feature {
	if g, ok := s.(Gated); ok {
		return g.Feature()
	}
	return ""
}
