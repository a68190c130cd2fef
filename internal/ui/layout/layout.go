// Package layout draws the frame around screens: the header with the session
// summary, the key-hint footer and shared separators.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderInfo is the session summary shown on the right of the header.
type HeaderInfo struct {
	UserName  string // empty when signed out
	Readiness int    // career readiness, 0-100
	Onboarded bool
}

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return theme.Body.
		Align(lipgloss.Center, lipgloss.Center).
		Width(width).
		Height(height).
		Render(fmt.Sprintf("HealthSkill needs at least %d x %d.\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// sessionBadge describes who is signed in and how far along they are.
func sessionBadge(info HeaderInfo) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if info.UserName == "" {
		return dim.Render("signed out")
	}
	name := theme.Body.Render(info.UserName)
	if !info.Onboarded {
		return name + dim.Render("   onboarding")
	}
	ready := lipgloss.NewStyle().Foreground(theme.ScoreColor(info.Readiness)).
		Render(fmt.Sprintf("✚ %d%% ready", info.Readiness))
	return name + "   " + ready
}

// RenderHeader draws the app name on the left, title centred and the
// session badge on the right.
func RenderHeader(title string, info HeaderInfo, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  HealthSkill")
	center := theme.Body.Render(title)
	right := sessionBadge(info)

	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	return bar.Width(width).Render(
		left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// RenderFooter draws key hints, dropping trailing ones that do not fit.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	content := " "
	for _, h := range hints {
		part := "  " + key.Render(h.Key) + " " + desc.Render(h.Description)
		if lipgloss.Width(content+part) > width-4 {
			break
		}
		content += part
	}
	return bar.Width(width).Render(content)
}

// RenderFrame stacks header, content and footer, giving the content all
// remaining rows.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Divider renders a section label over a horizontal rule, both centred.
func Divider(label string, width int) string {
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(min(width-8, 60), 0)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Section.Render(label)) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, rule)
}
