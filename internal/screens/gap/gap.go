package gap

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/insights"
	"github.com/abhisek/healthskill/internal/screen"
	"github.com/abhisek/healthskill/internal/ui/components"
	"github.com/abhisek/healthskill/internal/ui/layout"
	"github.com/abhisek/healthskill/internal/ui/theme"
)

// GapScreen compares the profile against the requirements of its career
// goal and shows per-category progress.
type GapScreen struct {
	session  *auth.Session
	cat      *catalog.Catalog
	report   insights.GapReport
	progress []insights.CategoryStatus
}

var _ screen.Screen = (*GapScreen)(nil)

// New creates a new GapScreen.
func New(session *auth.Session, cat *catalog.Catalog) *GapScreen {
	return &GapScreen{session: session, cat: cat}
}

func (s *GapScreen) Init() tea.Cmd {
	p, _ := s.session.Profile()
	s.report = insights.AnalyzeGap(s.cat, p)
	s.progress = insights.CategoryProgress(s.cat, p)
	return nil
}

func (s *GapScreen) Title() string {
	return "Skill Gap"
}

func (s *GapScreen) Feature() auth.Feature {
	return auth.FeatureSkillGap
}

func (s *GapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *GapScreen) View(width, height int) string {
	r := s.report
	cw := min(width-8, 72)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("%s %s", r.Goal.Icon, r.Goal.Title)))
	b.WriteString("\n")
	if r.Fallback {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No career goal selected; showing the default goal."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	coverage := components.NewProgressBar("Requirement coverage", r.Coverage, true, cw)
	coverage.Graded = true
	b.WriteString(center(width, coverage.View()))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"%d missing     %d to improve     %d met", len(r.Critical), len(r.High), len(r.Met))))
	b.WriteString("\n\n")

	b.WriteString(layout.Divider("Required skills", width))
	b.WriteString("\n")
	var rows strings.Builder
	for _, it := range r.Items {
		line := fmt.Sprintf("%-9s %-36s %d/%d", strings.ToUpper(string(it.Priority)), it.Skill.Name, it.CurrentLevel, it.RequiredLevel)
		rows.WriteString(lipgloss.NewStyle().Foreground(priorityColor(it.Priority)).Render(line))
		rows.WriteString("\n")
	}
	b.WriteString(center(width, rows.String()))
	b.WriteString("\n")

	b.WriteString(layout.Divider("Category progress", width))
	b.WriteString("\n")
	labelWidth := 0
	for _, c := range s.progress {
		labelWidth = max(labelWidth, lipgloss.Width(c.Name))
	}
	for _, c := range s.progress {
		bar := components.NewProgressBar(c.Name, c.Progress, false, cw)
		bar.LabelWidth = labelWidth
		bar.Detail = fmt.Sprintf("%d/%d", c.Acquired, c.Total)
		b.WriteString(center(width, bar.View()))
		b.WriteString("\n")
	}

	return b.String()
}

// priorityColor returns the theme color for a gap priority.
func priorityColor(p insights.Priority) color.Color {
	switch p {
	case insights.PriorityCritical:
		return theme.Error
	case insights.PriorityHigh:
		return theme.Accent
	case insights.PriorityLow:
		return theme.Success
	default:
		return theme.Text
	}
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
