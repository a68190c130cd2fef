package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/insights"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/abhisek/healthskill/internal/router"
	"github.com/abhisek/healthskill/internal/screen"
	"github.com/abhisek/healthskill/internal/ui/components"
	"github.com/abhisek/healthskill/internal/ui/layout"
	"github.com/abhisek/healthskill/internal/ui/theme"
)

// DashboardScreen shows headline counts, category coverage and the
// proficiency mix of the signed-in user.
type DashboardScreen struct {
	session *auth.Session
	cat     *catalog.Catalog
	data    insights.Dashboard
	name    string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(session *auth.Session, cat *catalog.Catalog) *DashboardScreen {
	return &DashboardScreen{session: session, cat: cat}
}

func (s *DashboardScreen) Init() tea.Cmd {
	p, _ := s.session.Profile()
	s.data = insights.Summarize(s.cat, p)
	if u, ok := s.session.User(); ok {
		s.name = u.Name
	}
	return nil
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) Feature() auth.Feature {
	return auth.FeatureDashboard
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	d := s.data
	cw := min(width-8, 72)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("%s's skills at a glance", s.name)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Skills: %d     Advanced: %d     Projects: %d     Certifications: %d",
		d.TotalSkills, d.AdvancedSkills, d.Projects, d.Certifications)
	b.WriteString(theme.Subtitle.Width(width).Render(stats))
	b.WriteString("\n\n")

	readiness := components.NewProgressBar("Career readiness", d.Readiness, true, cw)
	readiness.Graded = true
	b.WriteString(center(width, readiness.View()))
	b.WriteString("\n\n")

	b.WriteString(layout.Divider("Category coverage", width))
	b.WriteString("\n")
	labelWidth := 0
	for _, c := range d.Coverage {
		labelWidth = max(labelWidth, lipgloss.Width(c.Name))
	}
	for _, c := range d.Coverage {
		bar := components.NewProgressBar(c.Name, c.Value, true, cw)
		bar.LabelWidth = labelWidth
		b.WriteString(center(width, bar.View()))
		b.WriteString("\n")
	}

	// height excludes the header and footer bars.
	if !layout.IsCompactHeight(height + 6) {
		b.WriteString("\n")
		b.WriteString(layout.Divider("Proficiency", width))
		b.WriteString("\n")
		parts := make([]string, 0, len(d.Histogram))
		for _, lc := range d.Histogram {
			parts = append(parts, theme.LevelStyle(lc.Level).Render(string(lc.Level))+fmt.Sprintf(" %d", lc.Count))
		}
		b.WriteString(theme.Subtitle.Width(width).Render(strings.Join(parts, "     ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(width, lipgloss.JoinHorizontal(lipgloss.Top,
		skillColumn("Top strengths", d.Strengths, "No advanced skills yet"),
		"      ",
		skillColumn("Improve next", d.Improvements, "Nothing at beginner level"),
	)))

	return b.String()
}

func skillColumn(title string, list []profile.UserSkill, empty string) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render(title))
	b.WriteString("\n")
	if len(list) == 0 {
		b.WriteString(theme.Hint.Render(empty))
		return b.String()
	}
	for _, us := range list {
		b.WriteString(theme.Body.Render("• " + us.Skill.Name))
		b.WriteString("\n")
	}
	return b.String()
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
