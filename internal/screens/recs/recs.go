package recs

import (
	"fmt"
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

// RecsScreen lists catalog recommendations with a live search box and
// cycling type, difficulty and skill filters.
type RecsScreen struct {
	cat    *catalog.Catalog
	search components.TextInput

	types        []string
	difficulties []string
	skills       []string
	typeIdx      int
	diffIdx      int
	skillIdx     int

	results  []catalog.Recommendation
	selected int
	expanded bool
}

var _ screen.Screen = (*RecsScreen)(nil)
var _ screen.KeyHintProvider = (*RecsScreen)(nil)

// New creates a new RecsScreen.
func New(cat *catalog.Catalog) *RecsScreen {
	diffs := []string{insights.All}
	for _, l := range catalog.AllLevels() {
		diffs = append(diffs, string(l))
	}
	s := &RecsScreen{
		cat:          cat,
		search:       components.NewTextInput("search titles and descriptions", 40),
		types:        []string{insights.All, string(catalog.TypeCourse), string(catalog.TypeProject)},
		difficulties: diffs,
		skills:       append([]string{insights.All}, insights.RecommendationSkills(cat)...),
	}
	s.apply()
	return s
}

// Filter returns the filter currently applied.
func (s *RecsScreen) Filter() insights.Filter {
	return insights.Filter{
		Type:       s.types[s.typeIdx],
		Difficulty: s.difficulties[s.diffIdx],
		Skill:      s.skills[s.skillIdx],
		Search:     strings.TrimSpace(s.search.Value()),
	}
}

// Results returns the recommendations currently listed.
func (s *RecsScreen) Results() []catalog.Recommendation {
	return s.results
}

func (s *RecsScreen) apply() {
	s.results = insights.FilterRecommendations(s.cat, s.Filter())
	if s.selected >= len(s.results) {
		s.selected = max(len(s.results)-1, 0)
	}
	s.expanded = false
}

func (s *RecsScreen) Init() tea.Cmd {
	return s.search.Init()
}

func (s *RecsScreen) Title() string {
	return "Recommendations"
}

func (s *RecsScreen) Feature() auth.Feature {
	return auth.FeatureRecommendations
}

func (s *RecsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Type"},
		{Key: "Ctrl+D", Description: "Difficulty"},
		{Key: "Ctrl+S", Description: "Skill"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RecsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			s.typeIdx = (s.typeIdx + 1) % len(s.types)
			s.apply()
			return s, nil
		case "ctrl+d":
			s.diffIdx = (s.diffIdx + 1) % len(s.difficulties)
			s.apply()
			return s, nil
		case "ctrl+s":
			s.skillIdx = (s.skillIdx + 1) % len(s.skills)
			s.apply()
			return s, nil
		case "ctrl+r":
			s.typeIdx, s.diffIdx, s.skillIdx = 0, 0, 0
			s.search.Clear()
			s.apply()
			return s, nil
		case "up":
			if s.selected > 0 {
				s.selected--
				s.expanded = false
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
				s.expanded = false
			}
			return s, nil
		case "enter":
			s.expanded = !s.expanded
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if s.search.Changed() {
		s.apply()
	}
	return s, cmd
}

func (s *RecsScreen) skillLabel(id string) string {
	if id == insights.All {
		return id
	}
	if sk, err := s.cat.Skill(id); err == nil {
		return sk.Name
	}
	return id
}

func (s *RecsScreen) View(width, height int) string {
	f := s.Filter()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(width, s.search.View()))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"type: %s   difficulty: %s   skill: %s", f.Type, f.Difficulty, s.skillLabel(f.Skill))))
	b.WriteString("\n\n")

	b.WriteString(layout.Divider(fmt.Sprintf("%d results", len(s.results)), width))
	b.WriteString("\n")

	if len(s.results) == 0 {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No recommendations match these filters."))
		return b.String()
	}

	cw := min(width-8, 80)
	var list strings.Builder
	for i, r := range s.results {
		line := fmt.Sprintf("%-7s %-12s %s", r.Type, r.Difficulty, r.Title)
		if i == s.selected {
			list.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			list.WriteString(theme.Unselected.Render("  " + line))
		}
		list.WriteString("\n")

		if i == s.selected && s.expanded {
			details := []string{r.Description, "Why: " + r.Explanation, "Duration: " + r.Duration}
			if r.Provider != "" {
				details = append(details, "Provider: "+r.Provider)
			}
			names := make([]string, 0, len(r.Skills))
			for _, id := range r.Skills {
				names = append(names, s.skillLabel(id))
			}
			details = append(details, "Skills: "+strings.Join(names, ", "))
			list.WriteString(theme.Hint.Width(cw).PaddingLeft(4).Render(strings.Join(details, "\n")))
			list.WriteString("\n")
		}
	}
	b.WriteString(center(width, list.String()))

	return b.String()
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
