package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/quiz"
	"github.com/abhisek/healthskill/internal/screen"
	"github.com/abhisek/healthskill/internal/ui/layout"
	"github.com/abhisek/healthskill/internal/ui/theme"
)

type historyLoadedMsg struct {
	results []quiz.Result
	err     error
}

// HistoryScreen lists the signed-in user's quiz attempts, newest first.
// Enter expands an attempt into its per-category breakdown.
type HistoryScreen struct {
	session *auth.Session
	cat     *catalog.Catalog
	history *quiz.History

	results  []quiz.Result
	selected int
	expanded map[int]bool
	loaded   bool
	err      error
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
	_ screen.Gated           = (*HistoryScreen)(nil)
)

func New(session *auth.Session, cat *catalog.Catalog, history *quiz.History) *HistoryScreen {
	return &HistoryScreen{
		session:  session,
		cat:      cat,
		history:  history,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		u, ok := s.session.User()
		if !ok {
			return historyLoadedMsg{err: auth.ErrNoSession}
		}
		results, err := s.history.List(context.Background(), u.ID)
		return historyLoadedMsg{results: results, err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Quiz History"
}

func (s *HistoryScreen) Feature() auth.Feature {
	return auth.FeatureQuiz
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Breakdown"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		s.err = msg.err
		s.results = msg.results
		s.selected = min(s.selected, max(len(s.results)-1, 0))

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.selected = max(s.selected-1, 0)
		case "down", "j":
			s.selected = min(s.selected+1, max(len(s.results)-1, 0))
		case "enter", "space":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

// summary describes the attempts as a whole.
func (s *HistoryScreen) summary() string {
	best, passed := 0, 0
	for _, r := range s.results {
		best = max(best, r.Percent)
		if r.Passed() {
			passed++
		}
	}
	return fmt.Sprintf("%d attempts     best %d%%     latest %d%%     passed %d",
		len(s.results), best, s.results[0].Percent, passed)
}

func (s *HistoryScreen) rowLines(i int, r quiz.Result) []string {
	cursor := "  "
	style := theme.Unselected
	if i == s.selected {
		cursor = "▸ "
		style = theme.Selected
	}
	verdict := "not passed"
	if r.Passed() {
		verdict = "passed"
	}
	pct := lipgloss.NewStyle().Foreground(theme.ScoreColor(r.Percent)).Render(fmt.Sprintf("%3d%%", r.Percent))
	lines := []string{
		style.Render(fmt.Sprintf("%s%s   %2d/%-2d ", cursor, r.CompletedAt.Local().Format("Jan 02, 2006 15:04"), r.Score, r.Total)) +
			pct + theme.Hint.Render("   "+verdict),
	}
	if !s.expanded[i] {
		return lines
	}

	for _, c := range r.Categories {
		st := theme.Hint
		if c.Correct == c.Total {
			st = theme.Correct
		}
		lines = append(lines, st.Render(fmt.Sprintf("      %-30s %d/%d", s.cat.CategoryInfo(c.Category).Name, c.Correct, c.Total)))
	}
	if len(r.Weaknesses) > 0 {
		names := make([]string, len(r.Weaknesses))
		for j, c := range r.Weaknesses {
			names[j] = s.cat.CategoryInfo(c).Name
		}
		lines = append(lines, theme.Hint.Render("      review: "+strings.Join(names, ", ")))
	}
	return lines
}

func (s *HistoryScreen) View(width, height int) string {
	notice := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render("\n\n" + text)
	}
	switch {
	case s.err != nil:
		return notice(theme.Incorrect, "Error: "+s.err.Error())
	case !s.loaded:
		return notice(theme.Hint, "Loading history...")
	case len(s.results) == 0:
		return notice(theme.Hint, "No quizzes yet. Take the skill quiz to get started!")
	}

	var lines []string
	selectedAt := 0
	for i, r := range s.results {
		if i == s.selected {
			selectedAt = len(lines)
		}
		lines = append(lines, s.rowLines(i, r)...)
	}

	// Scroll so the selected attempt stays on screen.
	visible := max(height-4, 3)
	start := max(selectedAt-visible+1, 0)
	end := min(start+visible, len(lines))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(s.summary()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines[start:end], "\n")))
	return b.String()
}
