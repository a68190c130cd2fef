package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/quiz"
	"github.com/abhisek/healthskill/internal/router"
	"github.com/abhisek/healthskill/internal/screen"
	"github.com/abhisek/healthskill/internal/ui/components"
	"github.com/abhisek/healthskill/internal/ui/layout"
	"github.com/abhisek/healthskill/internal/ui/theme"
)

// ResultScreen displays the outcome of a finished quiz.
type ResultScreen struct {
	cat     *catalog.Catalog
	result  quiz.Result
	review  []quiz.Outcome
	saveErr error
	buttons components.ButtonRow
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a new ResultScreen. retake builds a fresh quiz screen; when
// nil the retake button is omitted.
func New(cat *catalog.Catalog, r quiz.Result, review []quiz.Outcome, saveErr error, retake func() screen.Screen) *ResultScreen {
	var buttons []components.Button
	if retake != nil {
		buttons = append(buttons, components.NewButton("Retake quiz", false, func() tea.Cmd {
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: retake()} }
		}))
	}
	buttons = append(buttons, components.NewButton("Done", false, func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}))
	return &ResultScreen{
		cat:     cat,
		result:  r,
		review:  review,
		saveErr: saveErr,
		buttons: components.NewButtonRow(buttons...),
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Quiz Results"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder
	b.WriteString("\n")

	verdict := theme.Incorrect.Render("Keep practicing")
	if r.Passed() {
		verdict = theme.Correct.Render("Passed")
	}
	b.WriteString(center(width, theme.Title.Render(fmt.Sprintf("%d%%", r.Percent))+"   "+verdict))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"%d of %d correct   ·   pass mark %d%%", r.Score, r.Total, quiz.PassPercent)))
	b.WriteString("\n\n")

	if s.saveErr != nil {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
			Render("Result not saved: " + s.saveErr.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(layout.Divider("By category", width))
	b.WriteString("\n")
	var rows strings.Builder
	for _, c := range r.Categories {
		style := theme.Unselected
		if c.Correct == c.Total {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		rows.WriteString(style.Render(fmt.Sprintf("%-36s %d/%d", s.cat.CategoryInfo(c.Category).Name, c.Correct, c.Total)))
		rows.WriteString("\n")
	}
	b.WriteString(center(width, rows.String()))

	if missed := s.missed(); missed != "" {
		b.WriteString("\n")
		b.WriteString(layout.Divider("Review", width))
		b.WriteString("\n")
		b.WriteString(center(width, missed))
	}

	b.WriteString("\n")
	b.WriteString(center(width, s.buttons.View()))
	return b.String()
}

// missed lists the questions answered incorrectly with the right answer.
func (s *ResultScreen) missed() string {
	var b strings.Builder
	for _, o := range s.review {
		if o.Correct {
			continue
		}
		q := o.Question
		b.WriteString(theme.Body.Render(q.Question))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  answer: %s", q.Options[q.CorrectAnswer])))
		b.WriteString("\n")
	}
	return b.String()
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
