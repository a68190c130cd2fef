package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/quiz"
	"github.com/abhisek/healthskill/internal/router"
	"github.com/abhisek/healthskill/internal/screen"
	"github.com/abhisek/healthskill/internal/screens/result"
	"github.com/abhisek/healthskill/internal/ui/components"
	"github.com/abhisek/healthskill/internal/ui/layout"
	"github.com/abhisek/healthskill/internal/ui/theme"
)

// resultSavedMsg is sent once a finished quiz has been written to history.
type resultSavedMsg struct {
	Result quiz.Result
	Review []quiz.Outcome
	Err    error
}

// QuizScreen runs the skill quiz one question at a time. After an option
// is chosen the correct answer is revealed; Enter moves on.
type QuizScreen struct {
	session *auth.Session
	cat     *catalog.Catalog
	history *quiz.History
	now     func() time.Time

	engine *quiz.Engine
	choice components.MultiChoice
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen over the catalog's question bank.
func New(session *auth.Session, cat *catalog.Catalog, history *quiz.History) *QuizScreen {
	return &QuizScreen{
		session: session,
		cat:     cat,
		history: history,
		now:     time.Now,
		engine:  quiz.New(cat.Questions()),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.engine.State() != quiz.NotStarted {
		return nil
	}
	if err := s.engine.Start(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return s.advance()
}

func (s *QuizScreen) Title() string {
	return "Skill Quiz"
}

func (s *QuizScreen) Feature() auth.Feature {
	return auth.FeatureQuiz
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.choice.Submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Answer"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// advance loads the next question, or finishes the quiz when none remain.
func (s *QuizScreen) advance() tea.Cmd {
	q, _, ok := s.engine.Current()
	if !ok {
		return s.finish()
	}
	s.choice = components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswer)
	return nil
}

// finish scores the quiz and saves it to the user's history.
func (s *QuizScreen) finish() tea.Cmd {
	u, ok := s.session.User()
	if !ok {
		s.errMsg = auth.ErrNoSession.Error()
		return nil
	}
	res, err := quiz.NewResult(s.engine, u.ID, s.now())
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	review, _ := s.engine.Review()
	return func() tea.Msg {
		err := s.history.Save(context.Background(), res)
		return resultSavedMsg{Result: res, Review: review, Err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultSavedMsg:
		retake := func() screen.Screen { return New(s.session, s.cat, s.history) }
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: result.New(s.cat, msg.Result, msg.Review, msg.Err, retake)}
		}

	case tea.KeyMsg:
		if s.engine.State() != quiz.InProgress {
			return s, nil
		}
		if s.choice.Submitted {
			if msg.String() != "enter" {
				return s, nil
			}
			if err := s.engine.Answer(s.choice.ChosenIndex); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, s.advance()
		}
		s.choice, _ = s.choice.Update(msg)
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	q, index, ok := s.engine.Current()
	if !ok {
		return theme.Hint.Width(width).Align(lipgloss.Center).Render("\n\nScoring your answers...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"Question %d of %d   ·   %s   ·   %s",
		index+1, s.engine.Total(), s.cat.CategoryInfo(q.SkillCategory).Name, q.Difficulty)))
	b.WriteString("\n\n")

	done := 100 * index / max(s.engine.Total(), 1)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar("", done, false, min(width-8, 60)).View()))
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(min(width-8, 76)).
		Padding(1, 2).
		Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	if s.choice.Submitted {
		b.WriteString("\n\n")
		if s.choice.IsCorrect() {
			b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite."))
		}
	}
	return b.String()
}
