package home

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/abhisek/healthskill/internal/quiz"
	"github.com/abhisek/healthskill/internal/router"
	"github.com/abhisek/healthskill/internal/screen"
	"github.com/abhisek/healthskill/internal/screens/dashboard"
	"github.com/abhisek/healthskill/internal/screens/gap"
	"github.com/abhisek/healthskill/internal/screens/history"
	quizscreen "github.com/abhisek/healthskill/internal/screens/quiz"
	"github.com/abhisek/healthskill/internal/screens/recs"
	"github.com/abhisek/healthskill/internal/screens/skills"
	"github.com/abhisek/healthskill/internal/ui/components"
	"github.com/abhisek/healthskill/internal/ui/theme"
)

// Deps are the services the screens read from and write to.
type Deps struct {
	Session *auth.Session
	Catalog *catalog.Catalog
	History *quiz.History
	Logger  *slog.Logger
}

// entry describes one home menu item.
type entry struct {
	label   string
	group   string
	feature auth.Feature // empty for ungated items
	open    func(Deps) screen.Screen
}

var entries = []entry{
	{"Dashboard", "Insights", auth.FeatureDashboard, func(d Deps) screen.Screen { return dashboard.New(d.Session, d.Catalog) }},
	{"Skill Gap", "Insights", auth.FeatureSkillGap, func(d Deps) screen.Screen { return gap.New(d.Session, d.Catalog) }},
	{"Recommendations", "Insights", auth.FeatureRecommendations, func(d Deps) screen.Screen { return recs.New(d.Catalog) }},
	{"My Skills", "Profile", auth.FeatureSkills, func(d Deps) screen.Screen { return skills.New(d.Session, d.Catalog) }},
	{"Skill Quiz", "Assessment", auth.FeatureQuiz, func(d Deps) screen.Screen { return quizscreen.New(d.Session, d.Catalog, d.History) }},
	{"Quiz History", "Assessment", auth.FeatureQuiz, func(d Deps) screen.Screen { return history.New(d.Session, d.Catalog, d.History) }},
}

// HomeScreen is the main menu. Gated items stay disabled until the signed-in
// user has finished onboarding.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	blocked string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.refresh()
	return h
}

// refresh rebuilds the menu so lock state follows the session.
func (h *HomeScreen) refresh() {
	items := make([]components.MenuItem, 0, len(entries)+1)
	for _, e := range entries {
		item := components.MenuItem{Label: e.label, Group: e.group}
		if err := h.deps.Session.Require(e.feature); err != nil {
			item.Disabled = true
			item.Note = lockNote(err)
		} else {
			open := e.open
			item.Action = func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: open(h.deps)}
				}
			}
		}
		items = append(items, item)
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }})

	prev, hadPrev := h.menu.Current()
	h.menu = components.NewMenu(items)
	if hadPrev {
		h.menu.SelectLabel(prev.Label)
	}
}

func lockNote(err error) string {
	switch {
	case errors.Is(err, auth.ErrNoSession):
		return "sign in first"
	case errors.Is(err, auth.ErrLocked):
		return "complete your profile"
	default:
		return err.Error()
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	h.blocked = ""
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(router.BlockedMsg); ok {
		h.blocked = fmt.Sprintf("%s is locked: %s", msg.Title, lockNote(msg.Err))
		h.refresh()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Healthcare Technology Skills"))
	sections = append(sections, h.statusView(width))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	if h.blocked != "" {
		sections = append(sections, theme.Incorrect.Width(width).Align(lipgloss.Center).Render(h.blocked))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
}

// statusView shows who is signed in and the onboarding checklist.
func (h *HomeScreen) statusView(width int) string {
	u, ok := h.deps.Session.User()
	if !ok {
		return theme.Subtitle.Width(width).Render(
			"Not signed in.\nRun `healthskill signup` or `healthskill login` first.")
	}
	p, _ := h.deps.Session.Profile()
	if p.IsComplete() {
		return theme.Subtitle.Width(width).Render(fmt.Sprintf("Welcome back, %s.", u.Name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Welcome, %s. Finish onboarding to unlock everything:\n\n", u.Name)
	for _, s := range profile.Steps() {
		mark := theme.Locked.Render("○")
		if p.HasStep(s.Number) {
			mark = theme.Correct.Render("✓")
		}
		fmt.Fprintf(&b, "%s %d. %s\n", mark, s.Number, s.Name)
	}
	b.WriteString(theme.Hint.Render("\nUse `healthskill onboard step <n>` to complete a step."))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}
