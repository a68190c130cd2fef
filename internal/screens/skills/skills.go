package skills

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/abhisek/healthskill/internal/screen"
	"github.com/abhisek/healthskill/internal/ui/layout"
	"github.com/abhisek/healthskill/internal/ui/theme"
)

// savedMsg carries the outcome of a profile write.
type savedMsg struct {
	Profile profile.Profile
	Err     error
}

// row is one line of the skill list: either a category heading or a skill.
type row struct {
	heading string
	skill   catalog.Skill
}

// SkillsScreen lets the user toggle catalog skills on their profile and
// adjust proficiency.
type SkillsScreen struct {
	session *auth.Session
	cat     *catalog.Catalog
	rows    []row
	cursor  int // index into rows; always on a skill row
	profile profile.Profile
	status  string
	isErr   bool
}

var _ screen.Screen = (*SkillsScreen)(nil)
var _ screen.KeyHintProvider = (*SkillsScreen)(nil)

// New creates a new SkillsScreen.
func New(session *auth.Session, cat *catalog.Catalog) *SkillsScreen {
	s := &SkillsScreen{session: session, cat: cat}
	for _, info := range cat.Categories() {
		s.rows = append(s.rows, row{heading: info.Icon + " " + info.Name})
		for _, sk := range cat.SkillsByCategory(info.ID) {
			s.rows = append(s.rows, row{skill: sk})
		}
	}
	s.cursor = s.next(-1, 1)
	return s
}

// next returns the first skill row after from in direction dir, or from
// when there is none.
func (s *SkillsScreen) next(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(s.rows); i += dir {
		if s.rows[i].heading == "" {
			return i
		}
	}
	return from
}

// Current returns the skill under the cursor.
func (s *SkillsScreen) Current() catalog.Skill {
	return s.rows[s.cursor].skill
}

func (s *SkillsScreen) Init() tea.Cmd {
	s.profile, _ = s.session.Profile()
	return nil
}

func (s *SkillsScreen) Title() string {
	return "My Skills"
}

func (s *SkillsScreen) Feature() auth.Feature {
	return auth.FeatureSkills
}

func (s *SkillsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Add/Remove"},
		{Key: "←→", Description: "Proficiency"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SkillsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.status, s.isErr = msg.Err.Error(), true
			return s, nil
		}
		s.profile = msg.Profile
		s.status, s.isErr = "Saved.", false
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.cursor = s.next(s.cursor, -1)
		case "down", "j":
			s.cursor = s.next(s.cursor, 1)
		case "space", " ", "enter":
			return s, s.toggle()
		case "left", "h":
			return s, s.shift(-1)
		case "right", "l":
			return s, s.shift(1)
		}
	}
	return s, nil
}

func (s *SkillsScreen) toggle() tea.Cmd {
	id := s.Current().ID
	return s.save(func(ctx context.Context) (profile.Profile, error) {
		return s.session.ToggleSkill(ctx, id, "")
	})
}

// shift moves the proficiency of the current skill one level up or down.
func (s *SkillsScreen) shift(dir int) tea.Cmd {
	us, ok := s.profile.FindSkill(s.Current().ID)
	if !ok {
		return nil
	}
	levels := catalog.AllLevels()
	i := us.Proficiency.Rank() - 1 + dir
	if i < 0 || i >= len(levels) {
		return nil
	}
	level := levels[i]
	return s.save(func(ctx context.Context) (profile.Profile, error) {
		return s.session.SetProficiency(ctx, us.SkillID, level)
	})
}

func (s *SkillsScreen) save(fn func(context.Context) (profile.Profile, error)) tea.Cmd {
	return func() tea.Msg {
		p, err := fn(context.Background())
		return savedMsg{Profile: p, Err: err}
	}
}

func (s *SkillsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d skills on your profile", len(s.profile.Skills))))
	b.WriteString("\n\n")

	// Keep the cursor visible when the list is taller than the screen.
	visible := max(height-5, 5)
	start := 0
	if s.cursor >= visible {
		start = s.cursor - visible + 1
	}
	end := min(start+visible, len(s.rows))

	var list strings.Builder
	for i := start; i < end; i++ {
		r := s.rows[i]
		if r.heading != "" {
			list.WriteString(theme.Section.Render(r.heading))
			list.WriteString("\n")
			continue
		}
		mark, level := "[ ]", ""
		if us, ok := s.profile.FindSkill(r.skill.ID); ok {
			mark = "[✓]"
			level = " " + theme.LevelStyle(us.Proficiency).Render(string(us.Proficiency))
		}
		line := fmt.Sprintf("%s %-40s", mark, r.skill.Name)
		if i == s.cursor {
			list.WriteString(theme.Selected.Render("▸ "+line) + level)
		} else {
			list.WriteString(theme.Unselected.Render("  "+line) + level)
		}
		list.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	if s.status != "" {
		style := theme.Hint
		if s.isErr {
			style = theme.Incorrect
		}
		b.WriteString("\n")
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(s.status))
	}
	return b.String()
}
