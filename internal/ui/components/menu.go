package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/healthskill/internal/ui/theme"
)

// MenuItem is one selectable row. Items sharing a Group are listed under
// a heading with that name.
type MenuItem struct {
	Label    string
	Group    string
	Action   func() tea.Cmd
	Disabled bool
	Note     string // why a disabled item is unavailable
}

// Menu is a vertical list of items. The cursor wraps and skips disabled
// items; digits 1-9 jump to the n-th enabled item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.next(-1, 1)
	return m
}

// next returns the first enabled index after from in direction dir,
// wrapping once around. It returns from if nothing else is enabled.
func (m Menu) next(from, dir int) int {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((from+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			return i
		}
	}
	return max(from, 0)
}

// SelectLabel moves the cursor to the enabled item with the given label.
func (m *Menu) SelectLabel(label string) bool {
	for i, it := range m.Items {
		if it.Label == label && !it.Disabled {
			m.Selected = i
			return true
		}
	}
	return false
}

// Current returns the item under the cursor.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

func (m Menu) Init() tea.Cmd {
	return nil
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = m.next(m.Selected, -1)
		return m, nil
	case "down", "j":
		m.Selected = m.next(m.Selected, 1)
		return m, nil
	case "enter":
		return m, m.activate()
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		for i, it := range m.Items {
			if it.Disabled {
				continue
			}
			if n--; n == 0 {
				m.Selected = i
				return m, m.activate()
			}
		}
	}
	return m, nil
}

func (m Menu) activate() tea.Cmd {
	it, ok := m.Current()
	if !ok || it.Disabled || it.Action == nil {
		return nil
	}
	return it.Action()
}

func (m Menu) View() string {
	var b strings.Builder
	group := ""
	for i, it := range m.Items {
		if it.Group != group {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			group = it.Group
			if group != "" {
				b.WriteString(theme.Section.Render("  "+group) + "\n")
			}
		}

		switch {
		case it.Disabled:
			line := "    " + it.Label
			if it.Note != "" {
				line += "  (" + it.Note + ")"
			}
			b.WriteString(theme.Locked.Render(line))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + it.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + it.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
