package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is the search box used by list screens. It remembers whether
// the last Update changed the query so callers only re-filter when needed.
type TextInput struct {
	Model   textinput.Model
	changed bool
}

// NewTextInput creates a focused search box limited to limit characters.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "⌕ "
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return TextInput{Model: ti}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	before := t.Model.Value()
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	t.changed = t.Model.Value() != before
	return t, cmd
}

// Changed reports whether the last Update edited the query.
func (t TextInput) Changed() bool {
	return t.changed
}

func (t TextInput) View() string {
	return t.Model.View()
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// Clear empties the query.
func (t *TextInput) Clear() {
	t.Model.SetValue("")
	t.changed = false
}
