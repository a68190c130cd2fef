// Package router keeps the stack of TUI screens and refuses to show gated
// screens the session cannot open.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/healthskill/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for Screen, e.g. a finished
// quiz for its result.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// BlockedMsg is delivered to the active screen when the guard refused to
// open Title.
type BlockedMsg struct {
	Title string
	Err   error
}

// Guard decides whether a screen may be shown.
type Guard func(screen.Screen) error

// Option configures a Router.
type Option func(*Router)

// WithGuard installs g. Without a guard every screen may be shown.
func WithGuard(g Guard) Option {
	return func(r *Router) { r.guard = g }
}

// Router manages a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
	guard Guard
}

// New creates a Router showing root.
func New(root screen.Screen, opts ...Option) *Router {
	r := &Router{stack: []screen.Screen{root}}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Router) allow(s screen.Screen) tea.Cmd {
	if r.guard == nil {
		return nil
	}
	if err := r.guard(s); err != nil {
		title := s.Title()
		return func() tea.Msg { return BlockedMsg{Title: title, Err: err} }
	}
	return nil
}

// Push opens s and runs its Init. If the guard refuses s the stack is left
// alone and a BlockedMsg is returned instead.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	if blocked := r.allow(s); blocked != nil {
		return blocked
	}
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen and re-runs Init on the one below so it can
// pick up changes. It does nothing on the root screen.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) < 2 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return r.Active().Init()
}

// Replace swaps the top screen for s, subject to the guard.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if blocked := r.allow(s); blocked != nil {
		return blocked
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of open screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Trail returns the titles from root to top.
func (r *Router) Trail() []string {
	titles := make([]string, len(r.stack))
	for i, s := range r.stack {
		titles[i] = s.Title()
	}
	return titles
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
