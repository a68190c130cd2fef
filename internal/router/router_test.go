package router

import (
	"errors"
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/screen"
)

type stubScreen struct {
	title   string
	feature auth.Feature
	inits   int
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string  { return s.title }
func (s *stubScreen) Title() string         { return s.title }
func (s *stubScreen) Feature() auth.Feature { return s.feature }

// lockedGuard refuses every gated screen.
func lockedGuard(s screen.Screen) error {
	if f := screen.FeatureOf(s); f != "" {
		return auth.ErrLocked
	}
	return nil
}

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	dash := &stubScreen{title: "Dashboard"}
	r.Push(dash)
	if r.Depth() != 2 || r.Active() != dash {
		t.Fatalf("after push: depth %d, active %q", r.Depth(), r.Active().Title())
	}
	if dash.inits != 1 {
		t.Errorf("pushed screen inits = %d, want 1", dash.inits)
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Fatalf("after pop: active %q", r.Active().Title())
	}
	if home.inits != 1 {
		t.Errorf("uncovered screen inits = %d, want 1", home.inits)
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("root was popped, depth %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Quiz"})

	res := &stubScreen{title: "Result"}
	r.Update(ReplaceScreenMsg{Screen: res})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != res || res.inits != 1 {
		t.Errorf("replacement not active or not initialised")
	}
}

func TestGuardBlocksPush(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home, WithGuard(lockedGuard))

	cmd := r.Update(PushScreenMsg{Screen: &stubScreen{title: "Dashboard", feature: auth.FeatureDashboard}})
	if r.Depth() != 1 {
		t.Fatalf("gated screen was pushed")
	}
	if cmd == nil {
		t.Fatal("expected a BlockedMsg command")
	}
	msg, ok := cmd().(BlockedMsg)
	if !ok {
		t.Fatalf("got %T, want BlockedMsg", cmd())
	}
	if msg.Title != "Dashboard" || !errors.Is(msg.Err, auth.ErrLocked) {
		t.Errorf("unexpected BlockedMsg: %+v", msg)
	}

	r.Update(msg)
	if len(home.got) != 1 {
		t.Errorf("BlockedMsg not forwarded to active screen")
	}
}

func TestGuardAllowsUngated(t *testing.T) {
	r := New(&stubScreen{title: "Home"}, WithGuard(lockedGuard))
	r.Push(&stubScreen{title: "Result"})
	if r.Depth() != 2 {
		t.Errorf("ungated screen was blocked")
	}
}

func TestGuardBlocksReplace(t *testing.T) {
	r := New(&stubScreen{title: "Home"}, WithGuard(lockedGuard))
	r.Replace(&stubScreen{title: "Quiz", feature: auth.FeatureQuiz})
	if r.Active().Title() != "Home" {
		t.Errorf("gated replacement went through")
	}
}

func TestTrail(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Skill Quiz"})
	r.Replace(&stubScreen{title: "Quiz Result"})

	want := []string{"Home", "Quiz Result"}
	if got := r.Trail(); !slices.Equal(got, want) {
		t.Errorf("Trail() = %v, want %v", got, want)
	}
}
