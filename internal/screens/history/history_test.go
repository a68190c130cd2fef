package history

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/abhisek/healthskill/internal/quiz"
	"github.com/abhisek/healthskill/internal/store"
)

func testSession(t *testing.T) (*auth.Session, *quiz.History) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	profiles := profile.NewService(st.Documents(), catalog.Default(), nil)
	s := auth.NewSession(st.Documents(), profiles, auth.NewRegistry(time.Now()), auth.WithDelay(0))
	if _, err := s.Login(context.Background(), auth.DemoEmail, "123456"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return s, quiz.NewHistory(st.Documents(), nil)
}

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func TestHistoryScreen_Empty(t *testing.T) {
	session, history := testSession(t)
	s := New(session, catalog.Default(), history)
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading state before Init completes")
	}
	load(s)
	if !strings.Contains(s.View(100, 30), "No quizzes yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistoryScreen_ListsNewestFirst(t *testing.T) {
	session, history := testSession(t)
	u, _ := session.User()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	for i, pct := range []int{40, 90} {
		r := quiz.Result{ID: fmt.Sprintf("r%d", i), UserID: u.ID, Score: pct / 10, Total: 10, Percent: pct,
			Categories: []quiz.CategoryResult{{Category: catalog.CategoryPrivacy, Correct: 1, Total: 2}},
			Strengths:  []catalog.Category{},
			Weaknesses: []catalog.Category{catalog.CategoryPrivacy},
			CompletedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := history.Save(context.Background(), r); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	s := New(session, catalog.Default(), history)
	load(s)
	if len(s.results) != 2 || s.results[0].Percent != 90 {
		t.Fatalf("results = %+v, want newest (90%%) first", s.results)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "passed") || !strings.Contains(view, "not passed") {
		t.Errorf("unexpected view: %q", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.selected != 1 || !s.expanded[1] {
		t.Errorf("selected=%d expanded=%v", s.selected, s.expanded)
	}
	view = s.View(100, 30)
	if !strings.Contains(view, "review: Privacy, Security & Ethics") {
		t.Errorf("breakdown should name categories: %q", view)
	}
	if !strings.Contains(view, "best 90%") {
		t.Errorf("summary missing: %q", view)
	}
}

func TestHistoryScreen_SignedOut(t *testing.T) {
	session, history := testSession(t)
	if err := session.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	s := New(session, catalog.Default(), history)
	load(s)
	if !strings.Contains(s.View(100, 30), auth.ErrNoSession.Error()) {
		t.Error("expected no-session error")
	}
}
