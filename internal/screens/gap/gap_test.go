package gap

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/abhisek/healthskill/internal/store"
)

func testSession(t *testing.T) *auth.Session {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "gap.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	profiles := profile.NewService(st.Documents(), catalog.Default(), nil)
	s := auth.NewSession(st.Documents(), profiles, auth.NewRegistry(time.Now()), auth.WithDelay(0))
	if _, err := s.Login(context.Background(), auth.DemoEmail, "123456"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return s
}

func TestGapScreen_Title(t *testing.T) {
	s := New(testSession(t), catalog.Default())
	if s.Title() != "Skill Gap" {
		t.Errorf("Title = %q, want %q", s.Title(), "Skill Gap")
	}
}

func TestGapScreen_FallbackGoal(t *testing.T) {
	s := New(testSession(t), catalog.Default())
	s.Init()

	if !s.report.Fallback {
		t.Error("expected fallback goal for an empty profile")
	}
	if s.report.Goal.ID != catalog.FallbackGoalID {
		t.Errorf("goal = %q, want %q", s.report.Goal.ID, catalog.FallbackGoalID)
	}
	view := s.View(100, 40)
	for _, want := range []string{"Health Data Analyst", "No career goal selected", "CRITICAL"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGapScreen_TracksProfileChanges(t *testing.T) {
	session := testSession(t)
	s := New(session, catalog.Default())
	s.Init()
	before := s.report.Coverage

	required := catalog.Default().Requirements(catalog.FallbackGoalID)
	if _, err := session.AddSkill(context.Background(), required[0], catalog.LevelAdvanced); err != nil {
		t.Fatalf("add skill: %v", err)
	}
	s.Init()

	if s.report.Coverage <= before {
		t.Errorf("coverage %d did not increase from %d", s.report.Coverage, before)
	}
	if len(s.progress) != len(catalog.AllCategories()) {
		t.Errorf("progress rows = %d, want %d", len(s.progress), len(catalog.AllCategories()))
	}
}
