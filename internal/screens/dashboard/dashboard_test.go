package dashboard

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
	st, err := store.Open(filepath.Join(t.TempDir(), "dash.db"))
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

func TestDashboardScreen_Title(t *testing.T) {
	s := New(testSession(t), catalog.Default())
	if s.Title() != "Dashboard" {
		t.Errorf("Title = %q, want %q", s.Title(), "Dashboard")
	}
}

func TestDashboardScreen_Summarizes(t *testing.T) {
	session := testSession(t)
	ctx := context.Background()
	for _, id := range []string{"sql", "python", "hipaa"} {
		if _, err := session.AddSkill(ctx, id, catalog.LevelAdvanced); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	s := New(session, catalog.Default())
	s.Init()

	if s.data.TotalSkills != 3 || s.data.AdvancedSkills != 3 {
		t.Errorf("total=%d advanced=%d, want 3 3", s.data.TotalSkills, s.data.AdvancedSkills)
	}
	if s.data.Readiness != 30 {
		t.Errorf("readiness = %d, want 30", s.data.Readiness)
	}

	view := s.View(100, 40)
	for _, want := range []string{"Demo User", "Skills: 3", "Health Data & Analytics", "SQL & Database Management"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDashboardScreen_EmptyProfile(t *testing.T) {
	s := New(testSession(t), catalog.Default())
	s.Init()
	view := s.View(100, 40)
	if !strings.Contains(view, "No advanced skills yet") {
		t.Error("expected empty-strengths hint")
	}
}
