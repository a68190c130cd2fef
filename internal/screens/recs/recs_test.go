package recs

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/insights"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestRecsScreen_Title(t *testing.T) {
	s := New(catalog.Default())
	if s.Title() != "Recommendations" {
		t.Errorf("Title = %q, want %q", s.Title(), "Recommendations")
	}
}

func TestRecsScreen_ShowsEverythingInitially(t *testing.T) {
	cat := catalog.Default()
	s := New(cat)
	if got, want := len(s.Results()), len(cat.Recommendations()); got != want {
		t.Errorf("results = %d, want %d", got, want)
	}
	if s.Filter().Active() {
		t.Error("expected no active filter initially")
	}
}

func TestRecsScreen_TabCyclesType(t *testing.T) {
	s := New(catalog.Default())

	s.Update(specialKey(tea.KeyTab))
	if s.Filter().Type != string(catalog.TypeCourse) {
		t.Fatalf("type = %q, want course", s.Filter().Type)
	}
	for _, r := range s.Results() {
		if r.Type != catalog.TypeCourse {
			t.Errorf("%s is a %s, want course", r.ID, r.Type)
		}
	}

	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	if s.Filter().Type != insights.All {
		t.Errorf("type after full cycle = %q, want all", s.Filter().Type)
	}
}

func TestRecsScreen_DifficultyCycles(t *testing.T) {
	s := New(catalog.Default())
	s.Update(ctrl('d'))
	if s.Filter().Difficulty != string(catalog.AllLevels()[0]) {
		t.Errorf("difficulty = %q, want %q", s.Filter().Difficulty, catalog.AllLevels()[0])
	}
}

func TestRecsScreen_SearchNarrowsResults(t *testing.T) {
	s := New(catalog.Default())
	for _, r := range "hipaa" {
		s.Update(keyPress(r))
	}
	if s.Filter().Search != "hipaa" {
		t.Fatalf("search = %q, want hipaa", s.Filter().Search)
	}
	if len(s.Results()) != 1 || s.Results()[0].ID != "rec-4" {
		t.Errorf("results = %v, want [rec-4]", s.Results())
	}

	s.Update(ctrl('r'))
	if s.Filter().Active() {
		t.Error("expected reset to clear every filter")
	}
}

func TestRecsScreen_NoMatches(t *testing.T) {
	s := New(catalog.Default())
	for _, r := range "zzzz" {
		s.Update(keyPress(r))
	}
	if len(s.Results()) != 0 {
		t.Fatalf("results = %d, want 0", len(s.Results()))
	}
	if view := s.View(100, 30); view == "" {
		t.Error("expected non-empty view")
	}
}

func TestRecsScreen_Navigation(t *testing.T) {
	s := New(catalog.Default())
	s.Update(specialKey(tea.KeyDown))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(specialKey(tea.KeyEnter))
	if !s.expanded {
		t.Error("expected Enter to expand details")
	}
	s.Update(specialKey(tea.KeyUp))
	if s.selected != 0 || s.expanded {
		t.Errorf("selected=%d expanded=%v, want 0 false", s.selected, s.expanded)
	}
}
