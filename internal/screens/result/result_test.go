package result

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/quiz"
	"github.com/abhisek/healthskill/internal/router"
	"github.com/abhisek/healthskill/internal/screen"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

func testResult() (quiz.Result, []quiz.Outcome) {
	q := catalog.QuizQuestion{
		ID:            "q1",
		Question:      "Which standard governs PHI privacy?",
		Options:       []string{"HIPAA", "DICOM", "SNOMED CT", "ICD-10"},
		CorrectAnswer: 0,
		SkillCategory: catalog.CategoryPrivacy,
	}
	r := quiz.Result{
		ID:          "r1",
		UserID:      "1",
		Score:       3,
		Total:       4,
		Percent:     75,
		Categories:  []quiz.CategoryResult{{Category: catalog.CategoryPrivacy, Correct: 0, Total: 1}},
		Weaknesses:  []catalog.Category{catalog.CategoryPrivacy},
		CompletedAt: time.Now(),
	}
	return r, []quiz.Outcome{{Question: q, Answer: 2, Correct: false}}
}

func TestResultScreen_Title(t *testing.T) {
	r, review := testResult()
	s := New(catalog.Default(), r, review, nil, nil)
	if s.Title() != "Quiz Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Results")
	}
}

func TestResultScreen_Display(t *testing.T) {
	r, review := testResult()
	view := New(catalog.Default(), r, review, nil, nil).View(100, 30)
	for _, want := range []string{"75%", "Passed", "Privacy, Security & Ethics", "answer: HIPAA"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultScreen_SaveError(t *testing.T) {
	r, review := testResult()
	view := New(catalog.Default(), r, review, errors.New("disk full"), nil).View(100, 30)
	if !strings.Contains(view, "Result not saved") {
		t.Error("expected save error in view")
	}
}

func TestResultScreen_DonePops(t *testing.T) {
	r, review := testResult()
	s := New(catalog.Default(), r, review, nil, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestResultScreen_Retake(t *testing.T) {
	r, review := testResult()
	s := New(catalog.Default(), r, review, nil, func() screen.Screen { return stubScreen{} })
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "stub" {
		t.Errorf("replaced with %q", msg.Screen.Title())
	}
}

func TestResultScreen_KeyHints(t *testing.T) {
	r, review := testResult()
	if len(New(catalog.Default(), r, review, nil, nil).KeyHints()) != 2 {
		t.Error("KeyHints length should be 2")
	}
}
