package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/healthskill/internal/catalog"
)

func seedQuestions() []catalog.QuizQuestion {
	return catalog.Default().Questions()
}

func TestEngine_AllZeroAnswers(t *testing.T) {
	qs := seedQuestions()
	e := New(qs)
	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	want := 0
	for i, q := range qs {
		_, idx, ok := e.Current()
		if !ok || idx != i {
			t.Fatalf("Current() = (%d, %v), want (%d, true)", idx, ok, i)
		}
		if len(e.Answers()) != i {
			t.Fatalf("len(answers) = %d before question %d", len(e.Answers()), i)
		}
		if q.CorrectAnswer == 0 {
			want++
		}
		if err := e.Answer(0); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	if e.State() != Completed {
		t.Fatalf("state = %v, want completed", e.State())
	}
	if len(e.Answers()) != len(qs) {
		t.Errorf("len(answers) = %d, want %d", len(e.Answers()), len(qs))
	}
	s, err := e.Score()
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if s.Correct != want {
		t.Errorf("score = %d, want %d", s.Correct, want)
	}
	if s.Total != len(qs) {
		t.Errorf("total = %d, want %d", s.Total, len(qs))
	}
}

func TestEngine_PerfectScore(t *testing.T) {
	qs := seedQuestions()
	e := New(qs)
	e.Start()
	for _, q := range qs {
		if err := e.Answer(q.CorrectAnswer); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	s, err := e.Score()
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if s.Percent != 100 || !s.Passed() {
		t.Errorf("score = %+v, want 100%% passed", s)
	}
}

func TestEngine_ResetAfterCompleted(t *testing.T) {
	qs := seedQuestions()
	e := New(qs)
	e.Start()
	for range qs {
		e.Answer(1)
	}
	e.Reset()

	if e.State() != NotStarted {
		t.Errorf("state = %v, want not-started", e.State())
	}
	if len(e.Answers()) != 0 {
		t.Errorf("answers = %v, want empty", e.Answers())
	}
	if _, _, ok := e.Current(); ok {
		t.Error("Current() should report not ok after reset")
	}
	if err := e.Start(); err != nil {
		t.Errorf("restart after reset: %v", err)
	}
}

func TestEngine_Errors(t *testing.T) {
	e := New(seedQuestions())

	if err := e.Answer(0); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("answer before start: err = %v, want ErrNotInProgress", err)
	}
	if _, err := e.Score(); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("score before start: err = %v, want ErrNotCompleted", err)
	}

	e.Start()
	if err := e.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("double start: err = %v, want ErrAlreadyStarted", err)
	}
	for _, opt := range []int{-1, 4} {
		if err := e.Answer(opt); !errors.Is(err, ErrInvalidOption) {
			t.Errorf("answer %d: err = %v, want ErrInvalidOption", opt, err)
		}
	}
	if len(e.Answers()) != 0 {
		t.Errorf("rejected answers must not be recorded: %v", e.Answers())
	}
	if _, err := e.Score(); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("score mid-quiz: err = %v, want ErrNotCompleted", err)
	}
}

func TestEngine_NoQuestions(t *testing.T) {
	e := New(nil)
	e.Start()
	if e.State() != Completed {
		t.Fatalf("state = %v, want completed", e.State())
	}
	s, err := e.Score()
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if s.Percent != 0 {
		t.Errorf("percent = %d, want 0", s.Percent)
	}
}

func TestEngine_AnswerAfterCompletion(t *testing.T) {
	qs := seedQuestions()[:1]
	e := New(qs)
	e.Start()
	e.Answer(0)
	if err := e.Answer(0); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("err = %v, want ErrNotInProgress", err)
	}
}

func TestNewResult_CategoryBreakdown(t *testing.T) {
	qs := []catalog.QuizQuestion{
		{ID: "a", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: 0, SkillCategory: catalog.CategoryPrivacy},
		{ID: "b", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: 1, SkillCategory: catalog.CategoryPrivacy},
		{ID: "c", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: 2, SkillCategory: catalog.CategoryDataAnalytics},
		{ID: "d", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: 3, SkillCategory: catalog.CategoryAIDigital},
	}
	e := New(qs)
	e.Start()
	for _, a := range []int{0, 0, 2, 3} {
		e.Answer(a)
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r, err := NewResult(e, "u1", now)
	if err != nil {
		t.Fatalf("NewResult: %v", err)
	}

	if r.Score != 3 || r.Total != 4 || r.Percent != 75 {
		t.Errorf("score = %d/%d (%d%%), want 3/4 (75%%)", r.Score, r.Total, r.Percent)
	}
	if r.ID == "" || r.UserID != "u1" || !r.CompletedAt.Equal(now) {
		t.Errorf("unexpected metadata: %+v", r)
	}

	wantStrengths := []catalog.Category{catalog.CategoryDataAnalytics, catalog.CategoryAIDigital}
	if len(r.Strengths) != len(wantStrengths) {
		t.Fatalf("strengths = %v, want %v", r.Strengths, wantStrengths)
	}
	for i := range wantStrengths {
		if r.Strengths[i] != wantStrengths[i] {
			t.Errorf("strengths[%d] = %q, want %q", i, r.Strengths[i], wantStrengths[i])
		}
	}
	if len(r.Weaknesses) != 1 || r.Weaknesses[0] != catalog.CategoryPrivacy {
		t.Errorf("weaknesses = %v, want [privacy-security]", r.Weaknesses)
	}
	if len(r.Categories) != 3 {
		t.Errorf("categories = %v, want 3 entries", r.Categories)
	}
}

func TestNewResult_RequiresCompletion(t *testing.T) {
	e := New(seedQuestions())
	e.Start()
	if _, err := NewResult(e, "u1", time.Now()); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("err = %v, want ErrNotCompleted", err)
	}
}
