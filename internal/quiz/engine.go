// Package quiz runs the multiple-choice self-assessment.
//
// An Engine moves strictly forward through its questions: NotStarted, then
// InProgress with one answer recorded per question in order, then Completed.
// There is no skipping and no revisiting a previous answer.
package quiz

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/abhisek/healthskill/internal/catalog"
)

var (
	ErrNotInProgress  = errors.New("quiz not in progress")
	ErrAlreadyStarted = errors.New("quiz already started")
	ErrInvalidOption  = errors.New("invalid answer option")
	ErrNotCompleted   = errors.New("quiz not completed")
)

// PassPercent is the score at which a result counts as passed.
const PassPercent = 70

// State is the engine's lifecycle state.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine is the quiz state machine. It is not safe for concurrent use.
type Engine struct {
	questions []catalog.QuizQuestion
	state     State
	current   int
	answers   []int
}

// New creates an engine over questions.
func New(questions []catalog.QuizQuestion) *Engine {
	return &Engine{questions: slices.Clone(questions)}
}

// Start begins the quiz. An engine with no questions completes immediately.
func (e *Engine) Start() error {
	if e.state != NotStarted {
		return ErrAlreadyStarted
	}
	e.current = 0
	e.answers = []int{}
	e.state = InProgress
	if len(e.questions) == 0 {
		e.state = Completed
	}
	return nil
}

// Answer records option for the current question and advances.
func (e *Engine) Answer(option int) error {
	if e.state != InProgress {
		return ErrNotInProgress
	}
	q := e.questions[e.current]
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("%w: %d (question %s has %d options)", ErrInvalidOption, option, q.ID, len(q.Options))
	}

	e.answers = append(e.answers, option)
	if e.current == len(e.questions)-1 {
		e.state = Completed
		return nil
	}
	e.current++
	return nil
}

// Current returns the question awaiting an answer and its index.
// ok is false unless the quiz is in progress.
func (e *Engine) Current() (q catalog.QuizQuestion, index int, ok bool) {
	if e.state != InProgress {
		return catalog.QuizQuestion{}, 0, false
	}
	return e.questions[e.current], e.current, true
}

// State returns the engine's state.
func (e *Engine) State() State {
	return e.state
}

// Total returns the number of questions.
func (e *Engine) Total() int {
	return len(e.questions)
}

// Questions returns a copy of the question list.
func (e *Engine) Questions() []catalog.QuizQuestion {
	return slices.Clone(e.questions)
}

// Answers returns a copy of the recorded answers in question order.
func (e *Engine) Answers() []int {
	return slices.Clone(e.answers)
}

// Reset discards all answers and returns to NotStarted.
func (e *Engine) Reset() {
	e.state = NotStarted
	e.current = 0
	e.answers = nil
}

// Score is the outcome of a completed quiz.
type Score struct {
	Correct int
	Total   int
	Percent int
}

// Passed reports whether the score meets PassPercent.
func (s Score) Passed() bool {
	return s.Percent >= PassPercent
}

// Score counts correct answers. Only valid once Completed.
func (e *Engine) Score() (Score, error) {
	if e.state != Completed {
		return Score{}, ErrNotCompleted
	}
	s := Score{Total: len(e.questions)}
	for i, a := range e.answers {
		if a == e.questions[i].CorrectAnswer {
			s.Correct++
		}
	}
	if s.Total > 0 {
		s.Percent = int(math.Round(100 * float64(s.Correct) / float64(s.Total)))
	}
	return s, nil
}

// Outcome is the per-question review line.
type Outcome struct {
	Question catalog.QuizQuestion
	Answer   int
	Correct  bool
}

// Review returns one outcome per question. Only valid once Completed.
func (e *Engine) Review() ([]Outcome, error) {
	if e.state != Completed {
		return nil, ErrNotCompleted
	}
	out := make([]Outcome, len(e.questions))
	for i, q := range e.questions {
		out[i] = Outcome{Question: q, Answer: e.answers[i], Correct: e.answers[i] == q.CorrectAnswer}
	}
	return out, nil
}
