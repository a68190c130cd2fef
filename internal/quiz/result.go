package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/healthskill/internal/catalog"
)

// CategoryResult tallies answers for one skill category.
type CategoryResult struct {
	Category catalog.Category `json:"category"`
	Correct  int              `json:"correct"`
	Total    int              `json:"total"`
}

// Result is a persisted record of a completed quiz.
type Result struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	Score       int                `json:"score"`
	Total       int                `json:"totalQuestions"`
	Percent     int                `json:"percent"`
	Categories  []CategoryResult   `json:"categories"`
	Strengths   []catalog.Category `json:"strengths"`
	Weaknesses  []catalog.Category `json:"weaknesses"`
	CompletedAt time.Time          `json:"completedAt"`
}

// Passed reports whether the result meets PassPercent.
func (r Result) Passed() bool {
	return r.Percent >= PassPercent
}

// NewResult summarizes a completed engine for userID. Strengths are the
// categories answered entirely correctly; every other category seen in the
// quiz is a weakness. Both follow the fixed category order.
func NewResult(e *Engine, userID string, now time.Time) (Result, error) {
	score, err := e.Score()
	if err != nil {
		return Result{}, err
	}
	review, err := e.Review()
	if err != nil {
		return Result{}, err
	}

	tally := make(map[catalog.Category]*CategoryResult)
	for _, o := range review {
		c := o.Question.SkillCategory
		cr, ok := tally[c]
		if !ok {
			cr = &CategoryResult{Category: c}
			tally[c] = cr
		}
		cr.Total++
		if o.Correct {
			cr.Correct++
		}
	}

	r := Result{
		ID:          uuid.NewString(),
		UserID:      userID,
		Score:       score.Correct,
		Total:       score.Total,
		Percent:     score.Percent,
		Categories:  []CategoryResult{},
		Strengths:   []catalog.Category{},
		Weaknesses:  []catalog.Category{},
		CompletedAt: now.UTC(),
	}
	for _, c := range catalog.AllCategories() {
		cr, ok := tally[c]
		if !ok {
			continue
		}
		r.Categories = append(r.Categories, *cr)
		if cr.Correct == cr.Total {
			r.Strengths = append(r.Strengths, c)
		} else {
			r.Weaknesses = append(r.Weaknesses, c)
		}
	}
	return r, nil
}
