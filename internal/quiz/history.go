package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/abhisek/healthskill/internal/store"
)

// ResultKind is the stored document kind for quiz results.
var ResultKind = store.Kind{
	Name: "quiz-result",
	Schema: map[string]any{
		"type":     "object",
		"required": []any{"id", "userId", "score", "totalQuestions", "completedAt"},
		"properties": map[string]any{
			"id":             map[string]any{"type": "string", "minLength": 1},
			"userId":         map[string]any{"type": "string", "minLength": 1},
			"score":          map[string]any{"type": "integer", "minimum": 0},
			"totalQuestions": map[string]any{"type": "integer", "minimum": 0},
			"percent":        map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		},
	},
}

// History persists quiz results per user.
type History struct {
	docs   store.DocumentRepo
	logger *slog.Logger
}

// NewHistory creates a result history backed by docs.
func NewHistory(docs store.DocumentRepo, logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	return &History{docs: docs, logger: logger}
}

// Save stores r under its user.
func (h *History) Save(ctx context.Context, r Result) error {
	if r.UserID == "" || r.ID == "" {
		return errors.New("save quiz result: missing user or result id")
	}
	if err := h.docs.PutJSON(ctx, store.QuizResultKey(r.UserID, r.ID), ResultKind, r); err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	h.logger.Info("quiz result saved", "user_id", r.UserID, "result_id", r.ID, "percent", r.Percent)
	return nil
}

// List returns a user's results, newest first.
func (h *History) List(ctx context.Context, userID string) ([]Result, error) {
	keys, err := h.docs.Keys(ctx, store.QuizResultPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}

	results := make([]Result, 0, len(keys))
	for _, k := range keys {
		var r Result
		if err := h.docs.GetJSON(ctx, k, ResultKind, &r); err != nil {
			return nil, fmt.Errorf("load quiz result: %w", err)
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompletedAt.After(results[j].CompletedAt)
	})
	return results, nil
}
