package quiz

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/healthskill/internal/store"
)

func openHistory(t *testing.T) *History {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "quiz.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewHistory(s.Documents(), nil)
}

func TestHistory_SaveAndList(t *testing.T) {
	h := openHistory(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	older := Result{ID: "r-old", UserID: "u1", Score: 4, Total: 10, Percent: 40, CompletedAt: base}
	newer := Result{ID: "r-new", UserID: "u1", Score: 9, Total: 10, Percent: 90, CompletedAt: base.Add(time.Hour)}
	other := Result{ID: "r-x", UserID: "u2", Score: 1, Total: 10, Percent: 10, CompletedAt: base}

	for _, r := range []Result{older, newer, other} {
		require.NoError(t, h.Save(ctx, r))
	}

	got, err := h.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r-new", got[0].ID)
	assert.Equal(t, "r-old", got[1].ID)
	assert.True(t, got[0].Passed())
	assert.False(t, got[1].Passed())
}

func TestHistory_ListEmpty(t *testing.T) {
	h := openHistory(t)
	got, err := h.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistory_SaveRequiresIDs(t *testing.T) {
	h := openHistory(t)
	assert.Error(t, h.Save(context.Background(), Result{ID: "x"}))
}
