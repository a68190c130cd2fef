package insights

import (
	"testing"

	"github.com/abhisek/healthskill/internal/catalog"
)

func ids(recs []catalog.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterRecommendations(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"rec-1", "rec-2", "rec-3", "rec-4", "rec-5", "rec-6"}},
		{"explicit all", Filter{Type: All, Difficulty: All, Skill: All}, []string{"rec-1", "rec-2", "rec-3", "rec-4", "rec-5", "rec-6"}},
		{"courses", Filter{Type: "course"}, []string{"rec-1", "rec-2", "rec-4", "rec-6"}},
		{"projects", Filter{Type: "project"}, []string{"rec-3", "rec-5"}},
		{"advanced", Filter{Difficulty: "advanced"}, []string{"rec-3", "rec-6"}},
		{"skill python", Filter{Skill: "python"}, []string{"rec-1", "rec-3", "rec-6"}},
		{"course and python", Filter{Type: "course", Skill: "python"}, []string{"rec-1", "rec-6"}},
		{"search case-insensitive", Filter{Search: "hipaa"}, []string{"rec-4"}},
		{"no match", Filter{Search: "zzzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterRecommendations(cat, tt.filter))
			if !equalIDs(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterRecommendations_CourseFilterIsExactSubset(t *testing.T) {
	cat := catalog.Default()
	got := FilterRecommendations(cat, Filter{Type: "course", Difficulty: All, Skill: All})

	var want []string
	for _, r := range cat.Recommendations() {
		if r.Type == catalog.TypeCourse {
			want = append(want, r.ID)
		}
	}
	if !equalIDs(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}
}

func TestFilter_Active(t *testing.T) {
	if (Filter{}).Active() {
		t.Error("zero filter should be inactive")
	}
	if (Filter{Type: All, Difficulty: All, Skill: All}).Active() {
		t.Error("all-fields filter should be inactive")
	}
	if !(Filter{Search: "x"}).Active() {
		t.Error("search filter should be active")
	}
}

func TestRecommendationSkills(t *testing.T) {
	got := RecommendationSkills(catalog.Default())
	if len(got) == 0 || got[0] != "sql" || got[1] != "python" {
		t.Fatalf("unexpected order: %v", got)
	}
	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate skill %q", s)
		}
		seen[s] = true
	}
}
