package insights

import (
	"slices"
	"strings"

	"github.com/abhisek/healthskill/internal/catalog"
)

// All matches any value for a filter field. The empty string does too.
const All = "all"

// Filter selects recommendations. All fields must match.
type Filter struct {
	Type       string // "course", "project" or All
	Difficulty string // a catalog.Level or All
	Skill      string // a skill id or All
	Search     string // case-insensitive substring of title, description or explanation
}

// Active reports whether any field narrows the results.
func (f Filter) Active() bool {
	return !isAll(f.Type) || !isAll(f.Difficulty) || !isAll(f.Skill) || f.Search != ""
}

// Match reports whether r satisfies every field of f.
func (f Filter) Match(r catalog.Recommendation) bool {
	if !isAll(f.Type) && string(r.Type) != f.Type {
		return false
	}
	if !isAll(f.Difficulty) && string(r.Difficulty) != f.Difficulty {
		return false
	}
	if !isAll(f.Skill) && !slices.Contains(r.Skills, f.Skill) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		return strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Description), q) ||
			strings.Contains(strings.ToLower(r.Explanation), q)
	}
	return true
}

func isAll(v string) bool {
	return v == "" || v == All
}

// FilterRecommendations returns the catalog recommendations matching f, in
// catalog order.
func FilterRecommendations(cat *catalog.Catalog, f Filter) []catalog.Recommendation {
	out := []catalog.Recommendation{}
	for _, r := range cat.Recommendations() {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// RecommendationSkills returns the distinct skill ids referenced by the
// recommendation catalog, in first-seen order.
func RecommendationSkills(cat *catalog.Catalog) []string {
	var out []string
	for _, r := range cat.Recommendations() {
		for _, s := range r.Skills {
			if !slices.Contains(out, s) {
				out = append(out, s)
			}
		}
	}
	return out
}
