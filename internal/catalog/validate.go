package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// validateData performs all structural checks on raw catalog data.
// Returns a combined error describing all problems found, or nil if valid.
func validateData(d Data) error {
	var errs []string

	catSet := make(map[Category]bool, len(d.Categories))
	for _, ci := range d.Categories {
		if catSet[ci.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category: %q", ci.ID))
		}
		catSet[ci.ID] = true
		if !slices.Contains(AllCategories(), ci.ID) {
			errs = append(errs, fmt.Sprintf("unknown category: %q", ci.ID))
		}
	}

	// Check for duplicate skill IDs and unknown categories
	skillSet := make(map[string]bool, len(d.Skills))
	for _, s := range d.Skills {
		if skillSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		skillSet[s.ID] = true
		if !catSet[s.Category] {
			errs = append(errs, fmt.Sprintf("skill %q has unknown category %q", s.ID, s.Category))
		}
	}

	goalSet := make(map[string]bool, len(d.CareerGoals))
	for _, g := range d.CareerGoals {
		if goalSet[g.ID] {
			errs = append(errs, fmt.Sprintf("duplicate career goal ID: %q", g.ID))
		}
		goalSet[g.ID] = true
	}

	// Requirements must point at known goals and skills
	for goalID, req := range d.Requirements {
		if !goalSet[goalID] {
			errs = append(errs, fmt.Sprintf("requirements reference nonexistent career goal %q", goalID))
		}
		seen := make(map[string]bool, len(req))
		for _, skillID := range req {
			if !skillSet[skillID] {
				errs = append(errs, fmt.Sprintf("goal %q requires nonexistent skill %q", goalID, skillID))
			}
			if seen[skillID] {
				errs = append(errs, fmt.Sprintf("goal %q lists skill %q twice", goalID, skillID))
			}
			seen[skillID] = true
		}
	}

	interestSet := make(map[string]bool, len(d.Interests))
	for _, in := range d.Interests {
		if interestSet[in] {
			errs = append(errs, fmt.Sprintf("duplicate interest: %q", in))
		}
		interestSet[in] = true
	}

	recSet := make(map[string]bool, len(d.Recommendations))
	for _, r := range d.Recommendations {
		if recSet[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate recommendation ID: %q", r.ID))
		}
		recSet[r.ID] = true
		if r.Type != TypeCourse && r.Type != TypeProject {
			errs = append(errs, fmt.Sprintf("recommendation %q has unknown type %q", r.ID, r.Type))
		}
		if !r.Difficulty.Valid() {
			errs = append(errs, fmt.Sprintf("recommendation %q has unknown difficulty %q", r.ID, r.Difficulty))
		}
		for _, skillID := range r.Skills {
			if !skillSet[skillID] {
				errs = append(errs, fmt.Sprintf("recommendation %q references nonexistent skill %q", r.ID, skillID))
			}
		}
	}

	qSet := make(map[string]bool, len(d.Questions))
	for _, q := range d.Questions {
		if qSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		qSet[q.ID] = true
		if len(q.Options) != OptionsPerQuestion {
			errs = append(errs, fmt.Sprintf("question %q: want %d options, got %d", q.ID, OptionsPerQuestion, len(q.Options)))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("question %q: correct answer %d out of range", q.ID, q.CorrectAnswer))
		}
		if !catSet[q.SkillCategory] {
			errs = append(errs, fmt.Sprintf("question %q has unknown category %q", q.ID, q.SkillCategory))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
