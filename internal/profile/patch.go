package profile

import (
	"fmt"
	"slices"

	"github.com/abhisek/healthskill/internal/catalog"
)

// Patch lists the profile fields an update may change. Nil fields are left
// untouched. UserID and CompletedSteps are not patchable; steps only change
// through MarkStepComplete.
type Patch struct {
	Education      *[]Education
	CareerGoalID   *string // "" clears the goal
	Skills         *[]UserSkill
	Experiences    *[]Experience
	Certifications *[]Certification
	Interests      *[]string
}

// Empty reports whether the patch changes nothing.
func (pt Patch) Empty() bool {
	return pt.Education == nil && pt.CareerGoalID == nil && pt.Skills == nil &&
		pt.Experiences == nil && pt.Certifications == nil && pt.Interests == nil
}

// apply merges pt over p using cat to resolve references. p is not modified.
func (pt Patch) apply(cat *catalog.Catalog, p Profile) (Profile, error) {
	out := p.Clone()

	if pt.Education != nil {
		out.Education = withIDs(*pt.Education, func(e *Education) *string { return &e.ID })
	}

	if pt.CareerGoalID != nil {
		if *pt.CareerGoalID == "" {
			out.CareerGoal = nil
		} else {
			goal, err := cat.CareerGoal(*pt.CareerGoalID)
			if err != nil {
				return Profile{}, fmt.Errorf("%w: %q", ErrUnknownGoal, *pt.CareerGoalID)
			}
			out.CareerGoal = &goal
		}
	}

	if pt.Skills != nil {
		skills, err := resolveSkills(cat, *pt.Skills)
		if err != nil {
			return Profile{}, err
		}
		out.Skills = skills
	}

	if pt.Experiences != nil {
		out.Experiences = withIDs(*pt.Experiences, func(e *Experience) *string { return &e.ID })
	}

	if pt.Certifications != nil {
		out.Certifications = withIDs(*pt.Certifications, func(c *Certification) *string { return &c.ID })
	}

	if pt.Interests != nil {
		interests, err := dedupeInterests(cat, *pt.Interests)
		if err != nil {
			return Profile{}, err
		}
		out.Interests = interests
	}

	return out, nil
}

// resolveSkills checks skill ids and levels, refreshes the denormalized
// catalog entry and rejects repeated skill ids.
func resolveSkills(cat *catalog.Catalog, in []UserSkill) ([]UserSkill, error) {
	out := make([]UserSkill, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, us := range in {
		if seen[us.SkillID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSkill, us.SkillID)
		}
		seen[us.SkillID] = true

		skill, err := cat.Skill(us.SkillID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, us.SkillID)
		}
		if !us.Proficiency.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, us.Proficiency)
		}
		out = append(out, UserSkill{SkillID: skill.ID, Skill: skill, Proficiency: us.Proficiency})
	}
	return out, nil
}

// dedupeInterests keeps the first occurrence of each interest.
func dedupeInterests(cat *catalog.Catalog, in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !cat.IsInterest(s) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInterest, s)
		}
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// withIDs copies entries, assigning a fresh id to any entry without one.
func withIDs[T any](in []T, id func(*T) *string) []T {
	out := slices.Clone(in)
	if out == nil {
		out = []T{}
	}
	for i := range out {
		if p := id(&out[i]); *p == "" {
			*p = NewID()
		}
	}
	return out
}
