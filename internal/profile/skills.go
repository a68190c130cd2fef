package profile

import (
	"context"
	"fmt"
	"slices"

	"github.com/abhisek/healthskill/internal/catalog"
)

// DefaultProficiency is used when a skill is toggled on without a level.
const DefaultProficiency = catalog.LevelIntermediate

// AddSkill records a catalog skill at the given level.
func (s *Service) AddSkill(ctx context.Context, p Profile, skillID string, level Proficiency) (Profile, error) {
	out, err := addSkill(s.cat, p, skillID, level)
	if err != nil {
		return Profile{}, err
	}
	return s.commit(ctx, out)
}

// SetProficiency changes the level of a skill already on the profile.
func (s *Service) SetProficiency(ctx context.Context, p Profile, skillID string, level Proficiency) (Profile, error) {
	out, err := setProficiency(p, skillID, level)
	if err != nil {
		return Profile{}, err
	}
	return s.commit(ctx, out)
}

// RemoveSkill drops a skill from the profile.
func (s *Service) RemoveSkill(ctx context.Context, p Profile, skillID string) (Profile, error) {
	out, err := removeSkill(p, skillID)
	if err != nil {
		return Profile{}, err
	}
	return s.commit(ctx, out)
}

// ToggleSkill removes skillID if present, otherwise adds it at level
// (DefaultProficiency when level is empty).
func (s *Service) ToggleSkill(ctx context.Context, p Profile, skillID string, level Proficiency) (Profile, error) {
	var (
		out Profile
		err error
	)
	if _, ok := p.FindSkill(skillID); ok {
		out, err = removeSkill(p, skillID)
	} else {
		if level == "" {
			level = DefaultProficiency
		}
		out, err = addSkill(s.cat, p, skillID, level)
	}
	if err != nil {
		return Profile{}, err
	}
	return s.commit(ctx, out)
}

func addSkill(cat *catalog.Catalog, p Profile, skillID string, level Proficiency) (Profile, error) {
	skill, err := cat.Skill(skillID)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownSkill, skillID)
	}
	if !level.Valid() {
		return Profile{}, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	if _, ok := p.FindSkill(skillID); ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrDuplicateSkill, skillID)
	}

	out := p.Clone()
	out.Skills = append(out.Skills, UserSkill{SkillID: skill.ID, Skill: skill, Proficiency: level})
	return out, nil
}

func setProficiency(p Profile, skillID string, level Proficiency) (Profile, error) {
	if !level.Valid() {
		return Profile{}, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	i := p.skillIndex(skillID)
	if i < 0 {
		return Profile{}, fmt.Errorf("%w: %q", ErrSkillNotFound, skillID)
	}

	out := p.Clone()
	out.Skills[i].Proficiency = level
	return out, nil
}

func removeSkill(p Profile, skillID string) (Profile, error) {
	i := p.skillIndex(skillID)
	if i < 0 {
		return Profile{}, fmt.Errorf("%w: %q", ErrSkillNotFound, skillID)
	}

	out := p.Clone()
	out.Skills = slices.Delete(out.Skills, i, i+1)
	return out, nil
}
