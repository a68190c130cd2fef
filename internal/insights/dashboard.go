// Package insights derives dashboard metrics, skill-gap reports and
// recommendation matches from a profile snapshot. Every function is pure:
// inputs are never modified and outputs are freshly computed.
package insights

import (
	"math"

	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/profile"
)

// ReadinessSaturation is the skill count at which career readiness reaches
// 100%.
const ReadinessSaturation = 10

// HighlightLimit caps the strengths and improvements lists.
const HighlightLimit = 3

// CategoryScore is one radar-chart point.
type CategoryScore struct {
	Category catalog.Category
	Name     string
	Value    int // 0-100
}

// LevelCount is one histogram bar.
type LevelCount struct {
	Level catalog.Level
	Count int
}

// percent returns round(100*n/d), or 0 when d is 0.
func percent(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(d)))
}

// skillCategory returns the category of a profile skill, falling back to the
// catalog when the denormalized copy is missing.
func skillCategory(cat *catalog.Catalog, us profile.UserSkill) catalog.Category {
	if us.Skill.Category != "" {
		return us.Skill.Category
	}
	if s, err := cat.Skill(us.SkillID); err == nil {
		return s.Category
	}
	return ""
}

// CategoryCoverage returns the share of each category's catalog skills the
// profile holds, in fixed category order.
func CategoryCoverage(cat *catalog.Catalog, p profile.Profile) []CategoryScore {
	owned := make(map[catalog.Category]int)
	for _, us := range p.Skills {
		owned[skillCategory(cat, us)]++
	}

	out := make([]CategoryScore, 0, len(catalog.AllCategories()))
	for _, c := range catalog.AllCategories() {
		total := len(cat.SkillsByCategory(c))
		out = append(out, CategoryScore{
			Category: c,
			Name:     cat.CategoryInfo(c).Name,
			Value:    percent(owned[c], total),
		})
	}
	return out
}

// ProficiencyHistogram counts profile skills per level, zero-filled, from
// beginner to advanced.
func ProficiencyHistogram(p profile.Profile) []LevelCount {
	counts := make(map[catalog.Level]int)
	for _, us := range p.Skills {
		counts[us.Proficiency]++
	}

	out := make([]LevelCount, 0, 3)
	for _, l := range catalog.AllLevels() {
		out = append(out, LevelCount{Level: l, Count: counts[l]})
	}
	return out
}

// CareerReadiness is a skill-count heuristic that saturates at 100 once
// ReadinessSaturation skills are recorded. It ignores which skills they are.
func CareerReadiness(p profile.Profile) int {
	return min(percent(len(p.Skills), ReadinessSaturation), 100)
}

// Strengths returns up to the first three advanced skills in profile order.
func Strengths(p profile.Profile) []profile.UserSkill {
	return firstAtLevel(p, catalog.LevelAdvanced)
}

// Improvements returns up to the first three beginner skills in profile
// order.
func Improvements(p profile.Profile) []profile.UserSkill {
	return firstAtLevel(p, catalog.LevelBeginner)
}

func firstAtLevel(p profile.Profile, level catalog.Level) []profile.UserSkill {
	out := []profile.UserSkill{}
	for _, us := range p.Skills {
		if len(out) == HighlightLimit {
			break
		}
		if us.Proficiency == level {
			out = append(out, us)
		}
	}
	return out
}

// Dashboard bundles every metric the dashboard renders.
type Dashboard struct {
	TotalSkills    int
	AdvancedSkills int
	Projects       int
	Certifications int
	Readiness      int

	Coverage     []CategoryScore
	Histogram    []LevelCount
	Strengths    []profile.UserSkill
	Improvements []profile.UserSkill
}

// Summarize computes the full dashboard for p.
func Summarize(cat *catalog.Catalog, p profile.Profile) Dashboard {
	advanced := 0
	for _, us := range p.Skills {
		if us.Proficiency == catalog.LevelAdvanced {
			advanced++
		}
	}

	return Dashboard{
		TotalSkills:    len(p.Skills),
		AdvancedSkills: advanced,
		Projects:       len(p.Experiences),
		Certifications: len(p.Certifications),
		Readiness:      CareerReadiness(p),
		Coverage:       CategoryCoverage(cat, p),
		Histogram:      ProficiencyHistogram(p),
		Strengths:      Strengths(p),
		Improvements:   Improvements(p),
	}
}
