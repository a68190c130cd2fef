package insights

import (
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/profile"
)

// RequiredLevel is the minimum rank (intermediate) every required skill
// must reach.
const RequiredLevel = 2

// Priority classifies how far a required skill falls short.
type Priority string

const (
	PriorityCritical Priority = "critical" // skill missing
	PriorityHigh     Priority = "high"     // below intermediate
	PriorityLow      Priority = "low"      // requirement met
)

// GapItem is the analysis of one required skill.
type GapItem struct {
	SkillID       string
	Skill         catalog.Skill
	CurrentLevel  int
	RequiredLevel int
	Gap           int
	Priority      Priority
}

// GapReport is the skill-gap analysis against one career goal.
type GapReport struct {
	Goal     catalog.CareerGoal
	Fallback bool // profile had no goal; FallbackGoalID was used
	Items    []GapItem
	Coverage int

	Critical []GapItem
	High     []GapItem
	Met      []GapItem
}

// AnalyzeGap compares p against the requirements of its career goal, or the
// fallback goal when none is set.
func AnalyzeGap(cat *catalog.Catalog, p profile.Profile) GapReport {
	goalID := catalog.FallbackGoalID
	fallback := true
	if p.CareerGoal != nil {
		goalID = p.CareerGoal.ID
		fallback = false
	}

	report := AnalyzeGapFor(cat.Requirements(goalID), p)
	report.Fallback = fallback
	if goal, err := cat.CareerGoal(goalID); err == nil {
		report.Goal = goal
	} else if p.CareerGoal != nil {
		report.Goal = *p.CareerGoal
	}

	for _, items := range [][]GapItem{report.Items, report.Critical, report.High, report.Met} {
		for i := range items {
			if s, err := cat.Skill(items[i].SkillID); err == nil {
				items[i].Skill = s
			}
		}
	}
	return report
}

// AnalyzeGapFor classifies each required skill id, in order, against p.
// An empty requirement list yields zero coverage.
func AnalyzeGapFor(required []string, p profile.Profile) GapReport {
	report := GapReport{
		Items:    make([]GapItem, 0, len(required)),
		Critical: []GapItem{},
		High:     []GapItem{},
		Met:      []GapItem{},
	}

	for _, id := range required {
		item := GapItem{SkillID: id, RequiredLevel: RequiredLevel}
		if us, ok := p.FindSkill(id); ok {
			item.CurrentLevel = us.Proficiency.Rank()
			item.Skill = us.Skill
		}
		item.Gap = max(0, item.RequiredLevel-item.CurrentLevel)

		switch {
		case item.CurrentLevel == 0:
			item.Priority = PriorityCritical
			report.Critical = append(report.Critical, item)
		case item.CurrentLevel < item.RequiredLevel:
			item.Priority = PriorityHigh
			report.High = append(report.High, item)
		default:
			item.Priority = PriorityLow
			report.Met = append(report.Met, item)
		}
		report.Items = append(report.Items, item)
	}

	report.Coverage = percent(len(report.Met), len(required))
	return report
}

// CategoryStatus is a per-category acquired/total tally.
type CategoryStatus struct {
	Category catalog.Category
	Name     string
	Acquired int
	Total    int
	Progress int // 0-100
}

// CategoryProgress tallies profile skills against the catalog per category,
// in fixed category order.
func CategoryProgress(cat *catalog.Catalog, p profile.Profile) []CategoryStatus {
	owned := make(map[catalog.Category]int)
	for _, us := range p.Skills {
		owned[skillCategory(cat, us)]++
	}

	out := make([]CategoryStatus, 0, len(catalog.AllCategories()))
	for _, c := range catalog.AllCategories() {
		total := len(cat.SkillsByCategory(c))
		out = append(out, CategoryStatus{
			Category: c,
			Name:     cat.CategoryInfo(c).Name,
			Acquired: owned[c],
			Total:    total,
			Progress: percent(owned[c], total),
		})
	}
	return out
}
