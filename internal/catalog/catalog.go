package catalog

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Catalog holds the immutable reference data with precomputed indices.
// All getters return copies.
type Catalog struct {
	categories      []CategoryInfo
	categoryByID    map[Category]CategoryInfo
	skills          []Skill
	skillByID       map[string]Skill
	byCategory      map[Category][]Skill
	goals           []CareerGoal
	goalByID        map[string]CareerGoal
	requirements    map[string][]string
	interests       []string
	interestSet     map[string]bool
	recommendations []Recommendation
	questions       []QuizQuestion
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the seeded reference catalog. It panics if the seed data
// is structurally invalid, which TestValidate_SeedPasses guards against.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(seedData())
		if err != nil {
			panic(err)
		}
		defaultCat = c
	})
	return defaultCat
}

// New builds and validates a catalog.
func New(d Data) (*Catalog, error) {
	if err := validateData(d); err != nil {
		return nil, err
	}
	return build(d), nil
}

func build(d Data) *Catalog {
	c := &Catalog{
		categories:      slices.Clone(d.Categories),
		categoryByID:    make(map[Category]CategoryInfo, len(d.Categories)),
		skills:          slices.Clone(d.Skills),
		skillByID:       make(map[string]Skill, len(d.Skills)),
		byCategory:      make(map[Category][]Skill),
		goals:           slices.Clone(d.CareerGoals),
		goalByID:        make(map[string]CareerGoal, len(d.CareerGoals)),
		requirements:    make(map[string][]string, len(d.Requirements)),
		interests:       slices.Clone(d.Interests),
		interestSet:     make(map[string]bool, len(d.Interests)),
		recommendations: make([]Recommendation, len(d.Recommendations)),
		questions:       make([]QuizQuestion, len(d.Questions)),
	}

	for _, ci := range c.categories {
		c.categoryByID[ci.ID] = ci
	}
	for _, s := range c.skills {
		c.skillByID[s.ID] = s
		c.byCategory[s.Category] = append(c.byCategory[s.Category], s)
	}
	for _, g := range c.goals {
		c.goalByID[g.ID] = g
	}
	for id, req := range d.Requirements {
		c.requirements[id] = slices.Clone(req)
	}
	for _, in := range c.interests {
		c.interestSet[in] = true
	}
	for i, r := range d.Recommendations {
		r.Skills = slices.Clone(r.Skills)
		c.recommendations[i] = r
	}
	for i, q := range d.Questions {
		q.Options = slices.Clone(q.Options)
		c.questions[i] = q
	}
	return c
}

// Categories returns category metadata in display order.
func (c *Catalog) Categories() []CategoryInfo {
	return slices.Clone(c.categories)
}

// CategoryInfo returns the metadata for a category. Unknown categories get
// their id as the name.
func (c *Catalog) CategoryInfo(id Category) CategoryInfo {
	if ci, ok := c.categoryByID[id]; ok {
		return ci
	}
	return CategoryInfo{ID: id, Name: string(id)}
}

// Skill returns a skill by ID, or error if not found.
func (c *Catalog) Skill(id string) (Skill, error) {
	s, ok := c.skillByID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return s, nil
}

// Skills returns all skills in catalog order.
func (c *Catalog) Skills() []Skill {
	return slices.Clone(c.skills)
}

// SkillsByCategory returns the skills of one category in catalog order.
func (c *Catalog) SkillsByCategory(cat Category) []Skill {
	return slices.Clone(c.byCategory[cat])
}

// CareerGoal returns a goal by ID, or error if not found.
func (c *Catalog) CareerGoal(id string) (CareerGoal, error) {
	g, ok := c.goalByID[id]
	if !ok {
		return CareerGoal{}, fmt.Errorf("career goal not found: %q", id)
	}
	return g, nil
}

// CareerGoals returns all goals in catalog order.
func (c *Catalog) CareerGoals() []CareerGoal {
	return slices.Clone(c.goals)
}

// Requirements returns the ordered required skill IDs for a goal, or nil if
// the goal has no requirement entry.
func (c *Catalog) Requirements(goalID string) []string {
	return slices.Clone(c.requirements[goalID])
}

// RequirementGoals returns the goal IDs that have a requirement entry,
// sorted.
func (c *Catalog) RequirementGoals() []string {
	return slices.Sorted(maps.Keys(c.requirements))
}

// Interests returns the selectable interests.
func (c *Catalog) Interests() []string {
	return slices.Clone(c.interests)
}

// IsInterest reports whether s is a selectable interest.
func (c *Catalog) IsInterest(s string) bool {
	return c.interestSet[s]
}

// Recommendations returns the recommendation catalog in order.
func (c *Catalog) Recommendations() []Recommendation {
	out := make([]Recommendation, len(c.recommendations))
	for i, r := range c.recommendations {
		r.Skills = slices.Clone(r.Skills)
		out[i] = r
	}
	return out
}

// Questions returns the quiz question bank in order.
func (c *Catalog) Questions() []QuizQuestion {
	out := make([]QuizQuestion, len(c.questions))
	for i, q := range c.questions {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}
