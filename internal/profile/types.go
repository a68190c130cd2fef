package profile

import (
	"slices"

	"github.com/abhisek/healthskill/internal/catalog"
)

// Proficiency is a self-declared skill level.
type Proficiency = catalog.Level

// UserSkill is a skill recorded on a profile. Skill is a denormalized copy
// of the catalog entry.
type UserSkill struct {
	SkillID     string        `json:"skillId" yaml:"skillId"`
	Skill       catalog.Skill `json:"skill" yaml:"skill"`
	Proficiency Proficiency   `json:"proficiency" yaml:"proficiency"`
}

// Education is a free-form education record.
type Education struct {
	ID          string `json:"id" yaml:"id"`
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Year        string `json:"year" yaml:"year"`
	Field       string `json:"field" yaml:"field"`
}

// Experience is a free-form work or project record.
type Experience struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Organization string `json:"organization" yaml:"organization"`
	Duration     string `json:"duration" yaml:"duration"`
	Description  string `json:"description" yaml:"description"`
}

// Certification is a free-form certification record.
type Certification struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Issuer       string `json:"issuer" yaml:"issuer"`
	Year         string `json:"year" yaml:"year"`
	CredentialID string `json:"credentialId,omitempty" yaml:"credentialId,omitempty"`
}

// Profile is a user's career profile.
type Profile struct {
	UserID         string              `json:"userId" yaml:"userId"`
	Education      []Education         `json:"education" yaml:"education"`
	CareerGoal     *catalog.CareerGoal `json:"careerGoal" yaml:"careerGoal"`
	Skills         []UserSkill         `json:"skills" yaml:"skills"`
	Experiences    []Experience        `json:"experiences" yaml:"experiences"`
	Certifications []Certification     `json:"certifications" yaml:"certifications"`
	Interests      []string            `json:"interests" yaml:"interests"`
	CompletedSteps []int               `json:"completedSteps" yaml:"completedSteps"`
}

// New returns an empty profile for userID.
func New(userID string) Profile {
	return Profile{
		UserID:         userID,
		Education:      []Education{},
		Skills:         []UserSkill{},
		Experiences:    []Experience{},
		Certifications: []Certification{},
		Interests:      []string{},
		CompletedSteps: []int{},
	}
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	out := p
	out.Education = slices.Clone(p.Education)
	out.Skills = slices.Clone(p.Skills)
	out.Experiences = slices.Clone(p.Experiences)
	out.Certifications = slices.Clone(p.Certifications)
	out.Interests = slices.Clone(p.Interests)
	out.CompletedSteps = slices.Clone(p.CompletedSteps)
	if p.CareerGoal != nil {
		g := *p.CareerGoal
		out.CareerGoal = &g
	}
	return out
}

// normalize replaces nil collections with empty ones so the stored JSON
// never carries nulls for lists.
func (p Profile) normalize() Profile {
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Skills == nil {
		p.Skills = []UserSkill{}
	}
	if p.Experiences == nil {
		p.Experiences = []Experience{}
	}
	if p.Certifications == nil {
		p.Certifications = []Certification{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.CompletedSteps == nil {
		p.CompletedSteps = []int{}
	}
	return p
}

// HasStep reports whether onboarding step n is completed.
func (p Profile) HasStep(n int) bool {
	return slices.Contains(p.CompletedSteps, n)
}

// IsComplete reports whether every onboarding step is completed.
func (p Profile) IsComplete() bool {
	return len(p.CompletedSteps) >= StepCount
}

// FindSkill returns the profile's entry for skillID.
func (p Profile) FindSkill(skillID string) (UserSkill, bool) {
	i := p.skillIndex(skillID)
	if i < 0 {
		return UserSkill{}, false
	}
	return p.Skills[i], true
}

func (p Profile) skillIndex(skillID string) int {
	return slices.IndexFunc(p.Skills, func(s UserSkill) bool { return s.SkillID == skillID })
}
