package profile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/healthskill/internal/catalog"
)

// Onboarding steps, in order.
const (
	StepEducation = iota + 1
	StepCareerGoal
	StepSkills
	StepExperience
	StepCertifications
	StepInterests
)

// StepCount is the number of onboarding steps. Completing all of them
// unlocks the gated features.
const StepCount = 6

// Step describes one onboarding step.
type Step struct {
	Number int
	Name   string
}

// Steps returns the onboarding steps in order.
func Steps() []Step {
	return []Step{
		{StepEducation, "Education"},
		{StepCareerGoal, "Career Goal"},
		{StepSkills, "Skills"},
		{StepExperience, "Experience"},
		{StepCertifications, "Certifications"},
		{StepInterests, "Interests"},
	}
}

// StepName returns the display name of step n, or "" if out of range.
func StepName(n int) string {
	if n < 1 || n > StepCount {
		return ""
	}
	return Steps()[n-1].Name
}

// Minimums per step.
const (
	MinEducation = 1
	MinSkills    = 3
	MinInterests = 2
)

type educationStep struct {
	Education []Education `validate:"min=1"`
}

type careerGoalStep struct {
	CareerGoal *catalog.CareerGoal `validate:"required"`
}

type skillsStep struct {
	Skills []UserSkill `validate:"min=3"`
}

type interestsStep struct {
	Interests []string `validate:"min=2"`
}

var validate = validator.New()

// ValidateStep checks whether p satisfies the requirements of onboarding
// step n. Steps 4 and 5 have no requirements.
func ValidateStep(n int, p Profile) error {
	var (
		input any
		msg   string
	)
	switch n {
	case StepEducation:
		input, msg = educationStep{p.Education}, "please add at least one education entry"
	case StepCareerGoal:
		input, msg = careerGoalStep{p.CareerGoal}, "please select a career goal"
	case StepSkills:
		input, msg = skillsStep{p.Skills}, fmt.Sprintf("please select at least %d skills", MinSkills)
	case StepExperience, StepCertifications:
		return nil
	case StepInterests:
		input, msg = interestsStep{p.Interests}, fmt.Sprintf("please select at least %d interests", MinInterests)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidStep, n)
	}

	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate step %d: %w", n, err)
		}
		return &ValidationError{Step: n, Message: msg}
	}
	return nil
}
