package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed matches every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	ErrInvalidStep     = errors.New("invalid onboarding step")
	ErrDuplicateSkill  = errors.New("skill already on profile")
	ErrSkillNotFound   = errors.New("skill not on profile")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrUnknownGoal     = errors.New("unknown career goal")
	ErrUnknownSkill    = errors.New("unknown skill")
	ErrUnknownInterest = errors.New("unknown interest")
	ErrInvalidLevel    = errors.New("invalid proficiency level")
)

// ValidationError reports why an onboarding step cannot be completed.
type ValidationError struct {
	Step    int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }
