package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/store"
)

// CompletionRecorder is told when a user's profile reaches every onboarding
// step. The session layer implements it to flip the user's completion flag.
type CompletionRecorder interface {
	RecordProfileCompleted(ctx context.Context, userID string) error
}

// Service loads, updates and persists profiles.
//
// Every mutating method returns a new Profile and leaves its input alone.
// Mutations are persisted before they are returned; a failed write is
// returned to the caller and the new profile is discarded.
type Service struct {
	docs     store.DocumentRepo
	cat      *catalog.Catalog
	recorder CompletionRecorder
	logger   *slog.Logger
}

// NewService creates a profile service.
func NewService(docs store.DocumentRepo, cat *catalog.Catalog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, cat: cat, logger: logger}
}

// SetCompletionRecorder registers the recorder notified by MarkStepComplete.
func (s *Service) SetCompletionRecorder(r CompletionRecorder) {
	s.recorder = r
}

// Catalog returns the reference catalog the service resolves against.
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

// Load returns the stored profile for userID, or a fresh empty profile if
// none exists.
func (s *Service) Load(ctx context.Context, userID string) (Profile, error) {
	var p Profile
	err := s.docs.GetJSON(ctx, store.ProfileKey(userID), Kind, &p)
	if errors.Is(err, store.ErrNotFound) {
		return New(userID), nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return p.normalize(), nil
}

// Current returns the profile mirrored in the current-session slot.
func (s *Service) Current(ctx context.Context) (Profile, bool, error) {
	var p Profile
	err := s.docs.GetJSON(ctx, store.CurrentProfileKey, Kind, &p)
	if errors.Is(err, store.ErrNotFound) {
		return Profile{}, false, nil
	}
	if err != nil {
		return Profile{}, false, fmt.Errorf("load current profile: %w", err)
	}
	return p.normalize(), true, nil
}

// ClearCurrent empties the current-session slot. Per-user profiles remain.
func (s *Service) ClearCurrent(ctx context.Context) error {
	if err := s.docs.Delete(ctx, store.CurrentProfileKey); err != nil {
		return fmt.Errorf("clear current profile: %w", err)
	}
	return nil
}

// Save overwrites the stored profile and the current-session mirror.
func (s *Service) Save(ctx context.Context, p Profile) error {
	if p.UserID == "" {
		return errors.New("save profile: empty user id")
	}
	p = p.normalize()
	if err := s.docs.PutJSON(ctx, store.ProfileKey(p.UserID), Kind, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if err := s.docs.PutJSON(ctx, store.CurrentProfileKey, Kind, p); err != nil {
		return fmt.Errorf("save current profile: %w", err)
	}
	s.logger.Debug("profile saved", "user_id", p.UserID)
	return nil
}

// Apply merges patch over p without persisting.
func (s *Service) Apply(p Profile, patch Patch) (Profile, error) {
	out, err := patch.apply(s.cat, p)
	if err != nil {
		return Profile{}, fmt.Errorf("apply patch: %w", err)
	}
	return out.normalize(), nil
}

// Update merges patch over p and persists the result.
func (s *Service) Update(ctx context.Context, p Profile, patch Patch) (Profile, error) {
	out, err := s.Apply(p, patch)
	if err != nil {
		return Profile{}, err
	}
	return s.commit(ctx, out)
}

// MarkStepComplete adds step to the completed set and persists the profile,
// even when the step was already present. When the set reaches every step
// the completion recorder is notified.
func (s *Service) MarkStepComplete(ctx context.Context, p Profile, step int) (Profile, error) {
	if step < 1 || step > StepCount {
		return Profile{}, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	out := p.Clone()
	if !out.HasStep(step) {
		out.CompletedSteps = append(out.CompletedSteps, step)
	}
	out, err := s.commit(ctx, out)
	if err != nil {
		return Profile{}, err
	}
	s.logger.Info("onboarding step completed", "user_id", out.UserID, "step", step, "completed", len(out.CompletedSteps))

	if out.IsComplete() && s.recorder != nil {
		if err := s.recorder.RecordProfileCompleted(ctx, out.UserID); err != nil {
			return Profile{}, fmt.Errorf("record profile completion: %w", err)
		}
	}
	return out, nil
}

func (s *Service) commit(ctx context.Context, p Profile) (Profile, error) {
	if err := s.Save(ctx, p); err != nil {
		return Profile{}, err
	}
	return p.normalize(), nil
}
