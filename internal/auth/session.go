package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/healthskill/internal/profile"
	"github.com/abhisek/healthskill/internal/store"
)

// MinPasswordLength is the only password rule.
const MinPasswordLength = 6

// DefaultDelay is the simulated network delay of Signup and Login.
const DefaultDelay = time.Second

// Feature names a screen that stays locked until onboarding is complete.
type Feature string

const (
	FeatureDashboard       Feature = "dashboard"
	FeatureSkills          Feature = "skills"
	FeatureSkillGap        Feature = "skill-gap"
	FeatureRecommendations Feature = "recommendations"
	FeatureQuiz            Feature = "quiz"
)

// GatedFeatures returns every feature locked behind onboarding.
func GatedFeatures() []Feature {
	return []Feature{FeatureDashboard, FeatureSkills, FeatureSkillGap, FeatureRecommendations, FeatureQuiz}
}

type signupInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

var validate = validator.New()

// Option configures a Session.
type Option func(*Session)

// WithDelay sets the simulated Signup/Login delay.
func WithDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithSleep replaces time.Sleep, for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *Session) { s.sleep = fn }
}

// WithClock replaces time.Now, for tests.
func WithClock(fn func() time.Time) Option {
	return func(s *Session) { s.now = fn }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session holds the signed-in user and their profile.
//
// In-memory state only changes after the corresponding writes succeed.
// Getters are safe to call while a Signup or Login is sleeping.
type Session struct {
	docs     store.DocumentRepo
	profiles *profile.Service
	registry *Registry

	delay  time.Duration
	sleep  func(time.Duration)
	now    func() time.Time
	logger *slog.Logger

	mu      sync.RWMutex
	user    *User
	profile profile.Profile
}

// NewSession creates a session and registers it as the profile service's
// completion recorder.
func NewSession(docs store.DocumentRepo, profiles *profile.Service, registry *Registry, opts ...Option) *Session {
	s := &Session{
		docs:     docs,
		profiles: profiles,
		registry: registry,
		delay:    DefaultDelay,
		sleep:    time.Sleep,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	profiles.SetCompletionRecorder(s)
	return s
}

// User returns the signed-in user.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Profile returns the signed-in user's profile.
func (s *Session) Profile() (profile.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return profile.Profile{}, false
	}
	return s.profile.Clone(), true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// IsProfileComplete reports whether every onboarding step is done.
func (s *Session) IsProfileComplete() bool {
	p, ok := s.Profile()
	return ok && p.IsComplete()
}

// Require returns ErrLocked if feature is gated and onboarding is not
// complete, or ErrNoSession if nobody is signed in.
func (s *Session) Require(feature Feature) error {
	p, ok := s.Profile()
	if !ok {
		return ErrNoSession
	}
	for _, f := range GatedFeatures() {
		if f == feature && !p.IsComplete() {
			return fmt.Errorf("%w: %s (%d of %d steps done)", ErrLocked, feature, len(p.CompletedSteps), profile.StepCount)
		}
	}
	return nil
}

// Signup creates an account and signs it in. The simulated delay always
// runs to completion; ctx only bounds the writes that follow.
func (s *Session) Signup(ctx context.Context, name, email, password string) (User, error) {
	s.sleep(s.delay)

	if _, exists := s.registry.Find(email); exists {
		return User{}, ErrDuplicateUser
	}
	if len(password) < MinPasswordLength {
		return User{}, ErrWeakPassword
	}
	if err := validate.Struct(signupInput{Name: name, Email: email}); err != nil {
		return User{}, ErrInvalidInput
	}

	now := s.now().UTC()
	u := User{
		ID:        profile.NewIDAt(now),
		Email:     email,
		Name:      name,
		Role:      RoleUser,
		CreatedAt: now,
		LastLogin: now,
	}
	p := profile.New(u.ID)

	if err := s.profiles.Save(ctx, p); err != nil {
		return User{}, fmt.Errorf("signup: %w", err)
	}
	if err := s.saveUser(ctx, u); err != nil {
		return User{}, fmt.Errorf("signup: %w", err)
	}
	if err := s.registry.Add(u); err != nil {
		return User{}, err
	}

	s.set(&u, p)
	s.logger.Info("user signed up", "user_id", u.ID)
	return u, nil
}

// Login signs in a known user. Unknown emails and short passwords fail the
// same way.
func (s *Session) Login(ctx context.Context, email, password string) (User, error) {
	s.sleep(s.delay)

	found, ok := s.registry.Find(email)
	if !ok || len(password) < MinPasswordLength {
		s.logger.Warn("login rejected")
		return User{}, ErrInvalidCredentials
	}

	u := found
	u.LastLogin = s.now().UTC()

	p, err := s.profiles.Load(ctx, u.ID)
	if err != nil {
		return User{}, fmt.Errorf("login: %w", err)
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return User{}, fmt.Errorf("login: %w", err)
	}
	if err := s.saveUser(ctx, u); err != nil {
		return User{}, fmt.Errorf("login: %w", err)
	}

	s.registry.Update(u)
	s.set(&u, p)
	s.logger.Info("user logged in", "user_id", u.ID)
	return u, nil
}

// Logout clears the session and the current-session slots. Per-user
// profiles stay stored.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.docs.Delete(ctx, store.CurrentUserKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if err := s.profiles.ClearCurrent(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	if u, ok := s.User(); ok {
		s.logger.Info("user logged out", "user_id", u.ID)
	}
	s.set(nil, profile.Profile{})
	return nil
}

// Restore reloads the session from the current-session slots. It reports
// false when nobody was signed in.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	var u User
	err := s.docs.GetJSON(ctx, store.CurrentUserKey, UserKind, &u)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("restore session: %w", err)
	}

	p, ok, err := s.profiles.Current(ctx)
	if err != nil {
		return false, fmt.Errorf("restore session: %w", err)
	}
	if !ok || p.UserID != u.ID {
		if p, err = s.profiles.Load(ctx, u.ID); err != nil {
			return false, fmt.Errorf("restore session: %w", err)
		}
	}

	s.set(&u, p)
	s.logger.Debug("session restored", "user_id", u.ID)
	return true, nil
}

// RecordProfileCompleted marks the signed-in user's profile complete and
// persists the user.
func (s *Session) RecordProfileCompleted(ctx context.Context, userID string) error {
	u, ok := s.User()
	if !ok {
		return ErrNoSession
	}
	if u.ID != userID {
		return fmt.Errorf("record completion for %q: signed in as %q", userID, u.ID)
	}

	u.ProfileCompleted = true
	if err := s.saveUser(ctx, u); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	s.registry.Update(u)
	s.logger.Info("profile completed", "user_id", u.ID)
	return nil
}

// UpdateProfile applies patch to the signed-in user's profile.
func (s *Session) UpdateProfile(ctx context.Context, patch profile.Patch) (profile.Profile, error) {
	return s.mutate(func(p profile.Profile) (profile.Profile, error) {
		return s.profiles.Update(ctx, p, patch)
	})
}

// SubmitStep validates step against the patched profile, persists the patch
// and marks the step complete. Nothing is written if validation fails.
func (s *Session) SubmitStep(ctx context.Context, step int, patch profile.Patch) (profile.Profile, error) {
	return s.mutate(func(p profile.Profile) (profile.Profile, error) {
		candidate, err := s.profiles.Apply(p, patch)
		if err != nil {
			return profile.Profile{}, err
		}
		if err := profile.ValidateStep(step, candidate); err != nil {
			return profile.Profile{}, err
		}
		if !patch.Empty() {
			if p, err = s.profiles.Update(ctx, p, patch); err != nil {
				return profile.Profile{}, err
			}
		}
		return s.profiles.MarkStepComplete(ctx, p, step)
	})
}

// AddSkill adds a skill to the signed-in user's profile.
func (s *Session) AddSkill(ctx context.Context, skillID string, level profile.Proficiency) (profile.Profile, error) {
	return s.mutate(func(p profile.Profile) (profile.Profile, error) {
		return s.profiles.AddSkill(ctx, p, skillID, level)
	})
}

// SetProficiency changes a skill level on the signed-in user's profile.
func (s *Session) SetProficiency(ctx context.Context, skillID string, level profile.Proficiency) (profile.Profile, error) {
	return s.mutate(func(p profile.Profile) (profile.Profile, error) {
		return s.profiles.SetProficiency(ctx, p, skillID, level)
	})
}

// RemoveSkill removes a skill from the signed-in user's profile.
func (s *Session) RemoveSkill(ctx context.Context, skillID string) (profile.Profile, error) {
	return s.mutate(func(p profile.Profile) (profile.Profile, error) {
		return s.profiles.RemoveSkill(ctx, p, skillID)
	})
}

// ToggleSkill adds or removes a skill on the signed-in user's profile.
func (s *Session) ToggleSkill(ctx context.Context, skillID string, level profile.Proficiency) (profile.Profile, error) {
	return s.mutate(func(p profile.Profile) (profile.Profile, error) {
		return s.profiles.ToggleSkill(ctx, p, skillID, level)
	})
}

// Edit runs fn against the signed-in user's profile through the profile
// service, for entry edits without a dedicated pass-through.
func (s *Session) Edit(ctx context.Context, fn func(ctx context.Context, svc *profile.Service, p profile.Profile) (profile.Profile, error)) (profile.Profile, error) {
	return s.mutate(func(p profile.Profile) (profile.Profile, error) {
		return fn(ctx, s.profiles, p)
	})
}

func (s *Session) mutate(fn func(profile.Profile) (profile.Profile, error)) (profile.Profile, error) {
	p, ok := s.Profile()
	if !ok {
		return profile.Profile{}, ErrNoSession
	}
	out, err := fn(p)
	if err != nil {
		return profile.Profile{}, err
	}

	s.mu.Lock()
	s.profile = out
	s.mu.Unlock()
	return out.Clone(), nil
}

func (s *Session) saveUser(ctx context.Context, u User) error {
	if err := s.docs.PutJSON(ctx, store.CurrentUserKey, UserKind, u); err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	return nil
}

func (s *Session) set(u *User, p profile.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.profile = p
}
