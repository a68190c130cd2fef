package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/abhisek/healthskill/internal/store"
)

type fixture struct {
	store    *store.Store
	profiles *profile.Service
	registry *Registry
	session  *Session
	slept    []time.Duration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureAt(t, filepath.Join(t.TempDir(), "auth.db"))
}

func newFixtureAt(t *testing.T, path string) *fixture {
	t.Helper()
	st, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	f := &fixture{store: st}
	f.profiles = profile.NewService(st.Documents(), catalog.Default(), nil)
	f.registry = NewRegistry(time.Now())
	f.session = NewSession(st.Documents(), f.profiles, f.registry,
		WithDelay(time.Second),
		WithSleep(func(d time.Duration) { f.slept = append(f.slept, d) }),
	)
	return f
}

func TestSignup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.session.Signup(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, RoleUser, u.Role)
	assert.False(t, u.ProfileCompleted)
	assert.Equal(t, []time.Duration{time.Second}, f.slept)

	got, ok := f.session.User()
	require.True(t, ok)
	assert.Equal(t, u.ID, got.ID)

	p, ok := f.session.Profile()
	require.True(t, ok)
	assert.Equal(t, u.ID, p.UserID)
	assert.Empty(t, p.CompletedSteps)

	keys, err := f.store.Documents().Keys(ctx, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{store.CurrentUserKey, store.CurrentProfileKey, store.ProfileKey(u.ID)}, keys)
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		userName string
		want     error
	}{
		{"five character password", "new@example.com", "12345", "New", ErrWeakPassword},
		{"existing demo email", DemoEmail, "123456", "Dup", ErrDuplicateUser},
		{"duplicate checked before password", AdminEmail, "1", "Dup", ErrDuplicateUser},
		{"missing name", "x@example.com", "123456", "", ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.session.Signup(context.Background(), tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, f.session.IsAuthenticated())
		})
	}
}

func TestSignup_ThenDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.session.Signup(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	_, err = f.session.Signup(ctx, "Ada 2", "ada@example.com", "secret2")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"demo user", DemoEmail, "anything", nil},
		{"admin user", AdminEmail, "123456", nil},
		{"five character password", DemoEmail, "12345", ErrInvalidCredentials},
		{"unknown email", "ghost@example.com", "123456", ErrInvalidCredentials},
		{"email is case sensitive", "Demo@HealthSkill.com", "123456", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			u, err := f.session.Login(context.Background(), tt.email, tt.password)
			assert.Len(t, f.slept, 1, "delay runs on every attempt")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, f.session.IsAuthenticated())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, u.Email)
			assert.True(t, f.session.IsAuthenticated())
		})
	}
}

func TestLogin_LoadsStoredProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stored := profile.New("1")
	stored.Interests = []string{"Drug Discovery"}
	require.NoError(t, f.profiles.Save(ctx, stored))

	_, err := f.session.Login(ctx, DemoEmail, "123456")
	require.NoError(t, err)

	p, ok := f.session.Profile()
	require.True(t, ok)
	assert.Equal(t, []string{"Drug Discovery"}, p.Interests)
}

func TestLogout_KeepsPerUserProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.session.Login(ctx, DemoEmail, "123456")
	require.NoError(t, err)
	require.NoError(t, f.session.Logout(ctx))

	assert.False(t, f.session.IsAuthenticated())
	_, ok := f.session.Profile()
	assert.False(t, ok)

	keys, err := f.store.Documents().Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{store.ProfileKey("1")}, keys)

	_, err = f.session.UpdateProfile(ctx, profile.Patch{})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restore.db")
	ctx := context.Background()

	first := newFixtureAt(t, path)
	u, err := first.session.Signup(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	_, err = first.session.AddSkill(ctx, "sql", catalog.LevelAdvanced)
	require.NoError(t, err)
	first.store.Close()

	second := newFixtureAt(t, path)
	ok, err := second.session.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	got, _ := second.session.User()
	assert.Equal(t, u.ID, got.ID)
	p, _ := second.session.Profile()
	require.Len(t, p.Skills, 1)
	assert.Equal(t, "sql", p.Skills[0].SkillID)

	_, known := second.registry.Find("ada@example.com")
	assert.False(t, known, "registry resets on process start")
}

func TestRestore_NoSession(t *testing.T) {
	f := newFixture(t)
	ok, err := f.session.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequire_Gating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.session.Require(FeatureDashboard), ErrNoSession)

	_, err := f.session.Login(ctx, DemoEmail, "123456")
	require.NoError(t, err)
	for _, feat := range GatedFeatures() {
		assert.ErrorIs(t, f.session.Require(feat), ErrLocked, feat)
	}
	assert.NoError(t, f.session.Require(Feature("profile")), "ungated features are always open")
}

func TestRequire_AdminFlagDoesNotUnlock(t *testing.T) {
	f := newFixture(t)
	u, err := f.session.Login(context.Background(), AdminEmail, "123456")
	require.NoError(t, err)
	require.True(t, u.ProfileCompleted)
	assert.ErrorIs(t, f.session.Require(FeatureQuiz), ErrLocked)
}

func completeOnboarding(t *testing.T, s *Session, order []int) {
	t.Helper()
	ctx := context.Background()
	patches := map[int]profile.Patch{
		profile.StepEducation:  {Education: &[]profile.Education{{Degree: "BSc", Institution: "State"}}},
		profile.StepCareerGoal: {CareerGoalID: ptr("health-data-analyst")},
		profile.StepSkills: {Skills: &[]profile.UserSkill{
			{SkillID: "sql", Proficiency: catalog.LevelAdvanced},
			{SkillID: "python", Proficiency: catalog.LevelBeginner},
			{SkillID: "hipaa", Proficiency: catalog.LevelIntermediate},
		}},
		profile.StepInterests: {Interests: &[]string{"Drug Discovery", "Clinical Research"}},
	}
	for _, step := range order {
		_, err := s.SubmitStep(ctx, step, patches[step])
		require.NoError(t, err, "step %d", step)
	}
}

func ptr[T any](v T) *T { return &v }

func TestSubmitStep_CompletesInAnyOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.session.Login(ctx, DemoEmail, "123456")
	require.NoError(t, err)

	completeOnboarding(t, f.session, []int{6, 1, 2, 3, 4})
	u, _ := f.session.User()
	assert.False(t, u.ProfileCompleted)
	assert.ErrorIs(t, f.session.Require(FeatureDashboard), ErrLocked)

	completeOnboarding(t, f.session, []int{5})
	u, _ = f.session.User()
	assert.True(t, u.ProfileCompleted)
	assert.True(t, f.session.IsProfileComplete())
	assert.NoError(t, f.session.Require(FeatureDashboard))

	var stored User
	require.NoError(t, f.store.Documents().GetJSON(ctx, store.CurrentUserKey, UserKind, &stored))
	assert.True(t, stored.ProfileCompleted, "completion flag must be persisted")
}

func TestSubmitStep_ValidationFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.session.Login(ctx, DemoEmail, "123456")
	require.NoError(t, err)

	_, err = f.session.SubmitStep(ctx, profile.StepSkills, profile.Patch{Skills: &[]profile.UserSkill{
		{SkillID: "sql", Proficiency: catalog.LevelAdvanced},
		{SkillID: "python", Proficiency: catalog.LevelBeginner},
	}})
	require.ErrorIs(t, err, profile.ErrValidationFailed)

	p, _ := f.session.Profile()
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.CompletedSteps)

	stored, err := f.profiles.Load(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, stored.Skills)
}

func TestSubmitStep_InterestsNeedTwo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.session.Login(ctx, DemoEmail, "123456")
	require.NoError(t, err)

	_, err = f.session.SubmitStep(ctx, profile.StepInterests, profile.Patch{Interests: &[]string{"Drug Discovery", "Drug Discovery"}})
	assert.ErrorIs(t, err, profile.ErrValidationFailed, "duplicates collapse to one interest")
}

func TestSession_SkillPassThroughs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.session.Login(ctx, DemoEmail, "123456")
	require.NoError(t, err)

	_, err = f.session.AddSkill(ctx, "sql", catalog.LevelBeginner)
	require.NoError(t, err)
	_, err = f.session.AddSkill(ctx, "sql", catalog.LevelBeginner)
	assert.ErrorIs(t, err, profile.ErrDuplicateSkill)

	p, err := f.session.SetProficiency(ctx, "sql", catalog.LevelAdvanced)
	require.NoError(t, err)
	assert.Equal(t, catalog.LevelAdvanced, p.Skills[0].Proficiency)

	p, err = f.session.ToggleSkill(ctx, "python", "")
	require.NoError(t, err)
	assert.Len(t, p.Skills, 2)

	p, err = f.session.RemoveSkill(ctx, "sql")
	require.NoError(t, err)
	assert.Len(t, p.Skills, 1)

	p, err = f.session.Edit(ctx, func(ctx context.Context, svc *profile.Service, p profile.Profile) (profile.Profile, error) {
		return svc.AddCertification(ctx, p, profile.Certification{Name: "CHDA"})
	})
	require.NoError(t, err)
	assert.Len(t, p.Certifications, 1)

	stored, err := f.profiles.Load(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, stored.Skills, 1)
	assert.Len(t, stored.Certifications, 1)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(time.Now())
	assert.Len(t, r.Users(), 2)

	admin, ok := r.Find(AdminEmail)
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.Equal(t, "admin", admin.ID)

	require.NoError(t, r.Add(User{ID: "x", Email: "x@example.com"}))
	assert.ErrorIs(t, r.Add(User{ID: "y", Email: "x@example.com"}), ErrDuplicateUser)

	r.Update(User{ID: "x", Email: "x@example.com", Name: "Renamed"})
	got, _ := r.Find("x@example.com")
	assert.Equal(t, "Renamed", got.Name)
}
