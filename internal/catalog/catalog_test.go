package catalog

import (
	"testing"
)

func TestSkill_Exists(t *testing.T) {
	s, err := Default().Skill("hl7-fhir")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "HL7 FHIR" {
		t.Errorf("got name %q, want %q", s.Name, "HL7 FHIR")
	}
	if s.Category != CategoryDataStandards {
		t.Errorf("got category %q, want %q", s.Category, CategoryDataStandards)
	}
}

func TestSkill_NotFound(t *testing.T) {
	_, err := Default().Skill("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent skill, got nil")
	}
}

func TestSkills_Count(t *testing.T) {
	all := Default().Skills()
	if len(all) != 22 {
		t.Errorf("got %d skills, want 22", len(all))
	}
}

func TestSkillsByCategory(t *testing.T) {
	tests := []struct {
		cat  Category
		want int
	}{
		{CategoryDataAnalytics, 5},
		{CategoryInformatics, 4},
		{CategoryDataStandards, 4},
		{CategoryPrivacy, 4},
		{CategoryAIDigital, 5},
	}
	for _, tt := range tests {
		skills := Default().SkillsByCategory(tt.cat)
		if len(skills) != tt.want {
			t.Errorf("SkillsByCategory(%q): got %d skills, want %d", tt.cat, len(skills), tt.want)
		}
		for _, s := range skills {
			if s.Category != tt.cat {
				t.Errorf("SkillsByCategory(%q) returned %q of category %q", tt.cat, s.ID, s.Category)
			}
		}
	}
}

func TestCategories_DisplayOrder(t *testing.T) {
	cats := Default().Categories()
	want := AllCategories()
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i := range want {
		if cats[i].ID != want[i] {
			t.Errorf("category %d = %q, want %q", i, cats[i].ID, want[i])
		}
	}
}

func TestRequirements_FivePerGoal(t *testing.T) {
	c := Default()
	for _, g := range c.CareerGoals() {
		req := c.Requirements(g.ID)
		if len(req) != 5 {
			t.Errorf("Requirements(%q): got %d skills, want 5", g.ID, len(req))
		}
	}
	if got := c.Requirements("nonexistent"); got != nil {
		t.Errorf("Requirements(nonexistent) = %v, want nil", got)
	}
}

func TestRequirements_Order(t *testing.T) {
	got := Default().Requirements(FallbackGoalID)
	want := []string{"sql", "python", "tableau", "biostatistics", "hipaa"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Requirements[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetters_ReturnCopies(t *testing.T) {
	c := Default()

	req := c.Requirements(FallbackGoalID)
	req[0] = "mutated"
	if c.Requirements(FallbackGoalID)[0] != "sql" {
		t.Error("Requirements leaked internal slice")
	}

	recs := c.Recommendations()
	recs[0].Skills[0] = "mutated"
	if c.Recommendations()[0].Skills[0] != "sql" {
		t.Error("Recommendations leaked internal skills slice")
	}

	qs := c.Questions()
	qs[0].Options[0] = "mutated"
	if c.Questions()[0].Options[0] == "mutated" {
		t.Error("Questions leaked internal options slice")
	}
}

func TestInterests(t *testing.T) {
	c := Default()
	if got := len(c.Interests()); got != 16 {
		t.Errorf("got %d interests, want 16", got)
	}
	if !c.IsInterest("Clinical Research") {
		t.Error("expected Clinical Research to be an interest")
	}
	if c.IsInterest("Underwater Basket Weaving") {
		t.Error("unexpected interest accepted")
	}
}

func TestQuestions_Bank(t *testing.T) {
	qs := Default().Questions()
	if len(qs) != 10 {
		t.Fatalf("got %d questions, want 10", len(qs))
	}
	for _, q := range qs {
		if len(q.Options) != OptionsPerQuestion {
			t.Errorf("question %q has %d options", q.ID, len(q.Options))
		}
	}
}

func TestLevel_Rank(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelBeginner, 1},
		{LevelIntermediate, 2},
		{LevelAdvanced, 3},
		{Level("expert"), 0},
	}
	for _, tt := range tests {
		if got := tt.level.Rank(); got != tt.want {
			t.Errorf("%q.Rank() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestCategoryInfo_Unknown(t *testing.T) {
	ci := Default().CategoryInfo(Category("mystery"))
	if ci.Name != "mystery" {
		t.Errorf("Name = %q, want fallback to id", ci.Name)
	}
}
