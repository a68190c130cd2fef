package catalog

// Category identifies one of the fixed skill categories.
type Category string

const (
	CategoryDataAnalytics Category = "health-data-analytics"
	CategoryInformatics   Category = "health-informatics"
	CategoryDataStandards Category = "data-standards"
	CategoryPrivacy       Category = "privacy-security"
	CategoryAIDigital     Category = "ai-digital-health"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryDataAnalytics,
		CategoryInformatics,
		CategoryDataStandards,
		CategoryPrivacy,
		CategoryAIDigital,
	}
}

// CategoryInfo carries the display metadata for a category.
type CategoryInfo struct {
	ID          Category `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon" yaml:"icon"`
}

// Level is a three-step scale shared by skill proficiency and
// recommendation difficulty.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns the levels from lowest to highest.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Rank maps a level to 1/2/3. Unknown levels rank 0.
func (l Level) Rank() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 0
	}
}

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	return l.Rank() > 0
}

// ParseLevel parses a level name.
func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	return l, l.Valid()
}

// Skill is a reference skill definition.
type Skill struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
}

// CareerGoal is a target healthcare-technology role.
type CareerGoal struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// RecommendationType distinguishes courses from hands-on projects.
type RecommendationType string

const (
	TypeCourse  RecommendationType = "course"
	TypeProject RecommendationType = "project"
)

// Recommendation is a learning resource from the static catalog.
type Recommendation struct {
	ID          string             `json:"id" yaml:"id"`
	Type        RecommendationType `json:"type" yaml:"type"`
	Title       string             `json:"title" yaml:"title"`
	Description string             `json:"description" yaml:"description"`
	Difficulty  Level              `json:"difficulty" yaml:"difficulty"`
	Skills      []string           `json:"skills" yaml:"skills"`
	Duration    string             `json:"duration" yaml:"duration"`
	Provider    string             `json:"provider,omitempty" yaml:"provider,omitempty"`
	Explanation string             `json:"explanation" yaml:"explanation"`
}

// QuestionDifficulty grades quiz questions.
type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
	DifficultyHard   QuestionDifficulty = "hard"
)

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	ID            string             `json:"id" yaml:"id"`
	Question      string             `json:"question" yaml:"question"`
	Options       []string           `json:"options" yaml:"options"`
	CorrectAnswer int                `json:"correctAnswer" yaml:"correctAnswer"` // 0-based
	SkillCategory Category           `json:"skillCategory" yaml:"skillCategory"`
	Difficulty    QuestionDifficulty `json:"difficulty" yaml:"difficulty"`
}

// OptionsPerQuestion is the fixed number of answer options.
const OptionsPerQuestion = 4

// FallbackGoalID is the career goal used for gap analysis when a profile has
// no goal selected.
const FallbackGoalID = "health-data-analyst"

// Data is the raw input a Catalog is built from.
type Data struct {
	Categories      []CategoryInfo
	Skills          []Skill
	CareerGoals     []CareerGoal
	Requirements    map[string][]string
	Interests       []string
	Recommendations []Recommendation
	Questions       []QuizQuestion
}
