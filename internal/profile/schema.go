package profile

import "github.com/abhisek/healthskill/internal/store"

// Kind is the stored document kind for profiles.
var Kind = store.Kind{
	Name: "profile",
	Schema: map[string]any{
		"type":     "object",
		"required": []any{"userId", "skills", "completedSteps"},
		"properties": map[string]any{
			"userId": map[string]any{"type": "string", "minLength": 1},
			"careerGoal": map[string]any{
				"type":     []any{"object", "null"},
				"required": []any{"id"},
			},
			"skills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"skillId", "proficiency"},
					"properties": map[string]any{
						"skillId":     map[string]any{"type": "string", "minLength": 1},
						"proficiency": map[string]any{"enum": []any{"beginner", "intermediate", "advanced"}},
					},
				},
			},
			"interests": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"uniqueItems": true,
			},
			"completedSteps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "integer", "minimum": 1, "maximum": StepCount},
				"uniqueItems": true,
			},
		},
	},
}
