// Package models defines the records SkillSync keeps in its key/value store.
package models

import (
	"strings"
	"time"

	"github.com/Sathvik1533/Skillsync/internal/common"
)

// Well-known proficiency levels. Level is open-ended; these are the values the
// dashboard counts and the client offers by default.
const (
	LevelLearning     = "Learning"
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
	LevelCompleted    = "Completed"
)

// Levels lists the suggested levels in the order the client presents them.
var Levels = []string{
	LevelLearning,
	LevelBeginner,
	LevelIntermediate,
	LevelAdvanced,
	LevelExpert,
	LevelCompleted,
}

// Skill is one tracked skill. The JSON form is what is persisted under the
// "skills" key.
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Description string    `json:"description"`
	Goals       string    `json:"goals"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Matches reports whether s passes a list filter. term is matched
// case-insensitively against name and description; category and status must
// match exactly when non-empty.
func (s Skill) Matches(term, category, status string) bool {
	if term != "" {
		t := strings.ToLower(term)
		if !strings.Contains(strings.ToLower(s.Name), t) &&
			!strings.Contains(strings.ToLower(s.Description), t) {
			return false
		}
	}
	if category != "" && s.Category != category {
		return false
	}
	if status != "" && s.Level != status {
		return false
	}
	return true
}

// SkillFields are the user-supplied fields of a new skill.
type SkillFields struct {
	Name        string
	Category    string
	Level       string
	Description string
	Goals       string
}

// Normalize trims surrounding whitespace from every field.
func (f SkillFields) Normalize() SkillFields {
	return SkillFields{
		Name:        strings.TrimSpace(f.Name),
		Category:    strings.TrimSpace(f.Category),
		Level:       strings.TrimSpace(f.Level),
		Description: strings.TrimSpace(f.Description),
		Goals:       strings.TrimSpace(f.Goals),
	}
}

// Validate checks the required fields of normalized input.
func (f SkillFields) Validate() error {
	switch {
	case f.Name == "":
		return common.NewValidationError("name", "is required")
	case f.Category == "":
		return common.NewValidationError("category", "is required")
	case f.Level == "":
		return common.NewValidationError("level", "is required")
	}
	return nil
}

// SkillPatch is a partial update; nil fields are left unchanged.
type SkillPatch struct {
	Name        *string
	Category    *string
	Level       *string
	Description *string
	Goals       *string
}

// Apply returns a copy of s with the set fields of p merged in (trimmed).
// Timestamps are not touched.
func (p SkillPatch) Apply(s Skill) Skill {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&s.Name, p.Name)
	set(&s.Category, p.Category)
	set(&s.Level, p.Level)
	set(&s.Description, p.Description)
	set(&s.Goals, p.Goals)
	return s
}

// Fields returns the user-editable fields of s.
func (s Skill) Fields() SkillFields {
	return SkillFields{
		Name:        s.Name,
		Category:    s.Category,
		Level:       s.Level,
		Description: s.Description,
		Goals:       s.Goals,
	}
}

// Summary holds the dashboard figures.
type Summary struct {
	Total     int
	Completed int
	Learning  int
	Recent    []Skill
}
