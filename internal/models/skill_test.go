package models

import (
	"testing"

	"github.com/Sathvik1533/Skillsync/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestSkill_Matches(t *testing.T) {
	s := Skill{Name: "Go", Category: "Programming", Level: LevelLearning, Description: "Concurrency patterns"}

	tests := []struct {
		name                   string
		term, category, status string
		want                   bool
	}{
		{"empty matches all", "", "", "", true},
		{"name case-insensitive", "GO", "", "", true},
		{"description substring", "concurr", "", "", true},
		{"term miss", "rust", "", "", false},
		{"category exact", "", "Programming", "", true},
		{"category is case-sensitive", "", "programming", "", false},
		{"status exact", "", "", LevelLearning, true},
		{"status miss", "", "", LevelCompleted, false},
		{"all combined", "pattern", "Programming", LevelLearning, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Matches(tt.term, tt.category, tt.status))
		})
	}
}

func TestSkillFields_NormalizeAndValidate(t *testing.T) {
	f := SkillFields{Name: "  Go ", Category: " Programming", Level: "Learning "}.Normalize()
	assert.Equal(t, SkillFields{Name: "Go", Category: "Programming", Level: "Learning"}, f)
	require.NoError(t, f.Validate())

	for _, tc := range []struct {
		field string
		in    SkillFields
	}{
		{"name", SkillFields{Category: "c", Level: "l"}},
		{"category", SkillFields{Name: "n", Level: "l"}},
		{"level", SkillFields{Name: "n", Category: "c"}},
	} {
		err := tc.in.Validate()
		require.ErrorIs(t, err, common.ErrValidation)

		var ve *common.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, tc.field, ve.Field)
	}
}

func TestSkillPatch_Apply(t *testing.T) {
	s := Skill{ID: "1", Name: "Go", Category: "Programming", Level: LevelLearning, Goals: "ship"}

	got := SkillPatch{Level: ptr(" Completed "), Goals: ptr("")}.Apply(s)

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "Go", got.Name)
	assert.Equal(t, LevelCompleted, got.Level)
	assert.Equal(t, "", got.Goals)
	assert.Equal(t, LevelLearning, s.Level, "original must not change")

	assert.Equal(t, s, SkillPatch{}.Apply(s))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", DisplayName(" Ada", "Lovelace "))
	assert.Equal(t, "Ada", DisplayName("Ada", ""))
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("DARK")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)
	assert.Equal(t, ThemeLight, th.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())

	_, err = ParseTheme("solarized")
	assert.Error(t, err)
}
