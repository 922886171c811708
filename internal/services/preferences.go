package services

import (
	"context"
	"fmt"

	"github.com/Sathvik1533/Skillsync/internal/common"
	"github.com/Sathvik1533/Skillsync/internal/models"
	"github.com/Sathvik1533/Skillsync/internal/repositories/kv"
)

// KeyTheme holds "light" or "dark".
const KeyTheme = "theme"

// Preferences stores UI settings.
type Preferences struct {
	repo kv.Repository
}

func NewPreferences(repo kv.Repository) *Preferences {
	return &Preferences{repo: repo}
}

// Theme returns the stored theme, or light when none (or garbage) is stored.
func (p *Preferences) Theme(ctx context.Context) (models.Theme, error) {
	raw, err := p.repo.Get(ctx, KeyTheme)
	if err != nil {
		return models.ThemeLight, fmt.Errorf("load theme: %w", err)
	}
	t, err := models.ParseTheme(string(raw))
	if err != nil {
		return models.ThemeLight, nil
	}
	return t, nil
}

// SetTheme validates and stores t.
func (p *Preferences) SetTheme(ctx context.Context, t models.Theme) error {
	parsed, err := models.ParseTheme(string(t))
	if err != nil {
		return common.NewValidationError("theme", "must be light or dark")
	}
	if err := p.repo.Set(ctx, KeyTheme, []byte(parsed)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func (p *Preferences) ToggleTheme(ctx context.Context) (models.Theme, error) {
	cur, err := p.Theme(ctx)
	if err != nil {
		return cur, err
	}
	next := cur.Toggle()
	if err := p.SetTheme(ctx, next); err != nil {
		return cur, err
	}
	return next, nil
}
