package cli

import (
	"context"
	"errors"

	"github.com/Sathvik1533/Skillsync/internal/backup"
	"github.com/Sathvik1533/Skillsync/internal/models"
)

// Theme toggles the colour theme, or sets it when name is given.
func (a *App) Theme(ctx context.Context, name string) error {
	var t models.Theme
	var err error

	if name == "" {
		t, err = a.prefs.ToggleTheme(ctx)
	} else {
		t = models.Theme(name)
		err = a.prefs.SetTheme(ctx, t)
		if err == nil {
			t, err = models.ParseTheme(name)
		}
	}
	if err != nil {
		return err
	}

	a.render.SetTheme(t)
	a.info("Theme switched to " + string(t) + ".")
	return nil
}

// Backup exports the skills to every configured destination.
func (a *App) Backup(ctx context.Context) error {
	if a.backup == nil {
		a.info("Backups are not configured.")
		return nil
	}

	locations, err := a.backup.Run(ctx)
	if errors.Is(err, backup.ErrNoExporters) {
		a.info("Backups are not configured.")
		return nil
	}
	for _, loc := range locations {
		a.success("Backup written to " + loc)
	}
	return err
}
