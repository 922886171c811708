package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Sathvik1533/Skillsync/internal/backup"
	"github.com/Sathvik1533/Skillsync/internal/config"
	"github.com/Sathvik1533/Skillsync/internal/logging"
	"github.com/Sathvik1533/Skillsync/internal/models"
	"github.com/Sathvik1533/Skillsync/internal/render"
	"github.com/Sathvik1533/Skillsync/internal/repositories/repomanager"
	"github.com/Sathvik1533/Skillsync/internal/services"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

// readerFromLines feeds each line followed by a newline; no lines means
// immediate EOF.
func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 {
		return bufio.NewReader(strings.NewReader(""))
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// noTerminal makes GetPassword read from the supplied reader.
func noTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	noTerminal(t)

	ctx := context.Background()
	db, m, err := repomanager.Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BackupDir = t.TempDir()

	repo := m.KV(db)
	skills := services.NewSkillStore(repo)
	out := &bytes.Buffer{}

	a := &App{
		config:   cfg,
		db:       db,
		sessions: services.NewSessionStore(db, m.KV),
		skills:   skills,
		prefs:    services.NewPreferences(repo),
		backup:   backup.NewService(skills, nil, backup.FileExporter{Dir: cfg.BackupDir}),
		render:   render.New(models.ThemeLight, 100),
		log:      logging.Nop(),
		reader:   readerFromLines(),
		out:      out,
	}
	return a, out
}

// loginAs registers and logs in Ada directly through the session store.
func loginAs(t *testing.T, a *App) {
	t.Helper()
	ctx := context.Background()

	_, err := a.sessions.Register(ctx, models.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Password: "engine42", ConfirmPassword: "engine42", AgreeToTerms: true,
	})
	require.NoError(t, err)

	u, err := a.sessions.Login(ctx, "ada@example.com", "engine42")
	require.NoError(t, err)
	a.user = &u
	require.NoError(t, a.skills.Load(ctx))
}

func addSkill(t *testing.T, a *App, name, category, level, description string) models.Skill {
	t.Helper()
	s, err := a.skills.Add(context.Background(), models.SkillFields{
		Name: name, Category: category, Level: level, Description: description,
	})
	require.NoError(t, err)
	return s
}
