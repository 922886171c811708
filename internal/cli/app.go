package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Sathvik1533/Skillsync/internal/backup"
	"github.com/Sathvik1533/Skillsync/internal/common"
	"github.com/Sathvik1533/Skillsync/internal/config"
	"github.com/Sathvik1533/Skillsync/internal/logging"
	"github.com/Sathvik1533/Skillsync/internal/models"
	"github.com/Sathvik1533/Skillsync/internal/render"
	"github.com/Sathvik1533/Skillsync/internal/repositories/repomanager"
	"github.com/Sathvik1533/Skillsync/internal/services"
	"golang.org/x/term"
)

// getSimpleText, getPassword, getMultiline, confirm and getChoice are
// indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	confirm       = Confirm
	getChoice     = GetChoice
)

// App is the interactive SkillSync client.
type App struct {
	config    *config.Config
	db        *sql.DB
	sessions  *services.SessionStore
	skills    *services.SkillStore
	prefs     *services.Preferences
	backup    backup.Runner
	scheduler *backup.Scheduler
	render    *render.Renderer
	log       logging.Logger
	user      *models.User
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the database named by c, runs migrations and wires the stores,
// renderer and backup destinations. Close releases them.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, m, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	repo := m.KV(db)
	a := &App{
		config:   c,
		db:       db,
		sessions: services.NewSessionStore(db, m.KV, services.WithSessionTTL(c.SessionTTL), services.WithSessionLogger(log)),
		skills:   services.NewSkillStore(repo, services.WithSkillLogger(log)),
		prefs:    services.NewPreferences(repo),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	theme, err := a.prefs.Theme(ctx)
	if err != nil {
		log.Warn(ctx, "failed to load theme", "error", err)
	}
	a.render = render.New(theme, terminalWidth())

	exporters := []backup.Exporter{backup.FileExporter{Dir: c.BackupDir}}
	if c.S3.Enabled() {
		exporters = append(exporters, backup.NewS3Exporter(backup.S3Options{
			Bucket:       c.S3.Bucket,
			Region:       c.S3.Region,
			BaseEndpoint: c.S3.BaseEndpoint,
			AccessKey:    c.S3.AccessKey,
			SecretKey:    c.S3.SecretKey,
		}, &http.Client{Timeout: 30 * time.Second}))
	}
	svc := backup.NewService(a.skills, log, exporters...)
	a.backup = svc

	if c.BackupSchedule != "" {
		a.scheduler, err = backup.NewScheduler(c.BackupSchedule, svc, a.sessions.IsAuthenticated, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return a, nil
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// Run restores an existing session, starts scheduled backups and serves the
// REPL until the user exits or ctx ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to SkillSync (type 'help' for commands)")

	a.restoreSession(ctx)

	if a.scheduler != nil {
		a.scheduler.Start()
		defer a.scheduler.Stop(context.Background())
	}

	runREPL(ctx, a, a.prompt, a.reader)
}

// Close releases the database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) restoreSession(ctx context.Context) {
	u, err := a.sessions.Current(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrUnauthorized) {
			a.log.Warn(ctx, "session check failed", "error", err)
		}
		return
	}

	a.user = &u
	if err := a.skills.Load(ctx); err != nil {
		a.reportError(err)
	}
	_ = a.Dashboard(ctx)
}

// isLoggedIn re-checks the stored session so an expired or revoked login
// stops gating commands immediately. Storage errors keep the cached state.
func (a *App) isLoggedIn(ctx context.Context) bool {
	if a.user == nil {
		return false
	}

	if _, err := a.sessions.Current(ctx); err != nil {
		if !errors.Is(err, common.ErrUnauthorized) {
			a.log.Warn(ctx, "session check failed", "error", err)
			return true
		}
		a.user = nil
		a.info("Your session has expired. Please log in again.")
		return false
	}
	return true
}

func (a *App) prompt() string {
	if a.user != nil {
		return fmt.Sprintf("skillsync (%s)> ", a.user.Email)
	}
	return "skillsync> "
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) success(msg string) {
	a.println(a.render.Alert(render.AlertSuccess, msg))
}

func (a *App) info(msg string) {
	a.println(a.render.Alert(render.AlertInfo, msg))
}

func (a *App) failure(msg string) {
	a.println(a.render.Alert(render.AlertError, msg))
}

// reportError turns a command error into a user-facing alert.
func (a *App) reportError(err error) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		a.failure(sentence(ve.Field, ve.Reason))
	case errors.Is(err, common.ErrUnauthorized):
		a.failure("Invalid email or password! Please check your credentials.")
	case errors.Is(err, common.ErrNotLoaded):
		a.failure("Your skills could not be loaded, so changes are disabled. Log out and log in again to retry.")
	case errors.Is(err, common.ErrPersistence):
		a.failure("Your change is kept for this session but could not be saved: " + err.Error())
	case errors.Is(err, io.EOF):
		a.failure("Input ended.")
	default:
		a.failure("Error: " + err.Error())
	}
	a.log.Debug(context.Background(), "command failed", "error", err)
}

// sentence renders a validation failure as "Field reason!" or "Reason!".
func sentence(field, reason string) string {
	s := strings.TrimSpace(field + " " + reason)
	if s == "" {
		return "Invalid input!"
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:] + "!"
}
