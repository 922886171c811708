package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Sathvik1533/Skillsync/internal/auth"
	"github.com/Sathvik1533/Skillsync/internal/common"
	"github.com/Sathvik1533/Skillsync/internal/cryptox"
	"github.com/Sathvik1533/Skillsync/internal/dbx"
	"github.com/Sathvik1533/Skillsync/internal/logging"
	"github.com/Sathvik1533/Skillsync/internal/models"
	"github.com/Sathvik1533/Skillsync/internal/repositories/kv"
)

// Storage keys owned by SessionStore.
const (
	KeyLoggedIn      = "loggedIn"
	KeyUser          = "user"
	KeySession       = "session"
	KeySessionSecret = "session_secret"
)

const sessionSecretSize = 32

// RepoFactory binds a kv.Repository to a handle; repomanager.RepositoryManager.KV
// satisfies it.
type RepoFactory func(db dbx.DBTX) kv.Repository

// SessionStore manages the single stored identity and the logged-in state.
type SessionStore struct {
	mu    sync.Mutex
	db    *sql.DB
	repos RepoFactory
	ttl   time.Duration
	log   logging.Logger
}

// SessionOption customises a SessionStore.
type SessionOption func(*SessionStore)

// WithSessionTTL limits how long a login stays valid. Zero disables expiry.
func WithSessionTTL(d time.Duration) SessionOption {
	return func(s *SessionStore) { s.ttl = d }
}

// WithSessionLogger sets the logger.
func WithSessionLogger(l logging.Logger) SessionOption {
	return func(s *SessionStore) { s.log = l }
}

// NewSessionStore returns a SessionStore persisting into db.
func NewSessionStore(db *sql.DB, repos RepoFactory, opts ...SessionOption) *SessionStore {
	s := &SessionStore{db: db, repos: repos, log: logging.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Register stores a new identity, replacing any previous one. Nothing is
// written when the request is invalid.
func (s *SessionStore) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		return models.User{}, common.NewValidationError("email", "is required")
	case req.Password == "":
		return models.User{}, common.NewValidationError("password", "is required")
	case req.Password != req.ConfirmPassword:
		return models.User{}, common.NewValidationError("", "passwords do not match")
	case !req.AgreeToTerms:
		return models.User{}, common.NewValidationError("", "please agree to the terms and conditions")
	}

	salt, verifier := cryptox.NewCredential([]byte(req.Password))
	user := models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Name:      models.DisplayName(req.FirstName, req.LastName),
		Email:     email,
		Salt:      salt,
		Verifier:  verifier,
	}

	data, err := json.Marshal(user)
	if err != nil {
		return models.User{}, fmt.Errorf("encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repos(s.db).Set(ctx, KeyUser, data); err != nil {
		return models.User{}, fmt.Errorf("save user: %w", err)
	}

	s.log.Info(ctx, "user registered", "email", email)
	return user, nil
}

// Login checks email and password against the stored identity. On success it
// sets the logged-in flag, stores a signed session token and returns the
// identity. Any mismatch yields common.ErrUnauthorized.
func (s *SessionStore) Login(ctx context.Context, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	repo := s.repos(s.db)

	user, err := loadUser(ctx, repo)
	if err != nil {
		return models.User{}, err
	}
	if user == nil || user.Email != email || !cryptox.CheckPassword([]byte(password), user.Salt, user.Verifier) {
		s.log.Warn(ctx, "login rejected", "email", email)
		return models.User{}, common.ErrUnauthorized
	}

	secret, err := s.sessionSecret(ctx, repo)
	if err != nil {
		return models.User{}, err
	}

	token, err := auth.GenerateToken(user.Email, secret, s.ttl)
	if err != nil {
		return models.User{}, fmt.Errorf("issue session token: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repos(tx)
		if err := r.Set(ctx, KeyLoggedIn, []byte("true")); err != nil {
			return err
		}
		return r.Set(ctx, KeySession, []byte(token))
	})
	if err != nil {
		return models.User{}, fmt.Errorf("save session: %w", err)
	}

	s.log.Info(ctx, "user logged in", "email", user.Email)
	return *user, nil
}

// Logout clears the logged-in flag and the session token. The identity is
// kept so the user can log in again.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repos(tx)
		if err := r.Delete(ctx, KeyLoggedIn); err != nil {
			return err
		}
		return r.Delete(ctx, KeySession)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.log.Info(ctx, "user logged out")
	return nil
}

// Current returns the logged-in identity. It fails with common.ErrUnauthorized
// when the flag is unset, no identity is stored, or the session token is
// invalid, expired or issued for someone else.
func (s *SessionStore) Current(ctx context.Context) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	repo := s.repos(s.db)

	flag, err := repo.Get(ctx, KeyLoggedIn)
	if err != nil {
		return models.User{}, err
	}
	if string(flag) != "true" {
		return models.User{}, common.ErrUnauthorized
	}

	user, err := loadUser(ctx, repo)
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, common.ErrUnauthorized
	}

	token, err := repo.Get(ctx, KeySession)
	if err != nil {
		return models.User{}, err
	}
	if token == nil {
		return *user, nil
	}

	secret, err := repo.Get(ctx, KeySessionSecret)
	if err != nil {
		return models.User{}, err
	}
	if len(secret) == 0 {
		return models.User{}, fmt.Errorf("%w: %w", common.ErrUnauthorized, common.ErrInvalidToken)
	}

	email, err := auth.GetEmailFromToken(string(token), secret)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}
	if email != user.Email {
		return models.User{}, fmt.Errorf("%w: %w", common.ErrUnauthorized, common.ErrInvalidToken)
	}

	return *user, nil
}

// IsAuthenticated reports whether a valid session is active.
func (s *SessionStore) IsAuthenticated(ctx context.Context) bool {
	_, err := s.Current(ctx)
	if err != nil && !isUnauthorized(err) {
		s.log.Warn(ctx, "session check failed", "error", err)
	}
	return err == nil
}

func (s *SessionStore) sessionSecret(ctx context.Context, repo kv.Repository) ([]byte, error) {
	secret, err := repo.Get(ctx, KeySessionSecret)
	if err != nil {
		return nil, err
	}
	if len(secret) > 0 {
		return secret, nil
	}

	secret = common.GenerateRandByteArray(sessionSecretSize)
	if err := repo.Set(ctx, KeySessionSecret, secret); err != nil {
		return nil, fmt.Errorf("save session secret: %w", err)
	}
	return secret, nil
}

func loadUser(ctx context.Context, repo kv.Repository) (*models.User, error) {
	raw, err := repo.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}
