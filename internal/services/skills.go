package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/Sathvik1533/Skillsync/internal/common"
	"github.com/Sathvik1533/Skillsync/internal/logging"
	"github.com/Sathvik1533/Skillsync/internal/models"
	"github.com/Sathvik1533/Skillsync/internal/repositories/kv"
	"github.com/Sathvik1533/Skillsync/internal/timex"
	"github.com/google/uuid"
)

// KeySkills holds the JSON array of skill records.
const KeySkills = "skills"

// DefaultRecentLimit is how many recent skills the dashboard shows.
const DefaultRecentLimit = 6

// SkillStore is the in-memory skill collection mirrored to storage.
//
// A failed write does not roll back the in-memory change: the method returns
// its normal result together with an error matching common.ErrPersistence.
// After a failed Load every mutation fails with common.ErrNotLoaded until a
// later Load succeeds, so the unread stored value is never overwritten.
type SkillStore struct {
	mu      sync.RWMutex
	repo    kv.Repository
	log     logging.Logger
	now     timex.Clock
	newID   func() string
	skills  []models.Skill
	loadErr error
}

// SkillStoreOption customises a SkillStore.
type SkillStoreOption func(*SkillStore)

// WithClock overrides the time source used for timestamps.
func WithClock(c timex.Clock) SkillStoreOption {
	return func(s *SkillStore) { s.now = c }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(f func() string) SkillStoreOption {
	return func(s *SkillStore) { s.newID = f }
}

// WithSkillLogger sets the logger.
func WithSkillLogger(l logging.Logger) SkillStoreOption {
	return func(s *SkillStore) { s.log = l }
}

// NewSkillStore returns an empty store over repo. Call Load before querying.
func NewSkillStore(repo kv.Repository, opts ...SkillStoreOption) *SkillStore {
	s := &SkillStore{
		repo:   repo,
		log:    logging.Nop(),
		now:    timex.UTCNow,
		newID:  uuid.NewString,
		skills: []models.Skill{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the collection with the stored one. An absent key yields an
// empty collection. A read error or corrupt value is returned, leaves the
// collection empty and blocks mutations until Load succeeds.
func (s *SkillStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skills = []models.Skill{}

	raw, err := s.repo.Get(ctx, KeySkills)
	if err != nil {
		s.loadErr = fmt.Errorf("load skills: %w", err)
		return s.loadErr
	}

	var stored []models.Skill
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &stored); err != nil {
			s.loadErr = fmt.Errorf("decode skills: %w", err)
			return s.loadErr
		}
	}
	s.loadErr = nil
	if stored != nil {
		s.skills = stored
	}

	s.log.Debug(ctx, "skills loaded", "count", len(s.skills))
	return nil
}

// Add validates f, prepends a new record and persists the collection.
func (s *SkillStore) Add(ctx context.Context, f models.SkillFields) (models.Skill, error) {
	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return models.Skill{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLoaded(); err != nil {
		return models.Skill{}, err
	}

	now := s.now()
	skill := models.Skill{
		ID:          s.uniqueID(),
		Name:        f.Name,
		Category:    f.Category,
		Level:       f.Level,
		Description: f.Description,
		Goals:       f.Goals,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.skills = append([]models.Skill{skill}, s.skills...)

	if err := s.persist(ctx); err != nil {
		return skill, common.PersistenceError("add skill", err)
	}

	s.log.Info(ctx, "skill added", "id", skill.ID, "category", skill.Category)
	return skill, nil
}

// Update merges p into the record with the given id and refreshes its
// updatedAt. found is false when no such record exists.
func (s *SkillStore) Update(ctx context.Context, id string, p models.SkillPatch) (skill models.Skill, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLoaded(); err != nil {
		return models.Skill{}, false, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return models.Skill{}, false, nil
	}

	updated := p.Apply(s.skills[i])
	if err := updated.Fields().Validate(); err != nil {
		return models.Skill{}, true, err
	}

	now := s.now()
	if now.Before(updated.UpdatedAt) {
		now = updated.UpdatedAt
	}
	updated.UpdatedAt = now
	s.skills[i] = updated

	if err := s.persist(ctx); err != nil {
		return updated, true, common.PersistenceError("update skill", err)
	}

	s.log.Info(ctx, "skill updated", "id", id)
	return updated, true, nil
}

// Delete removes the record with the given id, reporting whether one existed.
func (s *SkillStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLoaded(); err != nil {
		return false, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.skills = slices.Delete(s.skills, i, i+1)

	if err := s.persist(ctx); err != nil {
		return true, common.PersistenceError("delete skill", err)
	}

	s.log.Info(ctx, "skill deleted", "id", id)
	return true, nil
}

// Filter returns, in collection order, the records matching term (name or
// description, case-insensitive), category and status (level). Empty
// arguments match everything.
func (s *SkillStore) Filter(term, category, status string) []models.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Skill, 0, len(s.skills))
	for _, sk := range s.skills {
		if sk.Matches(term, category, status) {
			out = append(out, sk)
		}
	}
	return out
}

// All returns a copy of the collection.
func (s *SkillStore) All() []models.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.skills)
}

// Get returns the record with the given id.
func (s *SkillStore) Get(id string) (models.Skill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.skills[i], true
	}
	return models.Skill{}, false
}

// Len returns the number of records.
func (s *SkillStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.skills)
}

// Categories returns the distinct categories in first-seen order.
func (s *SkillStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.skills))
	out := []string{}
	for _, sk := range s.skills {
		if _, ok := seen[sk.Category]; ok {
			continue
		}
		seen[sk.Category] = struct{}{}
		out = append(out, sk.Category)
	}
	return out
}

// Summary computes the dashboard figures. limit <= 0 means DefaultRecentLimit.
func (s *SkillStore) Summary(limit int) models.Summary {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := models.Summary{Total: len(s.skills)}
	for _, sk := range s.skills {
		switch sk.Level {
		case models.LevelCompleted:
			sum.Completed++
		case models.LevelLearning:
			sum.Learning++
		}
	}
	sum.Recent = slices.Clone(s.skills[:min(limit, len(s.skills))])
	return sum
}

// checkLoaded fails while the last Load did not succeed; callers hold s.mu.
func (s *SkillStore) checkLoaded() error {
	if s.loadErr != nil {
		return fmt.Errorf("%w: %w", common.ErrNotLoaded, s.loadErr)
	}
	return nil
}

func (s *SkillStore) indexOf(id string) int {
	return slices.IndexFunc(s.skills, func(sk models.Skill) bool { return sk.ID == id })
}

func (s *SkillStore) uniqueID() string {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

// persist writes the whole collection; callers hold s.mu.
func (s *SkillStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.skills)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, KeySkills, data); err != nil {
		s.log.Error(ctx, "failed to persist skills", "error", err)
		return err
	}
	return nil
}
