// Package backup exports the skill collection as a JSON document, to a local
// directory, to S3-compatible object storage, or both, on demand or on a
// cron schedule.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Sathvik1533/Skillsync/internal/logging"
	"github.com/Sathvik1533/Skillsync/internal/models"
	"github.com/Sathvik1533/Skillsync/internal/timex"
)

// DocumentVersion is written into every backup.
const DocumentVersion = 1

// ErrNoExporters is returned by Run when no destination is configured.
var ErrNoExporters = errors.New("no backup destination configured")

// Document is the exported JSON shape.
type Document struct {
	Version    int            `json:"version"`
	ExportedAt time.Time      `json:"exportedAt"`
	Count      int            `json:"count"`
	Skills     []models.Skill `json:"skills"`
}

// Source supplies the skills to back up; *services.SkillStore satisfies it.
type Source interface {
	All() []models.Skill
}

// Exporter stores a named backup and returns where it went.
type Exporter interface {
	Export(ctx context.Context, name string, data []byte) (string, error)
}

// FileName is the backup name for a given moment, e.g.
// skills-20250301T120000Z.json.
func FileName(t time.Time) string {
	return "skills-" + t.UTC().Format("20060102T150405Z") + ".json"
}

// Encode builds the indented backup document.
func Encode(skills []models.Skill, at time.Time) ([]byte, error) {
	if skills == nil {
		skills = []models.Skill{}
	}
	return json.MarshalIndent(Document{
		Version:    DocumentVersion,
		ExportedAt: at.UTC(),
		Count:      len(skills),
		Skills:     skills,
	}, "", "  ")
}

// Service runs a backup against every configured exporter.
type Service struct {
	src       Source
	exporters []Exporter
	now       timex.Clock
	log       logging.Logger
}

func NewService(src Source, log logging.Logger, exporters ...Exporter) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{src: src, exporters: exporters, now: timex.UTCNow, log: log}
}

// Run exports one snapshot to all exporters and returns the locations that
// succeeded. Exporter failures are joined into the returned error.
func (s *Service) Run(ctx context.Context) ([]string, error) {
	if len(s.exporters) == 0 {
		return nil, ErrNoExporters
	}

	now := s.now()
	data, err := Encode(s.src.All(), now)
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	name := FileName(now)

	var locations []string
	var errs []error
	for _, e := range s.exporters {
		loc, err := e.Export(ctx, name, data)
		if err != nil {
			s.log.Error(ctx, "backup export failed", "name", name, "error", err)
			errs = append(errs, err)
			continue
		}
		s.log.Info(ctx, "backup exported", "location", loc)
		locations = append(locations, loc)
	}

	return locations, errors.Join(errs...)
}
