package backup

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Sathvik1533/Skillsync/internal/filex"
)

// FileExporter writes backups into a local directory.
type FileExporter struct {
	Dir string
}

// Export writes data to Dir/name atomically and returns the absolute path.
func (f FileExporter) Export(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := filex.EnsureDir(f.Dir)
	if err != nil {
		return "", fmt.Errorf("prepare backup dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := filex.WriteFileAtomic(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}
