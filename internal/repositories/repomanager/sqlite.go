package repomanager

import (
	"context"
	"database/sql"

	"github.com/Sathvik1533/Skillsync/internal/dbx"
	"github.com/Sathvik1533/Skillsync/internal/migrations"
	"github.com/Sathvik1533/Skillsync/internal/repositories/kv"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

// KV returns a kv.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) KV(db dbx.DBTX) kv.Repository {
	return kv.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Dialect() dbx.Dialect {
	return dbx.DialectSQLite
}

// RunMigrations applies the embedded SQLite migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}
