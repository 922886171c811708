package repomanager

import (
	"context"
	"database/sql"

	"github.com/Sathvik1533/Skillsync/internal/dbx"
	"github.com/Sathvik1533/Skillsync/internal/migrations"
	"github.com/Sathvik1533/Skillsync/internal/repositories/kv"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct{}

// KV returns a kv.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) KV(db dbx.DBTX) kv.Repository {
	return kv.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Dialect() dbx.Dialect {
	return dbx.DialectPostgres
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Postgres)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "postgres")
}
