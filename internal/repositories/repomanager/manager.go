// Package repomanager wires the key/value repository and the goose schema
// migrations for each supported database dialect.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sathvik1533/Skillsync/internal/dbx"
	"github.com/Sathvik1533/Skillsync/internal/repositories/kv"
	"github.com/pressly/goose/v3"
)

// RepositoryManager vends repositories bound to a DBTX and migrates the schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	KV(db dbx.DBTX) kv.Repository
	Dialect() dbx.Dialect
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// New returns the RepositoryManager for the given dialect.
func New(d dbx.Dialect) (RepositoryManager, error) {
	switch d {
	case dbx.DialectSQLite:
		return &SQLiteRepositoryManager{}, nil
	case dbx.DialectPostgres:
		return &PostgresRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", d)
	}
}

// Open connects to the database named by driver and dsn, applies pending
// migrations and returns the handle together with its manager.
// The caller owns the returned *sql.DB.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	d, err := dbx.ParseDialect(driver)
	if err != nil {
		return nil, nil, err
	}

	m, err := New(d)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlOpen(string(d), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s database: %w", d, err)
	}

	if d == dbx.DialectSQLite {
		// a single writer avoids SQLITE_BUSY and keeps :memory: databases on one connection
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("connect to %s database: %w", d, err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate %s database: %w", d, err)
	}

	return db, m, nil
}
