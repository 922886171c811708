package kv

import (
	"github.com/Sathvik1533/Skillsync/internal/dbx"
)

// PostgresRepository implements Repository on PostgreSQL via pgx.
type PostgresRepository struct {
	sqlRepository
}

// NewPostgresRepository returns a PostgresRepository bound to db.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{sqlRepository{db: db, dialect: dbx.DialectPostgres}}
}
