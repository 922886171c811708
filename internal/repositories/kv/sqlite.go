package kv

import (
	"github.com/Sathvik1533/Skillsync/internal/dbx"
)

// SQLiteRepository implements Repository on SQLite.
type SQLiteRepository struct {
	sqlRepository
}

// NewSQLiteRepository returns a SQLiteRepository bound to db.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{sqlRepository{db: db, dialect: dbx.DialectSQLite}}
}
