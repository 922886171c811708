// Package kv is the persistent key/value store SkillSync keeps all of its
// state in: the session flag, the registered identity, the serialized skill
// collection and UI preferences.
//
// # Data Model
//
// A single table, storage(key TEXT PRIMARY KEY, value BLOB, updated_at).
// Values are opaque bytes; callers decide on the encoding (JSON for records,
// plain strings for flags). Writes are upserts, so the last writer wins.
//
// # Implementations
//
//   - SQLiteRepository    modernc.org/sqlite, the default local file
//   - PostgresRepository pgx stdlib driver, for a shared database
//
// Both take a dbx.DBTX, so they work on *sql.DB and inside dbx.WithTx.
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "theme", []byte("dark"))
//	v, _ := repo.Get(ctx, "theme") // nil, nil when absent
package kv
