package kv

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgres_Get_UsesPositionalPlaceholders(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM storage WHERE key = $1`)).
		WithArgs("theme").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("dark")))

	v, err := r.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Get_NoRows(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM storage WHERE key = $1`)).
		WithArgs("user").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, err := r.Get(context.Background(), "user")
	require.NoError(t, err)
	assert.Nil(t, v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Set(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`VALUES ($1, $2, CURRENT_TIMESTAMP)`)).
		WithArgs("loggedIn", []byte("true")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Set(context.Background(), "loggedIn", []byte("true")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Set_Error(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO storage`).
		WillReturnError(errors.New("connection reset"))

	err := r.Set(context.Background(), "skills", []byte("[]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set storage[skills]")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPostgres_Delete(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM storage WHERE key = $1`)).
		WithArgs("session").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Delete(context.Background(), "session"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_List(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT key, value FROM storage`)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("theme", []byte("light")).
			AddRow("loggedIn", []byte("false")))

	m, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"theme":    []byte("light"),
		"loggedIn": []byte("false"),
	}, m)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_List_RowError(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT key, value FROM storage`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("a", []byte("1")).
			RowError(0, errors.New("broken row")))

	_, err := r.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken row")
}
