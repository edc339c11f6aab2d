package kv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgres_Get_Found(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT value FROM kv WHERE key = \$1$`).
		WithArgs("bank.users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	v, err := r.Get(context.Background(), "bank.users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Get_MissingKey(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT value FROM kv WHERE key = \$1$`).
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestPostgres_Get_DBError(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT value FROM kv`).WillReturnError(errors.New("db down"))

	_, err := r.Get(context.Background(), "k")
	require.ErrorContains(t, err, "failed to get kv[k]: db down")
}

func TestPostgres_Set_Upsert(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectExec(`(?s)^INSERT INTO kv \(key, value\) VALUES \(\$1, \$2\)\s+ON CONFLICT \(key\) DO UPDATE SET value = EXCLUDED.value$`).
		WithArgs("bank.session", []byte("tok")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Set(context.Background(), "bank.session", []byte("tok")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Set_DBError(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectExec(`^INSERT INTO kv`).WillReturnError(errors.New("conn reset"))

	err := r.Set(context.Background(), "k", []byte("v"))
	require.ErrorContains(t, err, "failed to set kv[k]")
}

func TestPostgres_DeleteAndClear(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectExec(`^DELETE FROM kv WHERE key = \$1$`).WithArgs("k").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`^DELETE FROM kv$`).WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, r.Delete(context.Background(), "k"))
	require.NoError(t, r.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_List(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT key, value FROM kv$`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("a", []byte{1}).
			AddRow("b", []byte{2}))

	m, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": {1}, "b": {2}}, m)
}

func TestPostgres_List_ScanAndIterErrors(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT key, value FROM kv$`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("a", []byte{1}).
			RowError(0, errors.New("broken row")))

	_, err := r.List(context.Background())
	require.ErrorContains(t, err, "failed to iterate kv rows")
}
