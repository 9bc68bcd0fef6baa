package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	store, err := NewPostgresStore(sqlx.NewDb(db, "postgres"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mock
}

func TestPostgresStoreLoad(t *testing.T) {
	store, mock := newPostgresMock(t)
	mock.ExpectQuery("SELECT value FROM planner_store").
		WithArgs("tasks").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"1"}]`))

	value, found, err := store.Load(context.Background(), "tasks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoadMissing(t *testing.T) {
	store, mock := newPostgresMock(t)
	mock.ExpectQuery("SELECT value FROM planner_store").
		WithArgs("tasks").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, found, err := store.Load(context.Background(), "tasks")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresStoreSave(t *testing.T) {
	store, mock := newPostgresMock(t)
	mock.ExpectExec("INSERT INTO planner_store").
		WithArgs("schedule", "[]").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Save(context.Background(), "schedule", "[]"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSaveError(t *testing.T) {
	store, mock := newPostgresMock(t)
	mock.ExpectExec("INSERT INTO planner_store").
		WithArgs("schedule", "[]").
		WillReturnError(errors.New("connection reset"))

	err := store.Save(context.Background(), "schedule", "[]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPostgresStoreEnsureSchema(t *testing.T) {
	store, mock := newPostgresMock(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS planner_store").
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, store.EnsureSchema(context.Background()))
}

func TestNewPostgresStoreRejectsBadTable(t *testing.T) {
	_, err := NewPostgresStore(nil, "Planner-Store")
	assert.Error(t, err)
}
