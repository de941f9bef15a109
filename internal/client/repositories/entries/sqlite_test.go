package entries

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/passvault/internal/client/models"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "entries.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE passwords (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  account TEXT NOT NULL,
  username TEXT NOT NULL,
  secret BLOB NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)
	return db
}

func entry(id, owner, account, username, secret string) *models.VaultEntry {
	return &models.VaultEntry{ID: id, OwnerID: owner, Account: account, Username: username, Secret: []byte(secret)}
}

func TestInsertAndListByOwner(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, entry("1", "u1", "github", "alice", "s1")))
	require.NoError(t, r.Insert(ctx, entry("2", "u1", "gitlab", "bob", "s2")))
	require.NoError(t, r.Insert(ctx, entry("3", "u2", "github", "carol", "s3")))

	got, err := r.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "github", got[0].Account)
	assert.Equal(t, []byte("s1"), got[0].Secret)
	assert.Equal(t, "2", got[1].ID)

	none, err := r.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInsert_DuplicateID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, entry("1", "u1", "a", "b", "s")))
	err := r.Insert(ctx, entry("1", "u1", "a", "b", "s"))
	require.Error(t, err)
	assert.True(t, dbx.IsUniqueViolation(err))
}

func TestUpdateByTuple_AllMatchingRows(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, entry("1", "u1", "github", "alice", "s1")))
	require.NoError(t, r.Insert(ctx, entry("2", "u1", "github", "alice", "s2")))
	require.NoError(t, r.Insert(ctx, entry("3", "u1", "github", "bob", "s3")))
	require.NoError(t, r.Insert(ctx, entry("4", "u2", "github", "alice", "s4")))

	n, err := r.UpdateByTuple(ctx, "u1", "github", "alice", "GitHub", "alice2", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var account, username string
	var secret []byte
	err = db.QueryRow(`SELECT account, username, secret FROM passwords WHERE id = ?`, "2").Scan(&account, &username, &secret)
	require.NoError(t, err)
	assert.Equal(t, "GitHub", account)
	assert.Equal(t, "alice2", username)
	assert.Equal(t, []byte("new"), secret)

	// other owner untouched
	err = db.QueryRow(`SELECT account, username FROM passwords WHERE id = ?`, "4").Scan(&account, &username)
	require.NoError(t, err)
	assert.Equal(t, "github", account)
	assert.Equal(t, "alice", username)
}

func TestUpdateByTuple_NoMatch(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	n, err := r.UpdateByTuple(context.Background(), "u1", "x", "y", "a", "b", []byte("s"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteByTuple(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, entry("1", "u1", "github", "alice", "s1")))
	require.NoError(t, r.Insert(ctx, entry("2", "u1", "github", "alice", "s2")))
	require.NoError(t, r.Insert(ctx, entry("3", "u1", "mail", "alice", "s3")))

	n, err := r.DeleteByTuple(ctx, "u1", "github", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	left, err := r.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "3", left[0].ID)

	n, err = r.DeleteByTuple(ctx, "u1", "github", "alice")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func setupPostgresMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLRepository(db, dbx.DialectPostgres), mock
}

func TestPostgres_DeleteByTuple(t *testing.T) {
	r, mock := setupPostgresMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM passwords WHERE user_id = $1 AND account = $2 AND username = $3`)).
		WithArgs("u1", "github", "alice").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := r.DeleteByTuple(context.Background(), "u1", "github", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateByTuple(t *testing.T) {
	r, mock := setupPostgresMock(t)

	mock.ExpectExec(`UPDATE passwords SET account = \$1, username = \$2, secret = \$3, updated_at = CURRENT_TIMESTAMP\s+WHERE user_id = \$4 AND account = \$5 AND username = \$6`).
		WithArgs("new", "bob", []byte("x"), "u1", "old", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := r.UpdateByTuple(context.Background(), "u1", "old", "alice", "new", "bob", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListByOwner(t *testing.T) {
	r, mock := setupPostgresMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, account, username, secret FROM passwords WHERE user_id = $1 ORDER BY created_at, id`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "account", "username", "secret"}).
			AddRow("1", "u1", "github", "alice", []byte("s1")).
			AddRow("2", "u1", "mail", "bob", []byte("s2")))

	got, err := r.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "mail", got[1].Account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListByOwner_QueryError(t *testing.T) {
	r, mock := setupPostgresMock(t)

	mock.ExpectQuery(`SELECT id`).WillReturnError(errors.New("boom"))

	_, err := r.ListByOwner(context.Background(), "u1")
	assert.ErrorContains(t, err, "failed to select entries")
}

func TestPostgres_Insert_Error(t *testing.T) {
	r, mock := setupPostgresMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO passwords (id, user_id, account, username, secret) VALUES ($1, $2, $3, $4, $5)`)).
		WithArgs("1", "u1", "a", "b", []byte("s")).
		WillReturnError(errors.New("boom"))

	err := r.Insert(context.Background(), entry("1", "u1", "a", "b", "s"))
	assert.ErrorContains(t, err, "failed to insert entry")
	assert.NoError(t, mock.ExpectationsWereMet())
}
