package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	db := openDB(t, path)
	_, err := db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB)`)
	require.NoError(t, err)
	return db, path
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	return n
}

func put(key string) func(ctx context.Context, tx DBTX) error {
	return func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES (?, x'01')`, key)
		return err
	}
}

func TestWithTx_Commits(t *testing.T) {
	db, _ := setupDB(t)

	require.NoError(t, WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		if err := put("session")(ctx, tx); err != nil {
			return err
		}
		return put("session.salt")(ctx, tx)
	}))
	assert.Equal(t, 2, countRows(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db, _ := setupDB(t)
	calls := 0

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		calls++
		require.NoError(t, put("session")(ctx, tx))
		return errors.New("seal failed")
	})
	require.EqualError(t, err, "seal failed")
	assert.Equal(t, 1, calls, "plain errors are not retried")
	assert.Equal(t, 0, countRows(t, db))
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db, _ := setupDB(t)

	assert.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, put("session")(ctx, tx))
			panic("kaput")
		})
	})
	assert.Equal(t, 0, countRows(t, db))
}

func TestWithTx_BeginError(t *testing.T) {
	db, _ := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, func(context.Context, DBTX) error { return nil })
	require.Error(t, err)
	assert.False(t, Busy(err))
}

func TestWithTxRetry_WaitsOutAnotherWriter(t *testing.T) {
	db, path := setupDB(t)
	other := openDB(t, path)
	ctx := context.Background()

	holder, err := other.BeginTx(ctx, nil)
	require.NoError(t, err)
	_, err = holder.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES ('other', x'00')`)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = holder.Commit()
	}()

	err = WithTxRetry(ctx, db, Retry{Attempts: 8, Backoff: 20 * time.Millisecond}, put("session"))
	require.NoError(t, err)
	assert.Equal(t, 2, countRows(t, db))
}

func TestWithTxRetry_GivesUp(t *testing.T) {
	db, path := setupDB(t)
	other := openDB(t, path)
	ctx := context.Background()

	holder, err := other.BeginTx(ctx, nil)
	require.NoError(t, err)
	_, err = holder.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES ('other', x'00')`)
	require.NoError(t, err)
	t.Cleanup(func() { _ = holder.Rollback() })

	calls := 0
	err = WithTxRetry(ctx, db, Retry{Attempts: 3, Backoff: time.Millisecond}, func(ctx context.Context, tx DBTX) error {
		calls++
		return put("session")(ctx, tx)
	})
	require.Error(t, err)
	assert.True(t, Busy(err), fmt.Sprintf("unexpected error %v", err))
	assert.Equal(t, 3, calls)
}

func TestBusy_IgnoresOtherErrors(t *testing.T) {
	assert.False(t, Busy(nil))
	assert.False(t, Busy(sql.ErrNoRows))
	assert.False(t, Busy(fmt.Errorf("wrapped: %w", errors.New("disk full"))))
}
