// Package dbx holds the database/sql abstraction the local repositories are
// written against and the transaction helper the session store writes with.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Retry bounds how often WithTx replays a transaction that lost a lock race
// against another process sharing the database file.
type Retry struct {
	Attempts int
	Backoff  time.Duration
}

var DefaultRetry = Retry{Attempts: 5, Backoff: 20 * time.Millisecond}

// WithTx runs fn in a transaction using DefaultRetry.
func WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) error) error {
	return WithTxRetry(ctx, db, DefaultRetry, fn)
}

// WithTxRetry runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic; panics are re-raised after the rollback. A
// busy or locked database restarts the whole transaction, waiting a doubling
// backoff between attempts.
func WithTxRetry(ctx context.Context, db *sql.DB, r Retry, fn func(ctx context.Context, tx DBTX) error) error {
	attempts := max(r.Attempts, 1)
	wait := r.Backoff

	var err error
	for i := 0; i < attempts; i++ {
		if err = runTx(ctx, db, fn); !Busy(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return errors.Join(err, ctx.Err())
		case <-t.C:
		}
		wait *= 2
	}
	return err
}

func runTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}

// Busy reports whether err is SQLite refusing work because another
// connection holds the lock.
func Busy(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}
