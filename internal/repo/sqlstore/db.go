// Package sqlstore is the direct-SQL persistence strategy, built on
// database/sql with hand-written statements. It supports SQLite (pure Go
// driver) and PostgreSQL (pgx stdlib driver) and mirrors the gormstore
// strategy's observable behavior: same rows written, same identifier
// assignment, same not-found signaling.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // register the pure-Go sqlite driver

	"github.com/vetware/go-clinic-backend/internal/repo"
)

// Dialect selects placeholder style, key capture, and DDL flavor.
type Dialect string

const (
	// DialectSQLite uses "?" placeholders and LastInsertId.
	DialectSQLite Dialect = "sqlite"
	// DialectPostgres uses "$n" placeholders and INSERT ... RETURNING id.
	DialectPostgres Dialect = "postgres"
)

// DB wraps a sql.DB with its dialect. Queries are written with "?"
// placeholders and rebound for PostgreSQL.
type DB struct {
	sql     *sql.DB
	dialect Dialect
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	configurePool(db)
	return &DB{sql: db, dialect: DialectSQLite}, nil
}

// OpenPostgres opens a PostgreSQL pool from a DSN and verifies connectivity.
func OpenPostgres(dsn string) (*DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	configurePool(db)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{sql: db, dialect: DialectPostgres}, nil
}

// Close releases the underlying pool.
func (d *DB) Close() error { return d.sql.Close() }

// SQL exposes the raw handle, mainly for tests.
func (d *DB) SQL() *sql.DB { return d.sql }

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)
}

// execer is satisfied by both *sql.DB and *sql.Tx so loaders and mutations
// can run inside or outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rebind converts "?" placeholders to "$n" for PostgreSQL; SQLite queries
// pass through unchanged.
func (d *DB) rebind(query string) string {
	if d.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// insertID runs an insert and returns the generated surrogate key, using
// RETURNING on PostgreSQL and LastInsertId on SQLite. The query must be
// written without a RETURNING clause.
func (d *DB) insertID(ctx context.Context, e execer, query string, args ...any) (int, error) {
	if d.dialect == DialectPostgres {
		var id int
		err := e.QueryRowContext(ctx, d.rebind(query)+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

// inTx runs fn inside a transaction, rolling back on error.
func (d *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// notFound maps sql.ErrNoRows, wrapped or not, to the strategy-neutral
// sentinel.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	}
	return err
}
