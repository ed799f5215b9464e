// Package store implements the feed_coldstart table operations: erase, load
// and list. Each operation runs in a single transaction, committed once at
// the end, with rollback and propagation on any failure.
package store

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/A-pen-app/coldstart/pkg/coldstart"
)

// Schema is the canonical DDL for the coldstart table, kept in sync with the
// serving side. It exists for test provisioning only; the tool itself never
// migrates schema.
const Schema = `
CREATE TABLE IF NOT EXISTS feed_coldstart (
	feed_id uuid NOT NULL,
	position integer NOT NULL DEFAULT 0,
	feed_type character varying(20) NOT NULL DEFAULT 'banners'::character varying,
	CONSTRAINT feed_coldstart_pkey PRIMARY KEY (feed_id)
)`

const deleteAllSQL = `DELETE FROM feed_coldstart`

const insertEntrySQL = `
	INSERT INTO feed_coldstart (feed_id, feed_type, position)
	VALUES ($1, $2, $3)
	ON CONFLICT (feed_id) DO NOTHING
`

const listEntriesSQL = `
	SELECT
		feed_coldstart.feed_id,
		feed_coldstart.feed_type,
		feed_coldstart.position
	FROM
		feed_coldstart
	ORDER BY
		feed_coldstart.position ASC
`

// DB is the subset of a pgx connection the store needs.
// Satisfied by *pgx.Conn.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Store executes coldstart operations against a single database connection.
type Store struct {
	db  DB
	log coldstart.Logger
}

// New creates a Store.
//
// Panics if a dependency is nil. This is intentional fail-fast behavior:
// a nil connection indicates programmer error, not a runtime condition.
func New(db DB, log coldstart.Logger) *Store {
	if db == nil {
		panic("database connection cannot be nil")
	}
	if log == nil {
		panic("logger cannot be nil")
	}
	return &Store{db: db, log: log}
}

// Erase deletes every row from feed_coldstart in one transaction and returns
// the driver-reported number of rows removed.
func (s *Store) Erase(ctx context.Context) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	// No-op after a successful commit (pgx.ErrTxClosed).
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, deleteAllSQL)
	if err != nil {
		return 0, fmt.Errorf("%w: delete from %s: %v", coldstart.ErrExecutionFailed, coldstart.TableName, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%w: commit: %v", coldstart.ErrExecutionFailed, err)
	}

	return tag.RowsAffected(), nil
}

// Load streams the CSV file at path into feed_coldstart in one transaction.
//
// The first line is discarded as a header. Every following line is paired
// with its zero-based index, which becomes the entry's position; blank lines
// and lines whose first field trims to empty are skipped but still consume
// an index. Rows whose feed_id already exists are silently skipped by the
// database (insert-or-ignore, never upsert).
//
// The returned count is the number of attempted inserts, which includes rows
// skipped by the conflict clause.
func (s *Store) Load(ctx context.Context, path string) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", coldstart.ErrCSVNotFound, err)
	}
	defer f.Close()

	count, err := readEntries(f, func(e coldstart.Entry) error {
		s.log.Verbose("insert feed_id %s at position %d", e.FeedID, e.Position)
		if _, err := tx.Exec(ctx, insertEntrySQL, e.FeedID, e.FeedType, e.Position); err != nil {
			return fmt.Errorf("%w: insert feed_id %s at position %d: %v",
				coldstart.ErrExecutionFailed, e.FeedID, e.Position, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%w: commit: %v", coldstart.ErrExecutionFailed, err)
	}

	return count, nil
}

// List returns all coldstart entries ordered by position.
func (s *Store) List(ctx context.Context) ([]coldstart.Entry, error) {
	rows, err := s.db.Query(ctx, listEntriesSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: select from %s: %v", coldstart.ErrExecutionFailed, coldstart.TableName, err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[coldstart.Entry])
	if err != nil {
		return nil, fmt.Errorf("%w: collect rows: %v", coldstart.ErrExecutionFailed, err)
	}

	return entries, nil
}
