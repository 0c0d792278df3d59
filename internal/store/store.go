// Package store persists the record catalog served by recsel serve.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"recsel/internal/domain"
	"recsel/internal/logging"
)

// Store provides data access to the SQLite database.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// New creates a new Store and initialises the schema.
func New(db *sql.DB) (*Store, error) {
	s := &Store{db: db, log: logging.NewLogger("store")}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var version int
	err := s.db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		// Fresh database: initialize to version 0.
		if _, err := s.db.Exec(`INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return fmt.Errorf("init schema version: %w", err)
		}
		version = 0
	} else if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	// Index 0 = migration from v0 to v1, etc.
	migrations := []func() error{
		s.migrateV1, // v0 → v1: initial schema
	}

	for i := version; i < len(migrations); i++ {
		if err := migrations[i](); err != nil {
			return fmt.Errorf("migration v%d→v%d: %w", i, i+1, err)
		}
		if _, err := s.db.Exec(`UPDATE schema_version SET version = ?`, i+1); err != nil {
			return fmt.Errorf("update schema version to %d: %w", i+1, err)
		}
	}

	return nil
}

// migrateV1 creates the initial schema (v0 → v1).
func (s *Store) migrateV1() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		title      TEXT NOT NULL,
		label      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_records_label ON records(label);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateRecord inserts a new record and returns its id.
func (s *Store) CreateRecord(ctx context.Context, title, label string) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO records (title, label, created_at) VALUES (?, ?, ?)`,
		title, label, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CountRecords returns the total number of records.
func (s *Store) CountRecords(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListRecords returns one window of the catalog in id order.
func (s *Store) ListRecords(ctx context.Context, offset, limit int) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, label FROM records ORDER BY id ASC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Label); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// seedLabels is cycled through when generating demo data. Empty entries
// leave records unlabelled.
var seedLabels = []string{"", "archive", "", "draft", "", "", "review"}

// Seed fills an empty store with n demo records. It returns the number of
// records inserted, which is 0 when the store already holds data.
func (s *Store) Seed(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	count, err := s.CountRecords(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.Debug().Int("existing", count).Msg("store already populated, skipping seed")
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (title, label, created_at) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for i := 1; i <= n; i++ {
		title := fmt.Sprintf("Sample record %04d", i)
		label := seedLabels[(i-1)%len(seedLabels)]
		if _, err := stmt.ExecContext(ctx, title, label, now); err != nil {
			return 0, fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.log.Info().Int("count", n).Msg("seeded demo records")
	return n, nil
}
