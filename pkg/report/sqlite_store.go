// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const reportTable = "diagnostic_reports"

// SQLiteStore persists assembled reports in a SQLite database. It stores
// report snapshots only; protocol data itself is never serialized.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database at path and ensures the
// schema. Use ":memory:" for an ephemeral store.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteStore wraps an existing database handle and ensures the schema.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			report_json BLOB NOT NULL
		);`, reportTable),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_code ON %s(code);`, reportTable, reportTable),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_created ON %s(created_at);`, reportTable, reportTable),
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Save persists one report.
func (s *SQLiteStore) Save(ctx context.Context, r *Report) error {
	if r == nil || r.ID == "" {
		return fmt.Errorf("report must have an id")
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT OR REPLACE INTO %s (id, code, created_at, report_json) VALUES (?, ?, ?, ?)`, reportTable),
		r.ID, r.Code, r.CreatedAt.UnixMilli(), raw)
	return err
}

// Get loads a report by id. Returns sql.ErrNoRows when absent.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Report, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT report_json FROM %s WHERE id = ?`, reportTable), id).Scan(&raw)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &r, nil
}

// List returns up to limit reports, newest first, optionally filtered by code.
func (s *SQLiteStore) List(ctx context.Context, code string, limit int) ([]*Report, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT report_json FROM %s`, reportTable)
	args := []any{}
	if code != "" {
		query += ` WHERE code = ?`
		args = append(args, code)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Report
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var r Report
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

// Purge deletes reports older than the cutoff and returns how many went.
func (s *SQLiteStore) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE created_at < ?`, reportTable), olderThan.UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
