// Package sqlite provides a SQLite-backed progress store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"containmentbreach/pkg/game/progress"
	"containmentbreach/pkg/game/progress/sqlite/migrations"
)

// Store persists progress in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite progress store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load reads the saved unlocks. It returns progress.ErrNotFound when no night
// has ever been saved.
func (s *Store) Load(ctx context.Context) (progress.Progress, error) {
	if err := ctx.Err(); err != nil {
		return progress.Progress{}, err
	}
	if s == nil || s.sqlDB == nil {
		return progress.Progress{}, fmt.Errorf("storage is not configured")
	}

	var p progress.Progress
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT night FROM unlocked_nights ORDER BY night`)
	if err != nil {
		return progress.Progress{}, fmt.Errorf("query unlocked nights: %w", err)
	}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			_ = rows.Close()
			return progress.Progress{}, fmt.Errorf("scan unlocked night: %w", err)
		}
		p.UnlockedNights = append(p.UnlockedNights, n)
	}
	if err := rows.Close(); err != nil {
		return progress.Progress{}, fmt.Errorf("close unlocked nights: %w", err)
	}
	if err := rows.Err(); err != nil {
		return progress.Progress{}, fmt.Errorf("iterate unlocked nights: %w", err)
	}
	if len(p.UnlockedNights) == 0 {
		return progress.Progress{}, progress.ErrNotFound
	}

	rows, err = s.sqlDB.QueryContext(ctx, `SELECT document_id FROM unlocked_lore ORDER BY unlocked_at, document_id`)
	if err != nil {
		return progress.Progress{}, fmt.Errorf("query unlocked lore: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return progress.Progress{}, fmt.Errorf("scan unlocked lore: %w", err)
		}
		p.UnlockedLore = append(p.UnlockedLore, id)
	}
	if err := rows.Err(); err != nil {
		return progress.Progress{}, fmt.Errorf("iterate unlocked lore: %w", err)
	}
	return p, nil
}

// Save replaces the stored unlocks with p. Entries already present keep their
// original unlock time.
func (s *Store) Save(ctx context.Context, p progress.Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stamp := s.now().UTC().UnixMilli()

	nights := make([]any, 0, len(p.UnlockedNights))
	for _, n := range p.UnlockedNights {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO unlocked_nights (night, unlocked_at) VALUES (?, ?)`, n, stamp); err != nil {
			return fmt.Errorf("save night %d: %w", n, err)
		}
		nights = append(nights, n)
	}
	if err := prune(ctx, tx, "unlocked_nights", "night", nights); err != nil {
		return err
	}

	docs := make([]any, 0, len(p.UnlockedLore))
	for i, id := range p.UnlockedLore {
		// Offset keeps documents unlocked together in the order given.
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO unlocked_lore (document_id, unlocked_at) VALUES (?, ?)`, id, stamp+int64(i)); err != nil {
			return fmt.Errorf("save lore %s: %w", id, err)
		}
		docs = append(docs, id)
	}
	if err := prune(ctx, tx, "unlocked_lore", "document_id", docs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// prune deletes the rows of table whose column value is not in keep.
func prune(ctx context.Context, tx *sql.Tx, table, column string, keep []any) error {
	query := "DELETE FROM " + table
	if len(keep) > 0 {
		query += " WHERE " + column + " NOT IN (?" + strings.Repeat(", ?", len(keep)-1) + ")"
	}
	if _, err := tx.ExecContext(ctx, query, keep...); err != nil {
		return fmt.Errorf("prune %s: %w", table, err)
	}
	return nil
}

var _ progress.Store = (*Store)(nil)
