package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	project TEXT NOT NULL,
	display_name TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS snapshot_values (
	snapshot_id TEXT NOT NULL REFERENCES snapshots(id),
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	source TEXT NOT NULL,
	PRIMARY KEY (snapshot_id, key)
);
CREATE INDEX IF NOT EXISTS idx_snapshots_project ON snapshots(project);
`

// Store persists configuration snapshots to a SQLite database.
type Store struct {
	db     *sql.DB
	titler cases.Caser
}

// Open opens the snapshot database at path, creating it and its schema if
// needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{
		db:     db,
		titler: cases.Title(language.English),
	}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Snapshot is a stored resolution result.
type Snapshot struct {
	ID          string
	Project     string
	DisplayName string
	CreatedAt   time.Time
	Rows        []Row
}

// WriteSnapshot stores one resolved configuration under a new snapshot ID
// and returns the ID. The write is transactional: the snapshot and all its
// rows land together or not at all.
func (s *Store) WriteSnapshot(ctx context.Context, project string, rows []Row) (string, error) {
	id, err := nanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate snapshot id: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, project, display_name, created_at) VALUES (?, ?, ?, ?)`,
		id, project, s.displayName(project), time.Now().UTC(),
	); err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	for _, row := range rows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_values (snapshot_id, key, value, source) VALUES (?, ?, ?, ?)`,
			id, row.Key, row.Value, row.Source,
		); err != nil {
			return "", fmt.Errorf("insert value %s: %w", row.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit snapshot: %w", err)
	}
	return id, nil
}

// Snapshot loads a stored snapshot and its rows by ID.
func (s *Store) Snapshot(ctx context.Context, id string) (*Snapshot, error) {
	snap := &Snapshot{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT project, display_name, created_at FROM snapshots WHERE id = ?`, id,
	).Scan(&snap.Project, &snap.DisplayName, &snap.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value, source FROM snapshot_values WHERE snapshot_id = ? ORDER BY key`, id)
	if err != nil {
		return nil, fmt.Errorf("load snapshot values: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.Key, &row.Value, &row.Source); err != nil {
			return nil, fmt.Errorf("scan snapshot value: %w", err)
		}
		snap.Rows = append(snap.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot values: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns snapshot headers for a project, newest first. Rows
// are not populated.
func (s *Store) ListSnapshots(ctx context.Context, project string) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project, display_name, created_at FROM snapshots
		 WHERE project = ? ORDER BY created_at DESC`, project)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Project, &snap.DisplayName, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read snapshots: %w", err)
	}
	return snaps, nil
}

// displayName derives a human-readable name from a project identity:
// "my-test_project" becomes "My Test Project".
func (s *Store) displayName(project string) string {
	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(project)
	return s.titler.String(spaced)
}
