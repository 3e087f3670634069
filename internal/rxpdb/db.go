// Package rxpdb archives extracted stream records in sqlite.
package rxpdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/rxp.report/internal/rxp"
)

type DB struct {
	*sql.DB
}

// NewDB opens (creating if needed) the archive at path and applies the base
// schema.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS imports (
			import_id         TEXT PRIMARY KEY,
			source            TEXT,
			sync_to_pps       BOOLEAN,
			created_unix      BIGINT
		);
		CREATE TABLE IF NOT EXISTS inclinations (
			import_id         TEXT,
			time              DOUBLE,
			roll              DOUBLE,
			pitch             DOUBLE,
			FOREIGN KEY(import_id) REFERENCES imports(import_id)
		);
		CREATE TABLE IF NOT EXISTS points (
			import_id         TEXT,
			time              DOUBLE,
			x                 DOUBLE,
			y                 DOUBLE,
			z                 DOUBLE,
			amplitude         DOUBLE,
			reflectance       DOUBLE,
			echo_type         TEXT,
			FOREIGN KEY(import_id) REFERENCES imports(import_id)
		);
		CREATE INDEX IF NOT EXISTS idx_inclinations_import ON inclinations(import_id);
		CREATE INDEX IF NOT EXISTS idx_points_import ON points(import_id);
	`)
	if err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// RecordImport registers a new import of source and returns its id.
func (db *DB) RecordImport(source string, syncToPPS bool) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO imports (import_id, source, sync_to_pps, created_unix) VALUES (?, ?, ?, ?)`,
		id, source, syncToPPS, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to record import: %w", err)
	}
	return id, nil
}

// InsertInclinations stores samples under importID in a single transaction.
func (db *DB) InsertInclinations(importID string, samples []rxp.InclinationSample) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO inclinations (import_id, time, roll, pitch) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	for _, s := range samples {
		if _, err := stmt.Exec(importID, s.Time, s.Roll, s.Pitch); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("failed to insert inclination: %w", err)
		}
	}
	stmt.Close()
	return tx.Commit()
}

// InsertPoints stores points under importID in a single transaction.
func (db *DB) InsertPoints(importID string, points []rxp.Point) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO points (import_id, time, x, y, z, amplitude, reflectance, echo_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	for _, p := range points {
		if _, err := stmt.Exec(importID, p.Time, p.X, p.Y, p.Z, p.Amplitude, p.Reflectance, p.Echo.String()); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("failed to insert point: %w", err)
		}
	}
	stmt.Close()
	return tx.Commit()
}

// ImportSummary describes one archived import.
type ImportSummary struct {
	ImportID     string
	Source       string
	SyncToPPS    bool
	Created      time.Time
	Points       int64
	Inclinations int64
}

// Summary returns the summary row for importID.
func (db *DB) Summary(importID string) (*ImportSummary, error) {
	row := db.QueryRow(`
		SELECT import_id, source, sync_to_pps, created_unix,
			(SELECT COUNT(*) FROM points WHERE points.import_id = imports.import_id),
			(SELECT COUNT(*) FROM inclinations WHERE inclinations.import_id = imports.import_id)
		FROM imports WHERE import_id = ?`, importID)

	var s ImportSummary
	var createdUnix int64
	if err := row.Scan(&s.ImportID, &s.Source, &s.SyncToPPS, &createdUnix, &s.Points, &s.Inclinations); err != nil {
		return nil, fmt.Errorf("failed to load import %s: %w", importID, err)
	}
	s.Created = time.Unix(createdUnix, 0)
	return &s, nil
}

// ListImports returns summaries for every archived import, newest first.
func (db *DB) ListImports() ([]ImportSummary, error) {
	rows, err := db.Query(`
		SELECT import_id, source, sync_to_pps, created_unix,
			(SELECT COUNT(*) FROM points WHERE points.import_id = imports.import_id),
			(SELECT COUNT(*) FROM inclinations WHERE inclinations.import_id = imports.import_id)
		FROM imports ORDER BY created_unix DESC, import_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	defer rows.Close()

	var out []ImportSummary
	for rows.Next() {
		var s ImportSummary
		var createdUnix int64
		if err := rows.Scan(&s.ImportID, &s.Source, &s.SyncToPPS, &createdUnix, &s.Points, &s.Inclinations); err != nil {
			return nil, fmt.Errorf("failed to scan import row: %w", err)
		}
		s.Created = time.Unix(createdUnix, 0)
		out = append(out, s)
	}
	return out, rows.Err()
}
