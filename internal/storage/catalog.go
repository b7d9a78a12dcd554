package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS builds (
	build_id     TEXT PRIMARY KEY,
	system       TEXT NOT NULL,
	boundary     TEXT NOT NULL,
	modes        INTEGER NOT NULL,
	states       INTEGER NOT NULL,
	inputs       INTEGER NOT NULL,
	transitions  INTEGER NOT NULL,
	elapsed_sec  REAL NOT NULL,
	created_at   TEXT NOT NULL
);
`

// Catalog indexes build metadata in SQLite so builds can be queried
// across base directories.
type Catalog struct {
	db *sql.DB
}

// OpenCatalog opens the catalog database and runs migrations.
func OpenCatalog(dbPath string) (*Catalog, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) Record(meta BuildMetadata) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO builds
		 (build_id, system, boundary, modes, states, inputs, transitions, elapsed_sec, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.ID, meta.System, meta.Boundary, meta.Modes, meta.States,
		meta.Inputs, meta.Transitions, meta.Elapsed,
		meta.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record build: %w", err)
	}
	return nil
}

func (c *Catalog) Builds(system string) ([]BuildMetadata, error) {
	query := `SELECT build_id, system, boundary, modes, states, inputs, transitions, elapsed_sec, created_at
	          FROM builds`
	args := []any{}
	if system != "" {
		query += ` WHERE system = ?`
		args = append(args, system)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query builds: %w", err)
	}
	defer rows.Close()

	builds := make([]BuildMetadata, 0)
	for rows.Next() {
		var meta BuildMetadata
		var created string
		if err := rows.Scan(&meta.ID, &meta.System, &meta.Boundary, &meta.Modes,
			&meta.States, &meta.Inputs, &meta.Transitions, &meta.Elapsed, &created); err != nil {
			return nil, fmt.Errorf("scan build: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			meta.Timestamp = ts
		}
		builds = append(builds, meta)
	}
	return builds, rows.Err()
}
