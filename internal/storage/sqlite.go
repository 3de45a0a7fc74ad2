// Package storage provides SQLite-based persistence for generated areas.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the area archive.
type Store struct {
	db *sql.DB
}

// AreaRecord is one archived area together with the config that produced it.
type AreaRecord struct {
	ID         int64
	Name       string
	Generator  string
	Config     string // YAML
	Seed       int64
	Width      int
	Height     int
	FloorCount int
	Data       []byte // codec binary encoding
	CreatedAt  time.Time
}

// GeneratorStats aggregates the archive per generator.
type GeneratorStats struct {
	Generator     string
	AreasCount    int
	AvgFloorRatio float64
	LastCreated   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS areas (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			generator TEXT NOT NULL,
			config TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			floor_count INTEGER NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_areas_generator ON areas(generator);
		CREATE INDEX IF NOT EXISTS idx_areas_created ON areas(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveArea archives an area. Returns the ID of the inserted record.
func (s *Store) SaveArea(rec AreaRecord) (int64, error) {
	if rec.Generator == "" {
		return 0, errors.New("storage: area record has no generator")
	}
	if len(rec.Data) == 0 {
		return 0, errors.New("storage: area record has no data")
	}

	result, err := s.db.Exec(
		`INSERT INTO areas (name, generator, config, seed, width, height, floor_count, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.Generator, rec.Config, rec.Seed, rec.Width, rec.Height, rec.FloorCount, rec.Data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save area: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const areaColumns = `id, name, generator, config, seed, width, height, floor_count, data, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanArea(row scanner) (AreaRecord, error) {
	var rec AreaRecord
	var createdAt any
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Generator,
		&rec.Config,
		&rec.Seed,
		&rec.Width,
		&rec.Height,
		&rec.FloorCount,
		&rec.Data,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// AreaByID retrieves an archived area. Returns nil without error if no
// record has the given ID.
func (s *Store) AreaByID(id int64) (*AreaRecord, error) {
	rec, err := scanArea(s.db.QueryRow(
		`SELECT `+areaColumns+` FROM areas WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query area: %w", err)
	}
	return &rec, nil
}

// RecentAreas retrieves the most recently archived areas, newest first.
func (s *Store) RecentAreas(limit int) ([]AreaRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+areaColumns+`
		 FROM areas
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query areas: %w", err)
	}
	defer rows.Close()

	var records []AreaRecord
	for rows.Next() {
		rec, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DeleteArea removes an archived area. It reports whether a record existed.
func (s *Store) DeleteArea(id int64) (bool, error) {
	result, err := s.db.Exec("DELETE FROM areas WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete area: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// GeneratorStats retrieves statistics for every generator in the archive,
// keyed by generator name.
func (s *Store) GeneratorStats() (map[string]*GeneratorStats, error) {
	rows, err := s.db.Query(
		`SELECT generator, COUNT(*), AVG(CAST(floor_count AS REAL) / (width * height)), MAX(created_at)
		 FROM areas
		 GROUP BY generator`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get generator stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GeneratorStats)
	for rows.Next() {
		var gs GeneratorStats
		var avg sql.NullFloat64
		var lastCreated any
		if err := rows.Scan(&gs.Generator, &gs.AreasCount, &avg, &lastCreated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.AvgFloorRatio = avg.Float64
		gs.LastCreated = parseTime(lastCreated)
		stats[gs.Generator] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
