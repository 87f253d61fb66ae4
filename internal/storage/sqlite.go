// Package storage provides SQLite-based persistence for the flight log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the flight log.
type Store struct {
	db *sql.DB
}

// FlightEntry represents a single completed attempt.
type FlightEntry struct {
	ID             int64
	Landed         bool
	Score          int
	TouchdownSpeed float64 // m/s
	PadDistance    float64 // m
	FuelRemaining  float64 // kg
	Duration       float64 // simulated seconds from launch to touchdown
	CreatedAt      time.Time
}

// FlightStats contains aggregated statistics over the whole log.
type FlightStats struct {
	Attempts     int
	Landings     int
	BestScore    int
	SoftestSpeed float64 // lowest touchdown speed among landings, m/s
	TotalAirtime float64 // summed flight duration, seconds
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			landed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			touchdown_speed REAL NOT NULL,
			pad_distance REAL NOT NULL,
			fuel_remaining REAL NOT NULL,
			duration_secs REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_flights_score ON flights(score DESC);
		CREATE INDEX IF NOT EXISTS idx_flights_landed ON flights(landed, touchdown_speed);
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

// SaveFlight records a completed attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveFlight(e FlightEntry) (int64, error) {
	landed := 0
	if e.Landed {
		landed = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO flights
		 (landed, score, touchdown_speed, pad_distance, fuel_remaining, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		landed, e.Score, e.TouchdownSpeed, e.PadDistance, e.FuelRemaining, e.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save flight: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopFlights retrieves the highest-scoring flights, best first.
func (s *Store) TopFlights(limit int) ([]FlightEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, landed, score, touchdown_speed, pad_distance, fuel_remaining, duration_secs, created_at
		 FROM flights
		 ORDER BY score DESC, touchdown_speed ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	return scanFlights(rows)
}

// RecentFlights retrieves the most recent attempts, newest first.
func (s *Store) RecentFlights(limit int) ([]FlightEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, landed, score, touchdown_speed, pad_distance, fuel_remaining, duration_secs, created_at
		 FROM flights
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	return scanFlights(rows)
}

// BestLanding returns the softest successful landing, or nil if none exists.
func (s *Store) BestLanding() (*FlightEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, landed, score, touchdown_speed, pad_distance, fuel_remaining, duration_secs, created_at
		 FROM flights
		 WHERE landed = 1
		 ORDER BY touchdown_speed ASC
		 LIMIT 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best landing: %w", err)
	}
	defer rows.Close()

	entries, err := scanFlights(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Stats retrieves aggregated statistics over the whole flight log.
func (s *Store) Stats() (FlightStats, error) {
	var stats FlightStats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(landed), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(SUM(duration_secs), 0)
		 FROM flights`,
	).Scan(&stats.Attempts, &stats.Landings, &stats.BestScore, &stats.TotalAirtime)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var softest sql.NullFloat64
	err = s.db.QueryRow(
		`SELECT MIN(touchdown_speed) FROM flights WHERE landed = 1`,
	).Scan(&softest)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get softest landing: %w", err)
	}
	if softest.Valid {
		stats.SoftestSpeed = softest.Float64
	}

	return stats, nil
}

// ClearFlights deletes the whole flight log.
func (s *Store) ClearFlights() error {
	_, err := s.db.Exec("DELETE FROM flights")
	if err != nil {
		return fmt.Errorf("storage: cannot clear flights: %w", err)
	}
	return nil
}

// scanFlights reads FlightEntry rows from a query result.
func scanFlights(rows *sql.Rows) ([]FlightEntry, error) {
	var entries []FlightEntry
	for rows.Next() {
		var e FlightEntry
		var landed int
		var createdAt any
		if err := rows.Scan(&e.ID, &landed, &e.Score, &e.TouchdownSpeed,
			&e.PadDistance, &e.FuelRemaining, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Landed = landed != 0

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
