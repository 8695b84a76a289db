// Package storage provides the SQLite flight log.
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

// Store manages the SQLite database connection for the flight log.
type Store struct {
	db *sql.DB
}

// FlightRecord is one finished flight. Aborted flights are never recorded.
type FlightRecord struct {
	ID          int64
	Outcome     string  // success, hard_landing, bad_angle or out_of_fuel
	FlightTime  float64 // s
	FuelLeft    float64
	ImpactSpeed float64 // |vertical velocity| at touchdown, m/s
	Tilt        float64 // θ at touchdown, rad
	Seed        int64   // terrain seed
	Difficulty  string
	CreatedAt   time.Time
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
		CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			flight_time REAL NOT NULL,
			fuel_left REAL NOT NULL,
			impact_speed REAL NOT NULL,
			tilt REAL NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_flights_outcome ON flights(outcome);
		CREATE INDEX IF NOT EXISTS idx_flights_created ON flights(created_at DESC);
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

// SaveFlight records a finished flight.
// Returns the ID of the inserted record.
func (s *Store) SaveFlight(rec FlightRecord) (int64, error) {
	if rec.Outcome == "" {
		return 0, errors.New("storage: flight has no outcome")
	}

	result, err := s.db.Exec(
		`INSERT INTO flights (outcome, flight_time, fuel_left, impact_speed, tilt, seed, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Outcome, rec.FlightTime, rec.FuelLeft, rec.ImpactSpeed, rec.Tilt, rec.Seed, rec.Difficulty,
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

const flightColumns = `id, outcome, flight_time, fuel_left, impact_speed, tilt, seed, difficulty, created_at`

// RecentFlights retrieves the most recent flights, newest first.
func (s *Store) RecentFlights(limit int) ([]FlightRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+flightColumns+`
		 FROM flights
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	var records []FlightRecord
	for rows.Next() {
		rec, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestLanding returns the successful flight with the softest touchdown.
// Returns nil if there has been no successful landing.
func (s *Store) BestLanding() (*FlightRecord, error) {
	row := s.db.QueryRow(
		`SELECT ` + flightColumns + `
		 FROM flights
		 WHERE outcome = 'success'
		 ORDER BY impact_speed ASC, id ASC
		 LIMIT 1`,
	)

	rec, err := scanFlight(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// OutcomeCounts returns how many flights ended with each outcome.
func (s *Store) OutcomeCounts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT outcome, COUNT(*) FROM flights GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan outcome row: %w", err)
		}
		counts[outcome] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// FlightStats contains aggregated statistics over the whole log.
type FlightStats struct {
	Flights       int
	Landings      int
	AvgFlightTime float64
	LastFlown     time.Time
}

// Stats retrieves aggregated statistics for all recorded flights.
func (s *Store) Stats() (*FlightStats, error) {
	stats := &FlightStats{}

	var lastFlown any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'success' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(flight_time), 0),
		        MAX(created_at)
		 FROM flights`,
	).Scan(&stats.Flights, &stats.Landings, &stats.AvgFlightTime, &lastFlown)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get flight stats: %w", err)
	}
	stats.LastFlown = parseTime(lastFlown)

	return stats, nil
}

// ClearFlights deletes every recorded flight.
func (s *Store) ClearFlights() error {
	if _, err := s.db.Exec("DELETE FROM flights"); err != nil {
		return fmt.Errorf("storage: cannot clear flights: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlight(r rowScanner) (FlightRecord, error) {
	var rec FlightRecord
	var createdAt any
	err := r.Scan(
		&rec.ID,
		&rec.Outcome,
		&rec.FlightTime,
		&rec.FuelLeft,
		&rec.ImpactSpeed,
		&rec.Tilt,
		&rec.Seed,
		&rec.Difficulty,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, err
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
