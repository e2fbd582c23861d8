package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaHouseholds = `
CREATE TABLE IF NOT EXISTS households (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    household_id INTEGER NOT NULL REFERENCES households(id)
);
`

const schemaHeatingSystems = `
CREATE TABLE IF NOT EXISTS heating_systems (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    household_id INTEGER NOT NULL REFERENCES households(id),
    name TEXT NOT NULL DEFAULT '',
    sensor_url TEXT NOT NULL,
    gpio_pin INTEGER NOT NULL,
    raspberry_pi TEXT NOT NULL DEFAULT '',
    program_on BOOLEAN NOT NULL DEFAULT 0,
    activated BOOLEAN NOT NULL DEFAULT 0
);
`

// Periods with all_systems set have no heating_system_id.
const schemaHeatingPeriods = `
CREATE TABLE IF NOT EXISTS heating_periods (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    household_id INTEGER NOT NULL REFERENCES households(id),
    heating_system_id INTEGER REFERENCES heating_systems(id) ON DELETE CASCADE,
    all_systems BOOLEAN NOT NULL DEFAULT 0,
    time_on TEXT NOT NULL,
    time_off TEXT NOT NULL,
    target REAL NOT NULL,
    days TEXT NOT NULL,
    created_by INTEGER REFERENCES users(id),
    created_at TIMESTAMP NOT NULL,
    CHECK (all_systems = 1 OR heating_system_id IS NOT NULL)
);
`

const schemaHeatingEvents = `
CREATE TABLE IF NOT EXISTS heating_events (
    id TEXT PRIMARY KEY,
    system_id INTEGER NOT NULL,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const indexHeatingEvents = `
CREATE INDEX IF NOT EXISTS idx_heating_events_system_time ON heating_events (system_id, occurred_at);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after Commit
	}()

	for i, stmt := range []string{
		schemaHouseholds,
		schemaUsers,
		schemaHeatingSystems,
		schemaHeatingPeriods,
		schemaHeatingEvents,
		indexHeatingEvents,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
