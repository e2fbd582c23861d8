package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"controlling_heating/internal/models"
)

type SystemSQLite struct {
	db *sql.DB
}

func NewSystemSQLite(db *sql.DB) *SystemSQLite {
	return &SystemSQLite{db: db}
}

var _ SystemRepo = (*SystemSQLite)(nil)

const (
	systemColumns = `id, household_id, name, sensor_url, gpio_pin, raspberry_pi, program_on, activated`

	insertSystemSQL = `
		INSERT INTO heating_systems (household_id, name, sensor_url, gpio_pin, raspberry_pi, program_on, activated)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	updateSystemSQL = `
		UPDATE heating_systems
		SET name = ?, sensor_url = ?, gpio_pin = ?, raspberry_pi = ?
		WHERE id = ?
	`
	selectSystemSQL             = `SELECT ` + systemColumns + ` FROM heating_systems WHERE id = ?`
	selectSystemsByHouseholdSQL = `SELECT ` + systemColumns + ` FROM heating_systems WHERE household_id = ? ORDER BY id`
	selectActivatedSystemsSQL   = `SELECT ` + systemColumns + ` FROM heating_systems WHERE activated = 1 ORDER BY id`
	setActivatedSQL             = `UPDATE heating_systems SET activated = ? WHERE id = ?`
	setProgramOnSQL             = `UPDATE heating_systems SET program_on = ? WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSystem(row rowScanner) (models.HeatingSystem, error) {
	var s models.HeatingSystem
	err := row.Scan(&s.ID, &s.HouseholdID, &s.Name, &s.SensorURL, &s.GPIOPin, &s.RaspberryPi, &s.ProgramOn, &s.Activated)
	return s, err
}

// Create inserts a heating system and returns it with its ID.
func (r *SystemSQLite) Create(ctx context.Context, s models.HeatingSystem) (models.HeatingSystem, error) {
	res, err := r.db.ExecContext(ctx, insertSystemSQL,
		s.HouseholdID, s.Name, s.SensorURL, s.GPIOPin, s.RaspberryPi, s.ProgramOn, s.Activated)
	if err != nil {
		return models.HeatingSystem{}, fmt.Errorf("insert heating system %q: %w", s.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.HeatingSystem{}, fmt.Errorf("get last insert id for heating system %q: %w", s.Name, err)
	}
	s.ID = int(id)
	return s, nil
}

// Update rewrites the editable fields. program_on and activated are owned
// by the engine and registry and are left alone.
func (r *SystemSQLite) Update(ctx context.Context, s models.HeatingSystem) error {
	res, err := r.db.ExecContext(ctx, updateSystemSQL, s.Name, s.SensorURL, s.GPIOPin, s.RaspberryPi, s.ID)
	if err != nil {
		return fmt.Errorf("update heating system %d: %w", s.ID, err)
	}
	return expectOneRow(res, "heating system", s.ID)
}

func (r *SystemSQLite) Get(ctx context.Context, id int) (models.HeatingSystem, error) {
	s, err := scanSystem(r.db.QueryRowContext(ctx, selectSystemSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HeatingSystem{}, fmt.Errorf("heating system %d: %w", id, ErrNotFound)
		}
		return models.HeatingSystem{}, fmt.Errorf("select heating system %d: %w", id, err)
	}
	return s, nil
}

func (r *SystemSQLite) ListByHousehold(ctx context.Context, householdID int) ([]models.HeatingSystem, error) {
	return r.list(ctx, selectSystemsByHouseholdSQL, householdID)
}

// ListActivated returns the systems that were running at last shutdown.
func (r *SystemSQLite) ListActivated(ctx context.Context) ([]models.HeatingSystem, error) {
	return r.list(ctx, selectActivatedSystemsSQL)
}

func (r *SystemSQLite) list(ctx context.Context, q string, args ...any) ([]models.HeatingSystem, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list heating systems: %w", err)
	}
	defer rows.Close()

	var out []models.HeatingSystem
	for rows.Next() {
		s, err := scanSystem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan heating system: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list heating systems: %w", err)
	}
	return out, nil
}

func (r *SystemSQLite) SetActivated(ctx context.Context, id int, activated bool) error {
	res, err := r.db.ExecContext(ctx, setActivatedSQL, activated, id)
	if err != nil {
		return fmt.Errorf("set activated for heating system %d: %w", id, err)
	}
	return expectOneRow(res, "heating system", id)
}

func (r *SystemSQLite) SetProgramOn(ctx context.Context, id int, on bool) error {
	res, err := r.db.ExecContext(ctx, setProgramOnSQL, on, id)
	if err != nil {
		return fmt.Errorf("set program for heating system %d: %w", id, err)
	}
	return expectOneRow(res, "heating system", id)
}

func expectOneRow(res sql.Result, what string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s %d: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
