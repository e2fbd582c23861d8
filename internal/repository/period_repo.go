package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"controlling_heating/internal/models"
)

type PeriodSQLite struct {
	db *sql.DB
}

func NewPeriodSQLite(db *sql.DB) *PeriodSQLite {
	return &PeriodSQLite{db: db}
}

var _ PeriodRepo = (*PeriodSQLite)(nil)

const (
	periodColumns = `id, household_id, heating_system_id, all_systems, time_on, time_off, target, days, created_by, created_at`

	// Periods bound to the system plus household-wide periods of its household.
	selectPeriodsForSystemSQL = `
		SELECT ` + periodColumns + ` FROM heating_periods
		WHERE heating_system_id = ?
		   OR (all_systems = 1 AND household_id = (SELECT household_id FROM heating_systems WHERE id = ?))
		ORDER BY time_on
	`
	selectPeriodsByHouseholdSQL = `SELECT ` + periodColumns + ` FROM heating_periods WHERE household_id = ? ORDER BY time_on`
	selectPeriodSQL             = `SELECT ` + periodColumns + ` FROM heating_periods WHERE id = ?`

	insertPeriodSQL = `
		INSERT INTO heating_periods (household_id, heating_system_id, all_systems, time_on, time_off, target, days, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	updatePeriodSQL = `
		UPDATE heating_periods
		SET heating_system_id = ?, all_systems = ?, time_on = ?, time_off = ?, target = ?, days = ?
		WHERE id = ?
	`
	deletePeriodSQL = `DELETE FROM heating_periods WHERE id = ?`
)

// marshalDays converts the weekday set to a JSON string.
func marshalDays(d models.Days) (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalDays(s string) (models.Days, error) {
	var d models.Days
	if s == "" {
		return d, nil
	}
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		return d, err
	}
	return d, nil
}

// nullableSystem stores household-wide periods without a system id.
func nullableSystem(p models.HeatingPeriod) sql.NullInt64 {
	if p.AllSystems || p.SystemID == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(p.SystemID), Valid: true}
}

func scanPeriod(row rowScanner) (models.HeatingPeriod, error) {
	var (
		p         models.HeatingPeriod
		systemID  sql.NullInt64
		createdBy sql.NullInt64
		days      string
	)
	if err := row.Scan(&p.ID, &p.HouseholdID, &systemID, &p.AllSystems, &p.TimeOn, &p.TimeOff,
		&p.Target, &days, &createdBy, &p.CreatedAt); err != nil {
		return models.HeatingPeriod{}, err
	}
	d, err := unmarshalDays(days)
	if err != nil {
		return models.HeatingPeriod{}, fmt.Errorf("decode days of period %d: %w", p.ID, err)
	}
	p.Days = d
	p.SystemID = int(systemID.Int64)
	p.CreatedBy = int(createdBy.Int64)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

func (r *PeriodSQLite) ListForSystem(ctx context.Context, systemID int) ([]models.HeatingPeriod, error) {
	return r.list(ctx, selectPeriodsForSystemSQL, systemID, systemID)
}

func (r *PeriodSQLite) ListByHousehold(ctx context.Context, householdID int) ([]models.HeatingPeriod, error) {
	return r.list(ctx, selectPeriodsByHouseholdSQL, householdID)
}

func (r *PeriodSQLite) list(ctx context.Context, q string, args ...any) ([]models.HeatingPeriod, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list heating periods: %w", err)
	}
	defer rows.Close()

	var out []models.HeatingPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan heating period: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list heating periods: %w", err)
	}
	return out, nil
}

func (r *PeriodSQLite) Get(ctx context.Context, id int) (models.HeatingPeriod, error) {
	p, err := scanPeriod(r.db.QueryRowContext(ctx, selectPeriodSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HeatingPeriod{}, fmt.Errorf("heating period %d: %w", id, ErrNotFound)
		}
		return models.HeatingPeriod{}, fmt.Errorf("select heating period %d: %w", id, err)
	}
	return p, nil
}

// Create inserts p and returns it with ID and CreatedAt set.
func (r *PeriodSQLite) Create(ctx context.Context, p models.HeatingPeriod) (models.HeatingPeriod, error) {
	days, err := marshalDays(p.Days)
	if err != nil {
		return models.HeatingPeriod{}, err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	} else {
		p.CreatedAt = p.CreatedAt.UTC()
	}
	createdBy := sql.NullInt64{Int64: int64(p.CreatedBy), Valid: p.CreatedBy != 0}

	res, err := r.db.ExecContext(ctx, insertPeriodSQL,
		p.HouseholdID, nullableSystem(p), p.AllSystems, p.TimeOn, p.TimeOff, p.Target, days, createdBy, p.CreatedAt)
	if err != nil {
		return models.HeatingPeriod{}, fmt.Errorf("insert heating period: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.HeatingPeriod{}, fmt.Errorf("get last insert id for heating period: %w", err)
	}
	p.ID = int(id)
	if p.AllSystems {
		p.SystemID = 0
	}
	return p, nil
}

func (r *PeriodSQLite) Update(ctx context.Context, p models.HeatingPeriod) error {
	days, err := marshalDays(p.Days)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, updatePeriodSQL,
		nullableSystem(p), p.AllSystems, p.TimeOn, p.TimeOff, p.Target, days, p.ID)
	if err != nil {
		return fmt.Errorf("update heating period %d: %w", p.ID, err)
	}
	return expectOneRow(res, "heating period", p.ID)
}

func (r *PeriodSQLite) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deletePeriodSQL, id)
	if err != nil {
		return fmt.Errorf("delete heating period %d: %w", id, err)
	}
	return expectOneRow(res, "heating period", id)
}
