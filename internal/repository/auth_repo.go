package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"controlling_heating/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertHouseholdSQL      = `INSERT INTO households (name) VALUES (?)`
	insertUserSQL           = `INSERT INTO users (username, password_hash, household_id) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, household_id FROM users WHERE username = ?`
)

// CreateHousehold inserts a household and returns its ID.
func (r *UserRepository) CreateHousehold(name string) (int, error) {
	res, err := r.db.Exec(insertHouseholdSQL, name)
	if err != nil {
		return 0, fmt.Errorf("insert household %q: %w", name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for household %q: %w", name, err)
	}
	return int(lastID), nil
}

// Create inserts a new user belonging to householdID and returns its ID.
func (r *UserRepository) Create(username, passwordHash string, householdID int) (int, error) {
	res, err := r.db.Exec(insertUserSQL, username, passwordHash, householdID)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByUsernameSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.HouseholdID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}
