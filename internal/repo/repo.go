package repo

import (
	"context"
	"database/sql"
)

// Profile carries the account plus the calculator defaults the form
// prefills: modulus and deflection limit.
type Profile struct {
	ID                int     `json:"id"`
	Login             string  `json:"login"`
	Email             string  `json:"email"`
	Description       string  `json:"description"`
	DefaultEGPa       float64 `json:"default_e_gpa"`
	DefaultLimitRatio float64 `json:"default_limit_ratio"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, description string, eGPa, limitRatio float64) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := `SELECT id, login, email, COALESCE(description, ''),
		COALESCE(default_e_gpa, 200), COALESCE(default_limit_ratio, 250)
		FROM users WHERE id=$1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Login, &p.Email, &p.Description, &p.DefaultEGPa, &p.DefaultLimitRatio)
	return p, err
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, description string, eGPa, limitRatio float64) error {
	query := "UPDATE users SET description=$2, default_e_gpa=$3, default_limit_ratio=$4 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, description, eGPa, limitRatio)
	return err
}
