package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/shareit/pkg/database"
	userdomain "github.com/ghuser/shareit/services/user/domain"
	"github.com/ghuser/shareit/services/user/domain/models"
)

const uniqueViolation = "23505"

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Save persists a new user. Returns ErrEmailAlreadyExists on a duplicate email.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
			user.ID, user.Name, user.Email,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return userdomain.ErrEmailAlreadyExists
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
}

// Update persists name/email changes. Returns ErrEmailAlreadyExists on a
// duplicate email.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`UPDATE users SET name = $2, email = $3 WHERE id = $1`,
			user.ID, user.Name, user.Email,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return userdomain.ErrEmailAlreadyExists
			}
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
}

// GetByID returns ErrUserNotFound when the id is absent.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, email FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// FindAll returns every user.
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, email FROM users`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var users []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// Delete removes a user by id; deleting an absent id is a no-op.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
