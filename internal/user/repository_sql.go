package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLRepository stores users in the users table of a Postgres or SQLite
// database. Queries are written with ? bind vars and rebound for the driver.
type SQLRepository struct {
	db *sqlx.DB
}

var _ Repository = (*SQLRepository)(nil)

const (
	listUsersQuery   = `SELECT id, name, email, birthdate, address_id FROM users ORDER BY id`
	getUserByIDQuery = `SELECT id, name, email, birthdate, address_id FROM users WHERE id = ?`
	insertUserQuery  = `
		INSERT INTO users (name, email, birthdate, address_id)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`
	deleteUserQuery = `DELETE FROM users WHERE id = ?`
)

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) List(ctx context.Context) ([]User, error) {
	users := make([]User, 0)
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(listUsersQuery)); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int) (User, error) {
	var user User
	if err := r.db.GetContext(ctx, &user, r.db.Rebind(getUserByIDQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (r *SQLRepository) Insert(ctx context.Context, user User) (User, error) {
	var id int
	err := r.db.QueryRowxContext(
		ctx,
		r.db.Rebind(insertUserQuery),
		user.Name,
		user.Email,
		user.Birthdate,
		user.AddressID,
	).Scan(&id)
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	user.ID = id
	return user, nil
}

func (r *SQLRepository) DeleteByID(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(deleteUserQuery), id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
