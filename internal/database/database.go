package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/wichananm65/users-api/internal/config"
)

const pingTimeout = 5 * time.Second

const (
	createUsersPostgres = `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			birthdate TEXT NOT NULL,
			address_id INTEGER NOT NULL
		)`
	createUsersSQLite = `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			birthdate TEXT NOT NULL,
			address_id INTEGER NOT NULL
		)`
)

// Open connects with the configured driver, applies pool limits and pings the
// server. The caller owns the returned handle and must Close it.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	if isSQLiteMemory(cfg) {
		// Each new connection to an in-memory SQLite database starts empty,
		// so the pool is pinned to one connection that never expires.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

func isSQLiteMemory(cfg config.DatabaseConfig) bool {
	if cfg.Driver != "sqlite3" {
		return false
	}
	return strings.Contains(cfg.URL, ":memory:") || strings.Contains(cfg.URL, "mode=memory")
}

// EnsureSchema creates the users table when it does not exist yet.
// address_id carries no foreign key; addresses are owned by another system.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	ddl := createUsersPostgres
	if db.DriverName() == "sqlite3" {
		ddl = createUsersSQLite
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}
