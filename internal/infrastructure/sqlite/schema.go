package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const createTables = `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY NOT NULL,
  email TEXT UNIQUE,
  password TEXT,
  name TEXT,
  company TEXT,
  location TEXT,
  sector TEXT,
  avatar TEXT,
  bio TEXT,
  revenue TEXT,
  age INTEGER,
  hasChildren INTEGER,
  hobbies TEXT,
  experience TEXT,
  brands TEXT,
  role TEXT,
  classe TEXT,
  experiencePoints INTEGER DEFAULT 0,
  status TEXT
);
CREATE TABLE IF NOT EXISTS deals (
  id TEXT PRIMARY KEY NOT NULL,
  partyOne TEXT,
  partyTwo TEXT,
  title TEXT,
  description TEXT,
  category TEXT,
  value TEXT,
  image TEXT,
  congrats INTEGER,
  shares INTEGER,
  status TEXT,
  createdAt INTEGER
);
`

// EnsureSchema creates the users and deals tables when absent and populates
// each one from the demo fixtures, but only while its row count is zero.
// Safe to call on every startup. Errors propagate: without schema the
// application cannot function.
func EnsureSchema(ctx context.Context, db *sqlx.DB, seed bool, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := db.ExecContext(ctx, createTables); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	if !seed {
		return nil
	}

	var userCount int
	if err := db.GetContext(ctx, &userCount, "SELECT COUNT(*) FROM users"); err != nil {
		return err
	}
	if userCount == 0 {
		logger.Info("seeding users table with demo profiles")
		if err := seedUsers(ctx, db); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	var dealCount int
	if err := db.GetContext(ctx, &dealCount, "SELECT COUNT(*) FROM deals"); err != nil {
		return err
	}
	if dealCount == 0 {
		logger.Info("seeding deals table with demo deals")
		if err := seedDeals(ctx, db); err != nil {
			return fmt.Errorf("seed deals: %w", err)
		}
	}

	return nil
}

// expectedUserColumns lists columns added after the first released schema.
// MigrateSchema backfills them on databases created before they existed.
var expectedUserColumns = []struct {
	name string
	typ  string
}{
	{"email", "TEXT UNIQUE"},
	{"password", "TEXT"},
	{"status", "TEXT"},
	{"classe", "TEXT"},
	{"experiencePoints", "INTEGER DEFAULT 0"},
}

// MigrateSchema additively applies missing columns to the users table.
// Failures are logged as warnings and never raised: a partially migrated
// schema is preferred over an unavailable application.
func MigrateSchema(ctx context.Context, db *sqlx.DB, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var existing []string
	if err := db.SelectContext(ctx, &existing, "SELECT name FROM pragma_table_info('users')"); err != nil {
		logger.Warn("schema introspection failed", zap.Error(err))
		return
	}

	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	for _, col := range expectedUserColumns {
		if present[col.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE users ADD COLUMN %s %s", col.name, col.typ)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Warn("could not add column, it may already exist",
				zap.String("column", col.name), zap.Error(err))
			continue
		}
		logger.Info("added missing column to users table", zap.String("column", col.name))
	}
}

// ResetSchema drops both tables and rebuilds them. Destructive; intended
// for development use only.
func ResetSchema(ctx context.Context, db *sqlx.DB, seed bool, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS deals"); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS users"); err != nil {
		return err
	}
	logger.Info("database reset, recreating tables")
	return EnsureSchema(ctx, db, seed, logger)
}
