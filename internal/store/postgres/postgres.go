package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/slotline/interview-api/internal/store"
	"github.com/slotline/interview-api/pkg/config"
)

// Connect opens a pgx pool against the configured database.
func Connect(ctx context.Context, cfg config.StoreConfig) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	pc.MinConns = int32(cfg.MinConns)
	pc.MaxConns = int32(cfg.MaxConns)
	pc.MaxConnLifetime = time.Hour
	pc.HealthCheckPeriod = 30 * time.Second

	return pgxpool.NewWithConfig(ctx, pc)
}

// New wires the Postgres-backed repositories.
func New(pool *pgxpool.Pool) *store.Store {
	return &store.Store{
		Users:      &userRepo{pool},
		Companies:  &companyRepo{pool},
		TimeSlots:  &timeSlotRepo{pool},
		Interviews: &interviewRepo{pool},
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	role          TEXT NOT NULL,
	company       TEXT NOT NULL DEFAULT '',
	title         TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS companies (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	logo        TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS time_slots (
	id           TEXT PRIMARY KEY,
	employee_id  TEXT NOT NULL,
	date         TEXT NOT NULL,
	start_time   TEXT NOT NULL,
	end_time     TEXT NOT NULL,
	is_available BOOLEAN NOT NULL DEFAULT true,
	is_booked    BOOLEAN NOT NULL DEFAULT false
);
CREATE INDEX IF NOT EXISTS time_slots_employee_idx ON time_slots (employee_id);

CREATE TABLE IF NOT EXISTS interviews (
	id              TEXT PRIMARY KEY,
	employee_id     TEXT NOT NULL,
	candidate_id    TEXT NOT NULL,
	company_name    TEXT NOT NULL,
	date            TEXT NOT NULL,
	start_time      TEXT NOT NULL,
	end_time        TEXT NOT NULL,
	meeting_link    TEXT NOT NULL,
	status          TEXT NOT NULL,
	employee_name   TEXT NOT NULL DEFAULT '',
	candidate_name  TEXT NOT NULL DEFAULT '',
	candidate_email TEXT NOT NULL DEFAULT '',
	employee_email  TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS interviews_employee_idx ON interviews (employee_id);
CREATE INDEX IF NOT EXISTS interviews_candidate_idx ON interviews (candidate_id);
`

// EnsureSchema creates the tables and inserts the seed companies and demo
// employees if they are not already present.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	const seedCompanies = `
		INSERT INTO companies (id, name, description) VALUES
			('1', 'Google',    'Search engine giant and tech innovator'),
			('2', 'Meta',      'Social media and virtual reality company'),
			('3', 'Apple',     'Consumer electronics and software company'),
			('4', 'Amazon',    'E-commerce and cloud computing leader'),
			('5', 'Netflix',   'Streaming entertainment platform'),
			('6', 'Microsoft', 'Software and cloud services company')
		ON CONFLICT (id) DO NOTHING`
	if _, err := pool.Exec(ctx, seedCompanies); err != nil {
		return fmt.Errorf("failed to seed companies: %w", err)
	}

	passwordHash, err := argon2id.CreateHash("password123", argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	const seedEmployees = `
		INSERT INTO users (id, email, name, role, company, title, password_hash) VALUES
			('1', 'sarah.chen@google.com', 'Sarah Chen',   'employee', 'Google', 'Senior Software Engineer', $1),
			('2', 'mike.johnson@meta.com', 'Mike Johnson', 'employee', 'Meta',   'Product Manager',          $1)
		ON CONFLICT (id) DO NOTHING`
	if _, err := pool.Exec(ctx, seedEmployees, passwordHash); err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	return nil
}
