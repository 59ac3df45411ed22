package migrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// DB is the subset of pgxpool.Pool the reconciler needs. Narrowing the
// dependency keeps patch application testable without a live database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reconciler brings an existing database's structure in line with what the
// current code expects, by adding missing tables and columns only. It keeps
// no version ledger: the fixed patch list below is re-checked on every
// startup, and each patch is individually idempotent. Nothing is ever
// dropped or rewritten.
type Reconciler struct {
	db DB
}

// NewReconciler creates a new schema reconciler
func NewReconciler(db DB) *Reconciler {
	return &Reconciler{db: db}
}

// patch is a single additive schema change with an explicit existence check.
// Apply runs only when Exists reports false, so "already there" is the
// normal path rather than a swallowed error.
type patch interface {
	Name() string
	Exists(ctx context.Context, db DB) (bool, error)
	Apply(ctx context.Context, db DB) error
}

// ensureTable creates a table when it is missing.
type ensureTable struct {
	table     string
	createSQL string
}

func (p ensureTable) Name() string { return "create table " + p.table }

func (p ensureTable) Exists(ctx context.Context, db DB) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1)`,
		p.table).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking table %s: %w", p.table, err)
	}
	return exists, nil
}

func (p ensureTable) Apply(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, p.createSQL)
	return err
}

// ensureColumn adds a column to an existing table when it is missing.
type ensureColumn struct {
	table      string
	column     string
	definition string
}

func (p ensureColumn) Name() string {
	return fmt.Sprintf("add column %s.%s", p.table, p.column)
}

func (p ensureColumn) Exists(ctx context.Context, db DB) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1 AND column_name = $2)`,
		p.table, p.column).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking column %s.%s: %w", p.table, p.column, err)
	}
	return exists, nil
}

func (p ensureColumn) Apply(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", p.table, p.column, p.definition))
	return err
}

// patchList is the fixed set of schema expectations, in application order.
// Base tables come first so the column patches for databases created by
// older code versions find their targets.
func patchList() []patch {
	return []patch{
		ensureTable{"users", `
			CREATE TABLE IF NOT EXISTS users (
				id BIGSERIAL PRIMARY KEY,
				username VARCHAR(100) NOT NULL UNIQUE,
				password VARCHAR(255) NOT NULL,
				role VARCHAR(20) NOT NULL DEFAULT 'Student',
				profile_image BYTEA,
				department_id BIGINT NOT NULL DEFAULT 1,
				academic_year_id BIGINT NOT NULL DEFAULT 1
			)`},
		ensureTable{"departments", `
			CREATE TABLE IF NOT EXISTS departments (
				id BIGSERIAL PRIMARY KEY,
				name VARCHAR(100) NOT NULL UNIQUE,
				description TEXT
			)`},
		ensureTable{"academic_years", `
			CREATE TABLE IF NOT EXISTS academic_years (
				id BIGSERIAL PRIMARY KEY,
				year_name VARCHAR(50) NOT NULL UNIQUE,
				is_active BOOLEAN NOT NULL DEFAULT TRUE
			)`},
		ensureTable{"courses", `
			CREATE TABLE IF NOT EXISTS courses (
				id BIGSERIAL PRIMARY KEY,
				title VARCHAR(200) NOT NULL,
				description TEXT,
				instructor_id BIGINT REFERENCES users (id),
				course_image BYTEA
			)`},
		ensureTable{"modules", `
			CREATE TABLE IF NOT EXISTS modules (
				id BIGSERIAL PRIMARY KEY,
				course_id BIGINT NOT NULL REFERENCES courses (id),
				title VARCHAR(200) NOT NULL,
				module_data BYTEA,
				file_type VARCHAR(10),
				upload_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`},
		ensureTable{"assignments", `
			CREATE TABLE IF NOT EXISTS assignments (
				id BIGSERIAL PRIMARY KEY,
				module_id BIGINT NOT NULL REFERENCES modules (id),
				description TEXT NOT NULL,
				max_score INT NOT NULL,
				due_date TIMESTAMP
			)`},
		ensureTable{"submissions", `
			CREATE TABLE IF NOT EXISTS submissions (
				id BIGSERIAL PRIMARY KEY,
				assignment_id BIGINT REFERENCES assignments (id),
				student_id BIGINT REFERENCES users (id),
				submission_data BYTEA,
				file_type VARCHAR(10),
				score INT DEFAULT NULL,
				feedback_text TEXT
			)`},

		// Databases created before submissions carried blobs.
		ensureColumn{"submissions", "submission_data", "BYTEA"},
		ensureColumn{"submissions", "file_type", "VARCHAR(10)"},

		// Databases created before assignments carried instruction blobs.
		ensureColumn{"assignments", "instruction_data", "BYTEA"},
		ensureColumn{"assignments", "file_type", "VARCHAR(10)"},

		// Databases created before courses were scoped to a department and
		// academic year. DEFAULT 1 points pre-existing rows at the sentinel
		// "General"/"Default" rows.
		ensureColumn{"courses", "department_id", "BIGINT NOT NULL DEFAULT 1"},
		ensureColumn{"courses", "academic_year_id", "BIGINT NOT NULL DEFAULT 1"},
	}
}

// Reconcile applies every patch whose target is missing. Patches are
// independent: a failing patch is logged and recorded, and the remaining
// patches still run. The returned error joins the individual failures so
// the caller can report them; callers treat it as non-fatal.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	var failed error

	for _, p := range patchList() {
		exists, err := p.Exists(ctx, r.db)
		if err != nil {
			logger.Error().Err(err).Str("patch", p.Name()).Msg("Schema patch existence check failed")
			failed = errors.Join(failed, fmt.Errorf("%w: %s: %w", apperrors.ErrSchemaPatchFailed, p.Name(), err))
			continue
		}
		if exists {
			continue
		}

		if err := p.Apply(ctx, r.db); err != nil {
			logger.Error().Err(err).Str("patch", p.Name()).Msg("Schema patch failed")
			failed = errors.Join(failed, fmt.Errorf("%w: %s: %w", apperrors.ErrSchemaPatchFailed, p.Name(), err))
			continue
		}
		logger.Info().Str("patch", p.Name()).Msg("Applied schema patch")
	}

	return failed
}
