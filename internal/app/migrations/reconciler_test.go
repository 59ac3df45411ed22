package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB simulates just enough schema state for the reconciler: which tables
// exist and which columns each table has. Exec calls mutate that state the
// way PostgreSQL would.
type fakeDB struct {
	tables  map[string]map[string]bool // table -> set of columns
	execLog []string
	failOn  string // substring of SQL that should fail
}

func newFakeDB() *fakeDB {
	return &fakeDB{tables: map[string]map[string]bool{}}
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return pgconn.CommandTag{}, errors.New("injected failure")
	}
	f.execLog = append(f.execLog, sql)

	switch {
	case strings.Contains(sql, "CREATE TABLE IF NOT EXISTS"):
		name := tableNameFromCreate(sql)
		if _, ok := f.tables[name]; !ok {
			f.tables[name] = map[string]bool{}
		}
	case strings.HasPrefix(sql, "ALTER TABLE"):
		// ALTER TABLE <table> ADD COLUMN <column> <type...>
		fields := strings.Fields(sql)
		table, column := fields[2], fields[5]
		cols, ok := f.tables[table]
		if !ok {
			return pgconn.CommandTag{}, errors.New("table does not exist: " + table)
		}
		if cols[column] {
			return pgconn.CommandTag{}, errors.New("column already exists: " + column)
		}
		cols[column] = true
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	if strings.Contains(sql, "information_schema.tables") {
		_, ok := f.tables[args[0].(string)]
		return fakeRow{exists: ok}
	}
	if strings.Contains(sql, "information_schema.columns") {
		cols, ok := f.tables[args[0].(string)]
		return fakeRow{exists: ok && cols[args[1].(string)]}
	}
	return fakeRow{}
}

func tableNameFromCreate(sql string) string {
	fields := strings.Fields(sql)
	for i, w := range fields {
		if w == "EXISTS" && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ""
}

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) == 1 {
		if b, ok := dest[0].(*bool); ok {
			*b = r.exists
		}
	}
	return nil
}

func TestReconcileFreshDatabase(t *testing.T) {
	db := newFakeDB()
	r := NewReconciler(db)

	err := r.Reconcile(context.Background())
	require.NoError(t, err)

	for _, table := range []string{"users", "departments", "academic_years", "courses", "modules", "assignments", "submissions"} {
		assert.Contains(t, db.tables, table)
	}

	// Column patches land on top of the freshly created base tables.
	assert.True(t, db.tables["submissions"]["submission_data"])
	assert.True(t, db.tables["submissions"]["file_type"])
	assert.True(t, db.tables["assignments"]["instruction_data"])
	assert.True(t, db.tables["assignments"]["file_type"])
	assert.True(t, db.tables["courses"]["department_id"])
	assert.True(t, db.tables["courses"]["academic_year_id"])
}

func TestReconcileIsIdempotent(t *testing.T) {
	db := newFakeDB()
	r := NewReconciler(db)

	require.NoError(t, r.Reconcile(context.Background()))
	firstRunExecs := len(db.execLog)

	// Re-running against an up-to-date schema must not execute any DDL and
	// must not report errors.
	for i := 0; i < 3; i++ {
		require.NoError(t, r.Reconcile(context.Background()))
	}
	// CREATE TABLE IF NOT EXISTS re-runs are harmless but the explicit
	// existence checks skip them entirely, as they do the ALTERs.
	assert.Equal(t, firstRunExecs, len(db.execLog))
}

func TestReconcilePartiallyPatchedDatabase(t *testing.T) {
	// A database from an older code version: base tables exist, submissions
	// predates blobs, courses predates department scoping.
	db := newFakeDB()
	for _, table := range []string{"users", "departments", "academic_years", "courses", "modules", "assignments", "submissions"} {
		db.tables[table] = map[string]bool{}
	}
	db.tables["assignments"]["instruction_data"] = true

	r := NewReconciler(db)
	require.NoError(t, r.Reconcile(context.Background()))

	// Only the missing columns were added; the pre-existing one untouched.
	for _, sql := range db.execLog {
		assert.NotContains(t, sql, "instruction_data")
		assert.NotContains(t, sql, "CREATE TABLE")
	}
	assert.True(t, db.tables["submissions"]["submission_data"])
	assert.True(t, db.tables["courses"]["department_id"])
	assert.True(t, db.tables["courses"]["academic_year_id"])
}

func TestReconcileContinuesPastFailedPatch(t *testing.T) {
	db := newFakeDB()
	db.failOn = "instruction_data"

	r := NewReconciler(db)
	err := r.Reconcile(context.Background())

	// The failing patch is reported but every other patch still applied.
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSchemaPatchFailed)
	assert.True(t, db.tables["submissions"]["submission_data"])
	assert.True(t, db.tables["courses"]["department_id"])
	assert.False(t, db.tables["assignments"]["instruction_data"])
	assert.True(t, db.tables["assignments"]["file_type"])
}
