package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/onur/coursespace/internal/db"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// The storage layer enforces foreign keys but carries no ON DELETE CASCADE,
// so removing a course or user means removing every dependent row first,
// leaf-first, in one transaction. The dependency graph below is the single
// source of truth for that ordering.

// childRef names a table whose rows reference a parent table through fk.
type childRef struct {
	table string
	fk    string
}

// dependents maps each table to the tables that reference it. A delete plan
// for a table must clear these, deepest descendants first, before touching
// the table itself.
var dependents = map[string][]childRef{
	"courses":     {{table: "modules", fk: "course_id"}},
	"modules":     {{table: "assignments", fk: "module_id"}},
	"assignments": {{table: "submissions", fk: "assignment_id"}},
	"submissions": nil,
}

// deletePlan returns leaf-first DELETE statements removing every row
// transitively reachable from the rows selected by idQuery in table. The
// root rows themselves are not deleted; callers append that step.
func deletePlan(table, idQuery string) []string {
	var stmts []string
	for _, c := range dependents[table] {
		childQuery := fmt.Sprintf("SELECT id FROM %s WHERE %s IN (%s)", c.table, c.fk, idQuery)
		stmts = append(stmts, deletePlan(c.table, childQuery)...)
		stmts = append(stmts, fmt.Sprintf("DELETE FROM %s WHERE %s IN (%s)", c.table, c.fk, idQuery))
	}
	return stmts
}

// courseCascadePlan deletes a course and its modules, assignments and
// submissions.
func courseCascadePlan() []string {
	plan := deletePlan("courses", "SELECT id FROM courses WHERE id = $1")
	return append(plan, "DELETE FROM courses WHERE id = $1")
}

// userCascadePlan deletes a user together with their submissions as a
// student and, when the user is an instructor, every owned course subtree.
func userCascadePlan() []string {
	plan := []string{"DELETE FROM submissions WHERE student_id = $1"}
	plan = append(plan, deletePlan("courses", "SELECT id FROM courses WHERE instructor_id = $1")...)
	plan = append(plan, "DELETE FROM courses WHERE instructor_id = $1")
	return append(plan, "DELETE FROM users WHERE id = $1")
}

// moduleCascadePlan deletes a module with its assignments and submissions.
func moduleCascadePlan() []string {
	plan := deletePlan("modules", "SELECT id FROM modules WHERE id = $1")
	return append(plan, "DELETE FROM modules WHERE id = $1")
}

// assignmentCascadePlan deletes an assignment with its submissions.
func assignmentCascadePlan() []string {
	plan := deletePlan("assignments", "SELECT id FROM assignments WHERE id = $1")
	return append(plan, "DELETE FROM assignments WHERE id = $1")
}

// execer is the piece of pgx.Tx the cascade executor needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// runSteps executes a delete plan against one root id. The first failing
// step aborts the whole run.
func runSteps(ctx context.Context, tx execer, steps []string, id int64) error {
	for _, stmt := range steps {
		if _, err := tx.Exec(ctx, stmt, id); err != nil {
			return fmt.Errorf("step %q: %w", stmt, err)
		}
	}
	return nil
}

// CascadeRepository executes cascade delete plans inside transactions.
type CascadeRepository struct {
	db *db.PostgresDB
}

// NewCascadeRepository creates a new cascade repository
func NewCascadeRepository(database *db.PostgresDB) *CascadeRepository {
	return &CascadeRepository{db: database}
}

// DeleteCourseCascade removes a course and every dependent module,
// assignment and submission atomically. Any step failing rolls the whole
// transaction back; no partial deletion is observable.
func (r *CascadeRepository) DeleteCourseCascade(ctx context.Context, courseID int64) error {
	return r.run(ctx, "course", courseID, courseCascadePlan())
}

// DeleteUserCascade removes a user, their submissions, and (for
// instructors) every owned course subtree, atomically.
func (r *CascadeRepository) DeleteUserCascade(ctx context.Context, userID int64) error {
	return r.run(ctx, "user", userID, userCascadePlan())
}

// DeleteModuleCascade removes a module with its assignments and submissions.
func (r *CascadeRepository) DeleteModuleCascade(ctx context.Context, moduleID int64) error {
	return r.run(ctx, "module", moduleID, moduleCascadePlan())
}

// DeleteAssignmentCascade removes an assignment with its submissions.
func (r *CascadeRepository) DeleteAssignmentCascade(ctx context.Context, assignmentID int64) error {
	return r.run(ctx, "assignment", assignmentID, assignmentCascadePlan())
}

func (r *CascadeRepository) run(ctx context.Context, entity string, id int64, steps []string) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return runSteps(ctx, tx, steps, id)
	})
	if err != nil {
		logger.Error().Err(err).Str("entity", entity).Int64("id", id).Msg("Cascade delete rolled back")
		return fmt.Errorf("%w: %s %d: %w", apperrors.ErrCascadeDeleteFailed, entity, id, err)
	}
	return nil
}
