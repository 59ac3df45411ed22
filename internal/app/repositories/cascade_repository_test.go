package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecer records executed statements and can fail on the Nth call.
type fakeExecer struct {
	executed []string
	failAt   int // 1-based index of the call that fails; 0 = never
}

func (f *fakeExecer) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if f.failAt > 0 && len(f.executed)+1 == f.failAt {
		return pgconn.CommandTag{}, errors.New("connection lost")
	}
	f.executed = append(f.executed, sql)
	return pgconn.CommandTag{}, nil
}

// tableOf extracts the target table of a DELETE statement.
func tableOf(t *testing.T, stmt string) string {
	t.Helper()
	fields := strings.Fields(stmt)
	require.GreaterOrEqual(t, len(fields), 3)
	require.Equal(t, "DELETE", fields[0])
	return fields[2]
}

func TestCourseCascadePlanOrdering(t *testing.T) {
	plan := courseCascadePlan()
	require.Len(t, plan, 4)

	// Children strictly before parents: submissions, assignments, modules,
	// then the course row itself.
	want := []string{"submissions", "assignments", "modules", "courses"}
	for i, stmt := range plan {
		assert.Equal(t, want[i], tableOf(t, stmt))
	}

	// Every step keys off the single course id parameter.
	for _, stmt := range plan {
		assert.Contains(t, stmt, "$1")
	}
	assert.Equal(t, "DELETE FROM courses WHERE id = $1", plan[3])
}

func TestUserCascadePlanOrdering(t *testing.T) {
	plan := userCascadePlan()
	require.Len(t, plan, 6)

	// Student submissions first, then the instructor's course subtrees
	// leaf-first, then the courses, then the user row.
	want := []string{"submissions", "submissions", "assignments", "modules", "courses", "users"}
	for i, stmt := range plan {
		assert.Equal(t, want[i], tableOf(t, stmt))
	}

	assert.Equal(t, "DELETE FROM submissions WHERE student_id = $1", plan[0])
	assert.Equal(t, "DELETE FROM courses WHERE instructor_id = $1", plan[4])
	assert.Equal(t, "DELETE FROM users WHERE id = $1", plan[5])

	// The instructor-side submission sweep reaches down through the owned
	// courses, not the student id column.
	assert.Contains(t, plan[1], "assignment_id IN")
	assert.Contains(t, plan[1], "instructor_id = $1")
}

func TestModuleAndAssignmentPlans(t *testing.T) {
	modPlan := moduleCascadePlan()
	require.Len(t, modPlan, 3)
	assert.Equal(t, "submissions", tableOf(t, modPlan[0]))
	assert.Equal(t, "assignments", tableOf(t, modPlan[1]))
	assert.Equal(t, "DELETE FROM modules WHERE id = $1", modPlan[2])

	assPlan := assignmentCascadePlan()
	require.Len(t, assPlan, 2)
	assert.Equal(t, "submissions", tableOf(t, assPlan[0]))
	assert.Equal(t, "DELETE FROM assignments WHERE id = $1", assPlan[1])
}

func TestRunStepsExecutesAllInOrder(t *testing.T) {
	tx := &fakeExecer{}
	plan := courseCascadePlan()

	require.NoError(t, runSteps(context.Background(), tx, plan, 42))
	assert.Equal(t, plan, tx.executed)
}

func TestRunStepsAbortsOnFirstFailure(t *testing.T) {
	plan := userCascadePlan()

	// Fail at every possible position, including the second-to-last step:
	// execution must stop there so the surrounding transaction can roll
	// everything back.
	for failAt := 1; failAt <= len(plan); failAt++ {
		tx := &fakeExecer{failAt: failAt}
		err := runSteps(context.Background(), tx, plan, 7)
		require.Error(t, err, "failAt=%d", failAt)
		assert.Len(t, tx.executed, failAt-1, "failAt=%d", failAt)
	}
}
