package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/onur/coursespace/internal/db"
)

// DBTX is the subset of pgxpool.Pool and pgx.Tx the repositories use.
// Repositories work the same whether handed the pool or an open transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	DepartmentRepository   *DepartmentRepository
	AcademicYearRepository *AcademicYearRepository
	CourseRepository       *CourseRepository
	ModuleRepository       *ModuleRepository
	AssignmentRepository   *AssignmentRepository
	SubmissionRepository   *SubmissionRepository
	CascadeRepository      *CascadeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	pool := database.Pool
	return &Repositories{
		UserRepository:         NewUserRepository(pool),
		DepartmentRepository:   NewDepartmentRepository(pool),
		AcademicYearRepository: NewAcademicYearRepository(pool),
		CourseRepository:       NewCourseRepository(pool),
		ModuleRepository:       NewModuleRepository(pool),
		AssignmentRepository:   NewAssignmentRepository(pool),
		SubmissionRepository:   NewSubmissionRepository(pool),
		CascadeRepository:      NewCascadeRepository(database),
	}
}
