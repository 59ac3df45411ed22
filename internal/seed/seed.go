package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/app/repositories"
	"github.com/onur/coursespace/internal/config"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/auth"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// EnsureDefaultData makes sure the sentinel rows and the bootstrap admin
// account exist. It runs on every startup and is idempotent: the sentinel
// rows are inserted with fixed ids so catalog filtering can rely on them.
func EnsureDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	var finalErr error

	if err := ensureSentinelRows(ctx, dbPool); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := ensureAdminAccount(ctx, dbPool, cfg); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	return finalErr
}

func ensureSentinelRows(ctx context.Context, dbPool *pgxpool.Pool) error {
	statements := []string{
		fmt.Sprintf(`INSERT INTO departments (id, name, description)
			VALUES (%d, 'General', 'Default department for unassigned records')
			ON CONFLICT (id) DO NOTHING`, models.GeneralDepartmentID),
		fmt.Sprintf(`INSERT INTO academic_years (id, year_name, is_active)
			VALUES (%d, 'Default', TRUE)
			ON CONFLICT (id) DO NOTHING`, models.DefaultAcademicYearID),
		// Inserting with explicit ids does not advance the sequences, so
		// push them past the sentinel ids.
		`SELECT setval(pg_get_serial_sequence('departments', 'id'),
			GREATEST((SELECT MAX(id) FROM departments), 1))`,
		`SELECT setval(pg_get_serial_sequence('academic_years', 'id'),
			GREATEST((SELECT MAX(id) FROM academic_years), 1))`,
	}

	for _, stmt := range statements {
		if _, err := dbPool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring sentinel rows: %w", err)
		}
	}

	logger.Debug().Msg("Sentinel rows verified")
	return nil
}

func ensureAdminAccount(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	userRepo := repositories.NewUserRepository(dbPool)

	_, err := userRepo.GetByUsername(ctx, cfg.Admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("checking admin account: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &models.User{
		Username:       cfg.Admin.Username,
		Password:       hash,
		Role:           models.RoleAdmin,
		DepartmentID:   models.GeneralDepartmentID,
		AcademicYearID: models.DefaultAcademicYearID,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntity) {
			return nil
		}
		return fmt.Errorf("creating admin account: %w", err)
	}

	logger.Info().Str("username", cfg.Admin.Username).Msg("Bootstrap admin account created")
	return nil
}
