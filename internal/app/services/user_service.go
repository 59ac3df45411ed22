package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/repositories"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/auth"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// UserService handles user account administration
type UserService struct {
	userRepo    *repositories.UserRepository
	cascadeRepo *repositories.CascadeRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, cascadeRepo *repositories.CascadeRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		cascadeRepo: cascadeRepo,
	}
}

// CreateUser creates an account with a hashed password. Zero affiliation
// ids fall back to the sentinel defaults.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrInvalidInput)
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrInvalidInput, req.Role)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:       username,
		Password:       hashed,
		Role:           role,
		DepartmentID:   req.DepartmentID,
		AcademicYearID: req.AcademicYearID,
	}
	if user.DepartmentID == 0 {
		user.DepartmentID = models.GeneralDepartmentID
	}
	if user.AcademicYearID == 0 {
		user.AcademicYearID = models.DefaultAcademicYearID
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("username", username).Str("role", req.Role).Msg("User created")
	return user, nil
}

// GetUser retrieves one user
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves all users
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// UpdateUser applies a partial profile update. Unset fields keep their
// stored values; a new password is re-hashed before storage.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashed
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrInvalidInput, *req.Role)
		}
		user.Role = role
	}
	if req.DepartmentID != nil {
		user.DepartmentID = *req.DepartmentID
	}
	if req.AcademicYearID != nil {
		user.AcademicYearID = *req.AcademicYearID
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user and all dependent data: submissions they made
// as a student and, for instructors, the full subtree of every owned
// course. All-or-nothing.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	// Surface not-found before starting a transaction.
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.cascadeRepo.DeleteUserCascade(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("userId", id).Msg("User deleted with cascade")
	return nil
}
