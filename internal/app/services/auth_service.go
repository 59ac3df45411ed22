package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/repositories"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/auth"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// AuthService handles login and token issuing
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login validates credentials and returns a signed token. Accounts with the
// Locked role authenticate like any other but are refused a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role == models.RoleLocked {
		logger.Warn().Str("username", username).Msg("Login attempt on locked account")
		return nil, apperrors.ErrAccountLocked
	}

	token, expiresIn, err := s.jwtService.GenerateToken(
		user.ID, user.Username, string(user.Role), user.DepartmentID, user.AcademicYearID)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		Token:          token,
		ExpiresIn:      expiresIn,
		UserID:         user.ID,
		Username:       user.Username,
		Role:           string(user.Role),
		DepartmentID:   user.DepartmentID,
		AcademicYearID: user.AcademicYearID,
	}, nil
}
