package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onur/coursespace/internal/pkg/apperrors"
)

// The sentinel guard must fire before the repository is touched, so a
// service with nil repositories is enough to exercise it.
func TestDeleteDepartmentRejectsSentinel(t *testing.T) {
	service := NewAdminService(nil, nil)

	err := service.DeleteDepartment(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrSentinelProtected)
}

func TestDeleteAcademicYearRejectsSentinel(t *testing.T) {
	service := NewAdminService(nil, nil)

	err := service.DeleteAcademicYear(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrSentinelProtected)
}
