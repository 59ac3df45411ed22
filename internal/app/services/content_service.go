package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/repositories"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/filestorage"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// ContentService manages modules, assignments and student submissions.
// Content blobs live in the database; viewing one materializes it into a
// temp file via the materializer.
type ContentService struct {
	moduleRepo     *repositories.ModuleRepository
	assignmentRepo *repositories.AssignmentRepository
	submissionRepo *repositories.SubmissionRepository
	cascadeRepo    *repositories.CascadeRepository
	materializer   *filestorage.TempMaterializer
}

// NewContentService creates a new content service instance
func NewContentService(
	moduleRepo *repositories.ModuleRepository,
	assignmentRepo *repositories.AssignmentRepository,
	submissionRepo *repositories.SubmissionRepository,
	cascadeRepo *repositories.CascadeRepository,
	materializer *filestorage.TempMaterializer,
) *ContentService {
	return &ContentService{
		moduleRepo:     moduleRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		cascadeRepo:    cascadeRepo,
		materializer:   materializer,
	}
}

// CreateModule adds a content module to a course
func (s *ContentService) CreateModule(ctx context.Context, courseID int64, req dto.CreateModuleRequest) (*models.Module, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: module title is required", apperrors.ErrInvalidInput)
	}

	module := &models.Module{
		CourseID:   courseID,
		Title:      title,
		ModuleData: req.ModuleData,
		FileType:   filestorage.NormalizeFileType(req.FileType),
		UploadDate: time.Now(),
	}
	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("moduleId", module.ID).
		Int64("courseId", courseID).
		Msg("Module created")
	return module, nil
}

// ListModules retrieves a course's modules without their content blobs
func (s *ContentService) ListModules(ctx context.Context, courseID int64) ([]*models.Module, error) {
	return s.moduleRepo.GetByCourse(ctx, courseID)
}

// MaterializeModule writes a module's content blob to a temp file and
// returns its path for the viewer to open
func (s *ContentService) MaterializeModule(ctx context.Context, moduleID int64) (string, error) {
	module, err := s.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return "", err
	}
	if len(module.ModuleData) == 0 {
		return "", fmt.Errorf("%w: module %d has no content", apperrors.ErrInvalidInput, moduleID)
	}
	return s.materializer.Materialize(module.ModuleData, "module", module.FileType)
}

// DeleteModule removes a module, its assignments and their submissions in
// one transaction
func (s *ContentService) DeleteModule(ctx context.Context, moduleID int64) error {
	if _, err := s.moduleRepo.GetByID(ctx, moduleID); err != nil {
		return err
	}
	return s.cascadeRepo.DeleteModuleCascade(ctx, moduleID)
}

// CreateAssignment adds an assignment to a module
func (s *ContentService) CreateAssignment(ctx context.Context, moduleID int64, req dto.CreateAssignmentRequest) (*models.Assignment, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: assignment description is required", apperrors.ErrInvalidInput)
	}
	if req.MaxScore <= 0 {
		return nil, fmt.Errorf("%w: max score must be positive", apperrors.ErrInvalidInput)
	}

	assignment := &models.Assignment{
		ModuleID:        moduleID,
		Description:     description,
		MaxScore:        req.MaxScore,
		DueDate:         req.DueDate,
		InstructionData: req.InstructionData,
		FileType:        filestorage.NormalizeFileType(req.FileType),
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("assignmentId", assignment.ID).
		Int64("moduleId", moduleID).
		Msg("Assignment created")
	return assignment, nil
}

// ListAssignments retrieves a module's assignments without instruction blobs
func (s *ContentService) ListAssignments(ctx context.Context, moduleID int64) ([]*models.Assignment, error) {
	return s.assignmentRepo.GetByModule(ctx, moduleID)
}

// MaterializeInstructions writes an assignment's instruction blob to a temp
// file and returns its path
func (s *ContentService) MaterializeInstructions(ctx context.Context, assignmentID int64) (string, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return "", err
	}
	if len(assignment.InstructionData) == 0 {
		return "", fmt.Errorf("%w: assignment %d has no instructions", apperrors.ErrInvalidInput, assignmentID)
	}
	return s.materializer.Materialize(assignment.InstructionData, "assignment", assignment.FileType)
}

// DeleteAssignment removes an assignment and its submissions in one
// transaction
func (s *ContentService) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		return err
	}
	return s.cascadeRepo.DeleteAssignmentCascade(ctx, assignmentID)
}

// SubmitAssignment records a student's upload against an assignment. A
// resubmission is a new row; graders see every attempt.
func (s *ContentService) SubmitAssignment(ctx context.Context, assignmentID, studentID int64, req dto.SubmitAssignmentRequest) (*models.Submission, error) {
	if len(req.SubmissionData) == 0 {
		return nil, fmt.Errorf("%w: submission file is required", apperrors.ErrInvalidInput)
	}

	submission := &models.Submission{
		AssignmentID:   assignmentID,
		StudentID:      studentID,
		SubmissionData: req.SubmissionData,
		FileType:       filestorage.NormalizeFileType(req.FileType),
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("submissionId", submission.ID).
		Int64("assignmentId", assignmentID).
		Int64("studentId", studentID).
		Msg("Submission received")
	return submission, nil
}

// MaterializeSubmission writes a submission's blob to a temp file for the
// grader to open
func (s *ContentService) MaterializeSubmission(ctx context.Context, submissionID int64) (string, error) {
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return "", err
	}
	if len(submission.SubmissionData) == 0 {
		return "", fmt.Errorf("%w: submission %d has no file", apperrors.ErrInvalidInput, submissionID)
	}
	return s.materializer.Materialize(submission.SubmissionData, "submission", submission.FileType)
}
