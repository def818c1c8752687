package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// ErrComplaintNotOwned is returned when a student addresses a complaint that
// does not exist or belongs to somebody else. The two cases are not told apart.
var ErrComplaintNotOwned = apperrors.NewCustomError(apperrors.ErrComplaintNotFound, "Complaint not found or not owned by student")

// ComplaintService defines the student complaint workflow
type ComplaintService interface {
	// Student operations
	Submit(ctx context.Context, studentID int64, req *dto.CreateComplaintRequest) (*models.Complaint, error)
	ListForStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error)
	ListByRollNumber(ctx context.Context, rollNumber string) ([]*models.Complaint, error)
	GetForStudent(ctx context.Context, id, studentID int64) (*models.Complaint, error)
	UpdateStatusForStudent(ctx context.Context, id, studentID int64, status models.ComplaintStatus) error

	// Teacher operations
	Approve(ctx context.Context, id, teacherID int64, note string) error

	// Shared by the teacher and admin listings
	List(ctx context.Context, filter repositories.ComplaintFilter) ([]*models.Complaint, error)

	// Admin operations
	ListTeacherApproved(ctx context.Context, filter repositories.ComplaintFilter) ([]*models.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error
	Statistics(ctx context.Context) (*models.ComplaintStatistics, error)
}

// complaintServiceImpl implements the ComplaintService interface
type complaintServiceImpl struct {
	complaints repositories.IComplaintRepository
	students   repositories.IStudentRepository
	teachers   repositories.ITeacherRepository
	logger     zerolog.Logger
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(repos *repositories.Repositories, logger zerolog.Logger) ComplaintService {
	return &complaintServiceImpl{
		complaints: repos.Complaints,
		students:   repos.Students,
		teachers:   repos.Teachers,
		logger:     logger,
	}
}

// validateStatus rejects anything a status update may not write
func validateStatus(status models.ComplaintStatus) error {
	if !status.Valid() {
		return apperrors.NewCustomError(apperrors.ErrInvalidStatus, "Invalid status value").WithField("status")
	}
	return nil
}

// Submit files a complaint for studentID, snapshotting the student's name,
// roll number and branch as they are now.
func (s *complaintServiceImpl) Submit(ctx context.Context, studentID int64, req *dto.CreateComplaintRequest) (*models.Complaint, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		StudentID:          student.ID,
		Name:               student.Name,
		RollNumber:         student.RollNumber,
		Branch:             student.Branch,
		ComplaintType:      strings.TrimSpace(req.ComplaintType),
		Location:           strings.TrimSpace(req.Location),
		SpecificItem:       helpers.NullableString(req.SpecificItem),
		ProblemDescription: strings.TrimSpace(req.ProblemDescription),
		Suggestions:        helpers.NullableString(req.Suggestions),
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("complaintId", complaint.ID).
		Int64("studentId", studentID).
		Str("complaintType", complaint.ComplaintType).
		Msg("Complaint submitted")
	return complaint, nil
}

func (s *complaintServiceImpl) ListForStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	return s.complaints.ListByStudent(ctx, studentID)
}

func (s *complaintServiceImpl) ListByRollNumber(ctx context.Context, rollNumber string) ([]*models.Complaint, error) {
	return s.complaints.ListByRollNumber(ctx, strings.TrimSpace(rollNumber))
}

func (s *complaintServiceImpl) GetForStudent(ctx context.Context, id, studentID int64) (*models.Complaint, error) {
	return s.complaints.GetForStudent(ctx, id, studentID)
}

func (s *complaintServiceImpl) UpdateStatusForStudent(ctx context.Context, id, studentID int64, status models.ComplaintStatus) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	err := s.complaints.UpdateStatusForStudent(ctx, id, studentID, status)
	if errors.Is(err, apperrors.ErrComplaintNotFound) {
		return ErrComplaintNotOwned
	}
	return err
}

// Approve marks the complaint as reviewed by teacherID. Approving again
// overwrites the previous note and approver.
func (s *complaintServiceImpl) Approve(ctx context.Context, id, teacherID int64, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return apperrors.NewValidationError("approval_note", "Approval note is required")
	}
	if _, err := s.teachers.GetByID(ctx, teacherID); err != nil {
		return err
	}

	if err := s.complaints.Approve(ctx, id, teacherID, note); err != nil {
		return err
	}
	s.logger.Info().Int64("complaintId", id).Int64("teacherId", teacherID).Msg("Complaint approved")
	return nil
}

func (s *complaintServiceImpl) List(ctx context.Context, filter repositories.ComplaintFilter) ([]*models.Complaint, error) {
	return s.complaints.List(ctx, filter)
}

func (s *complaintServiceImpl) ListTeacherApproved(ctx context.Context, filter repositories.ComplaintFilter) ([]*models.Complaint, error) {
	return s.complaints.ListTeacherApproved(ctx, filter)
}

// UpdateStatus sets the status of any complaint regardless of owner
func (s *complaintServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	if err := s.complaints.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.logger.Info().Int64("complaintId", id).Str("status", string(status)).Msg("Complaint status updated")
	return nil
}

func (s *complaintServiceImpl) Statistics(ctx context.Context) (*models.ComplaintStatistics, error) {
	stats, err := s.complaints.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing complaint statistics: %w", err)
	}
	return stats, nil
}
