package services

import (
	"context"
	"strings"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// TeacherComplaintService defines operations on complaints filed by teachers
type TeacherComplaintService interface {
	Submit(ctx context.Context, teacherID int64, req *dto.CreateTeacherComplaintRequest) (*models.TeacherComplaint, error)
	ListForTeacher(ctx context.Context, teacherID int64, filter repositories.TeacherComplaintFilter) ([]*models.TeacherComplaint, error)
	List(ctx context.Context, filter repositories.TeacherComplaintFilter) ([]*models.TeacherComplaint, error)
	UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error
}

type teacherComplaintServiceImpl struct {
	complaints repositories.ITeacherComplaintRepository
	teachers   repositories.ITeacherRepository
	logger     zerolog.Logger
}

// NewTeacherComplaintService creates a new teacher complaint service instance
func NewTeacherComplaintService(repos *repositories.Repositories, logger zerolog.Logger) TeacherComplaintService {
	return &teacherComplaintServiceImpl{
		complaints: repos.TeacherComplaints,
		teachers:   repos.Teachers,
		logger:     logger,
	}
}

// complaintCategory resolves the stored category and specific type. An
// explicit category wins over the composed complaint_type string.
func complaintCategory(req *dto.CreateTeacherComplaintRequest) (string, string, error) {
	if category := strings.TrimSpace(req.Category); category != "" {
		specific := strings.TrimSpace(req.SpecificType)
		if specific == "" {
			return "", "", apperrors.NewValidationError("specific_type", "Specific type is required when a category is given")
		}
		return category, specific, nil
	}

	category, specific := models.SplitComplaintType(req.ComplaintType)
	if category == "" || specific == "" {
		return "", "", apperrors.NewValidationError("complaint_type", "Complaint type, location and problem description are required")
	}
	return category, specific, nil
}

// Submit files a complaint on behalf of teacherID with a snapshot of the
// teacher's name, id number and department.
func (s *teacherComplaintServiceImpl) Submit(ctx context.Context, teacherID int64, req *dto.CreateTeacherComplaintRequest) (*models.TeacherComplaint, error) {
	category, specific, err := complaintCategory(req)
	if err != nil {
		return nil, err
	}

	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	complaint := &models.TeacherComplaint{
		TeacherID:          teacher.ID,
		Name:               teacher.Name,
		TeacherIDNumber:    teacher.TeacherID,
		Department:         teacher.Department,
		Category:           category,
		SpecificType:       specific,
		Location:           strings.TrimSpace(req.Location),
		SpecificItem:       helpers.NullableString(req.SpecificItem),
		ProblemDescription: strings.TrimSpace(req.ProblemDescription),
		Suggestions:        helpers.NullableString(req.Suggestions),
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("teacherComplaintId", complaint.ID).
		Int64("teacherId", teacherID).
		Str("category", category).
		Msg("Teacher complaint submitted")
	return complaint, nil
}

func (s *teacherComplaintServiceImpl) ListForTeacher(ctx context.Context, teacherID int64, filter repositories.TeacherComplaintFilter) ([]*models.TeacherComplaint, error) {
	return s.complaints.ListByTeacher(ctx, teacherID, filter)
}

func (s *teacherComplaintServiceImpl) List(ctx context.Context, filter repositories.TeacherComplaintFilter) ([]*models.TeacherComplaint, error) {
	return s.complaints.List(ctx, filter)
}

func (s *teacherComplaintServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	if err := s.complaints.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.logger.Info().Int64("teacherComplaintId", id).Str("status", string(status)).Msg("Teacher complaint status updated")
	return nil
}
