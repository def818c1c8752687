package repositories

import (
	"context"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IStudentRepository defines the interface for student account storage
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	// EnsureUnique returns a conflict error naming the first unique field
	// already taken, or nil.
	EnsureUnique(ctx context.Context, rollNumber, email string) error
}

// ITeacherRepository defines the interface for teacher account storage
type ITeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetByTeacherID(ctx context.Context, teacherID string) (*models.Teacher, error)
	EnsureUnique(ctx context.Context, teacherID, email string) error
}

// IAdminRepository defines the interface for admin account storage
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	EnsureUnique(ctx context.Context, username, email string) error
}

// IComplaintRepository defines the interface for student complaint storage
type IComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetForStudent(ctx context.Context, id, studentID int64) (*models.Complaint, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error)
	ListByRollNumber(ctx context.Context, rollNumber string) ([]*models.Complaint, error)
	List(ctx context.Context, filter ComplaintFilter) ([]*models.Complaint, error)
	ListTeacherApproved(ctx context.Context, filter ComplaintFilter) ([]*models.Complaint, error)

	UpdateStatusForStudent(ctx context.Context, id, studentID int64, status models.ComplaintStatus) error
	UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error
	Approve(ctx context.Context, id, teacherID int64, note string) error

	Statistics(ctx context.Context) (*models.ComplaintStatistics, error)
}

// ITeacherComplaintRepository defines the interface for teacher complaint storage
type ITeacherComplaintRepository interface {
	Create(ctx context.Context, complaint *models.TeacherComplaint) error
	ListByTeacher(ctx context.Context, teacherID int64, filter TeacherComplaintFilter) ([]*models.TeacherComplaint, error)
	List(ctx context.Context, filter TeacherComplaintFilter) ([]*models.TeacherComplaint, error)
	UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error
}

// IResourceRepository defines the interface for inventory resource storage
type IResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Students          IStudentRepository
	Teachers          ITeacherRepository
	Admins            IAdminRepository
	Complaints        IComplaintRepository
	TeacherComplaints ITeacherComplaintRepository
	Resources         IResourceRepository
}

// NewRepositories initializes all repositories on one pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Students:          NewStudentRepository(db),
		Teachers:          NewTeacherRepository(db),
		Admins:            NewAdminRepository(db),
		Complaints:        NewComplaintRepository(db),
		TeacherComplaints: NewTeacherComplaintRepository(db),
		Resources:         NewResourceRepository(db),
	}
}
