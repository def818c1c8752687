package memrepo

import (
	"context"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
)

// StudentRepository is the in-memory IStudentRepository
type StudentRepository struct{ s *Store }

func (r *StudentRepository) Create(_ context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.conflict(student.RollNumber, student.Email); err != nil {
		return err
	}
	student.ID = r.s.id()
	student.CreatedAt = r.s.now()
	cp := *student
	r.s.students = append(r.s.students, &cp)
	return nil
}

func (r *StudentRepository) GetByID(_ context.Context, id int64) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, st := range r.s.students {
		if st.ID == id {
			cp := *st
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *StudentRepository) GetByRollNumber(_ context.Context, rollNumber string) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, st := range r.s.students {
		if st.RollNumber == rollNumber {
			cp := *st
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *StudentRepository) EnsureUnique(_ context.Context, rollNumber, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.conflict(rollNumber, email)
}

func (r *StudentRepository) conflict(rollNumber, email string) error {
	for _, st := range r.s.students {
		if st.RollNumber == rollNumber {
			return apperrors.NewConflictError("roll_number", "Roll number")
		}
	}
	for _, st := range r.s.students {
		if st.Email == email {
			return apperrors.NewConflictError("email", "Email")
		}
	}
	return nil
}

// TeacherRepository is the in-memory ITeacherRepository
type TeacherRepository struct{ s *Store }

func (r *TeacherRepository) Create(_ context.Context, teacher *models.Teacher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.conflict(teacher.TeacherID, teacher.Email); err != nil {
		return err
	}
	teacher.ID = r.s.id()
	teacher.CreatedAt = r.s.now()
	cp := *teacher
	r.s.teachers = append(r.s.teachers, &cp)
	return nil
}

func (r *TeacherRepository) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.teachers {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (r *TeacherRepository) GetByTeacherID(_ context.Context, teacherID string) (*models.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.teachers {
		if t.TeacherID == teacherID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (r *TeacherRepository) EnsureUnique(_ context.Context, teacherID, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.conflict(teacherID, email)
}

func (r *TeacherRepository) conflict(teacherID, email string) error {
	for _, t := range r.s.teachers {
		if t.TeacherID == teacherID {
			return apperrors.NewConflictError("teacher_id", "Teacher ID")
		}
	}
	for _, t := range r.s.teachers {
		if t.Email == email {
			return apperrors.NewConflictError("email", "Email")
		}
	}
	return nil
}

// teacherByID looks a teacher up without locking; callers hold mu
func (s *Store) teacherByID(id int64) *models.Teacher {
	for _, t := range s.teachers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AdminRepository is the in-memory IAdminRepository
type AdminRepository struct{ s *Store }

func (r *AdminRepository) Create(_ context.Context, admin *models.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.conflict(admin.Username, admin.Email); err != nil {
		return err
	}
	admin.ID = r.s.id()
	admin.CreatedAt = r.s.now()
	cp := *admin
	r.s.admins = append(r.s.admins, &cp)
	return nil
}

func (r *AdminRepository) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.admins {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (r *AdminRepository) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (r *AdminRepository) EnsureUnique(_ context.Context, username, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.conflict(username, email)
}

func (r *AdminRepository) conflict(username, email string) error {
	for _, a := range r.s.admins {
		if a.Username == username {
			return apperrors.NewConflictError("username", "Username")
		}
	}
	for _, a := range r.s.admins {
		if a.Email == email {
			return apperrors.NewConflictError("email", "Email")
		}
	}
	return nil
}
