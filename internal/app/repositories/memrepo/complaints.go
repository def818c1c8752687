package memrepo

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
)

// ComplaintRepository is the in-memory IComplaintRepository
type ComplaintRepository struct{ s *Store }

func (r *ComplaintRepository) Create(_ context.Context, c *models.Complaint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.studentExists(c.StudentID) {
		return apperrors.ErrStudentNotFound
	}
	c.ID = r.s.id()
	c.Status = models.StatusPending
	c.TeacherApproved = false
	c.CreatedAt = r.s.now()
	cp := *c
	r.s.complaints = append(r.s.complaints, &cp)
	return nil
}

func (r *ComplaintRepository) studentExists(id int64) bool {
	for _, st := range r.s.students {
		if st.ID == id {
			return true
		}
	}
	return false
}

func (r *ComplaintRepository) GetForStudent(_ context.Context, id, studentID int64) (*models.Complaint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.complaints {
		if c.ID == id && c.StudentID == studentID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrComplaintNotFound
}

func (r *ComplaintRepository) ListByStudent(_ context.Context, studentID int64) ([]*models.Complaint, error) {
	return r.selectWhere(func(c *models.Complaint) bool { return c.StudentID == studentID }, false), nil
}

func (r *ComplaintRepository) ListByRollNumber(_ context.Context, rollNumber string) ([]*models.Complaint, error) {
	return r.selectWhere(func(c *models.Complaint) bool { return c.RollNumber == rollNumber }, false), nil
}

func (r *ComplaintRepository) List(_ context.Context, f repositories.ComplaintFilter) ([]*models.Complaint, error) {
	return r.selectWhere(func(c *models.Complaint) bool { return matchComplaint(c, f) }, false), nil
}

func (r *ComplaintRepository) ListTeacherApproved(_ context.Context, f repositories.ComplaintFilter) ([]*models.Complaint, error) {
	return r.selectWhere(func(c *models.Complaint) bool {
		return c.TeacherApproved && c.TeacherID != nil && matchComplaint(c, f)
	}, true), nil
}

func (r *ComplaintRepository) selectWhere(keep func(*models.Complaint) bool, joinTeacher bool) []*models.Complaint {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*models.Complaint{}
	for _, c := range r.s.complaints {
		if !keep(c) {
			continue
		}
		cp := *c
		if joinTeacher {
			t := r.s.teacherByID(*c.TeacherID)
			if t == nil {
				continue
			}
			name, dept := t.Name, t.Department
			cp.TeacherName, cp.TeacherDepartment = &name, &dept
		}
		out = append(out, &cp)
	}
	sortNewestFirst(out, func(c *models.Complaint) (time.Time, int64) { return c.CreatedAt, c.ID })
	return out
}

func matchComplaint(c *models.Complaint, f repositories.ComplaintFilter) bool {
	if v := strings.TrimSpace(f.Branch); v != "" && c.Branch != v {
		return false
	}
	if v := strings.TrimSpace(f.Status); v != "" && string(c.Status) != v {
		return false
	}
	if v := strings.TrimSpace(f.ComplaintType); v != "" && c.ComplaintType != v {
		return false
	}
	if v := strings.TrimSpace(f.Search); v != "" && !anyContains(v, c.Name, c.RollNumber, c.ProblemDescription, c.Location) {
		return false
	}
	return true
}

func (r *ComplaintRepository) UpdateStatusForStudent(_ context.Context, id, studentID int64, status models.ComplaintStatus) error {
	return r.update(func(c *models.Complaint) bool { return c.ID == id && c.StudentID == studentID }, func(c *models.Complaint) {
		c.Status = status
	})
}

func (r *ComplaintRepository) UpdateStatus(_ context.Context, id int64, status models.ComplaintStatus) error {
	return r.update(func(c *models.Complaint) bool { return c.ID == id }, func(c *models.Complaint) {
		c.Status = status
	})
}

func (r *ComplaintRepository) Approve(_ context.Context, id, teacherID int64, note string) error {
	return r.update(func(c *models.Complaint) bool { return c.ID == id }, func(c *models.Complaint) {
		c.TeacherApproved = true
		c.ApprovalNote = &note
		c.TeacherID = &teacherID
	})
}

func (r *ComplaintRepository) update(match func(*models.Complaint) bool, apply func(*models.Complaint)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.complaints {
		if match(c) {
			apply(c)
			now := r.s.now()
			c.UpdatedAt = &now
			return nil
		}
	}
	return apperrors.ErrComplaintNotFound
}

func (r *ComplaintRepository) Statistics(_ context.Context) (*models.ComplaintStatistics, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	byStatus := map[string]int64{}
	byType := map[string]int64{}
	byBranch := map[string]int64{}
	stats := &models.ComplaintStatistics{}
	cutoff := r.s.now().Add(-7 * 24 * time.Hour)

	for _, c := range r.s.complaints {
		stats.Total++
		byStatus[string(c.Status)]++
		byType[c.ComplaintType]++
		byBranch[c.Branch]++
		if !c.CreatedAt.Before(cutoff) {
			stats.Recent++
		}
	}

	stats.ByStatus = groups(byStatus)
	stats.ByType = groups(byType)
	stats.ByBranch = groups(byBranch)
	return stats, nil
}

func groups(m map[string]int64) []models.GroupCount {
	out := make([]models.GroupCount, 0, len(m))
	for k, v := range m {
		out = append(out, models.GroupCount{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// TeacherComplaintRepository is the in-memory ITeacherComplaintRepository
type TeacherComplaintRepository struct{ s *Store }

func (r *TeacherComplaintRepository) Create(_ context.Context, c *models.TeacherComplaint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.teacherByID(c.TeacherID) == nil {
		return apperrors.ErrTeacherNotFound
	}
	c.ID = r.s.id()
	c.Status = models.StatusPending
	c.CreatedAt = r.s.now()
	cp := *c
	r.s.teacherComplaints = append(r.s.teacherComplaints, &cp)
	return nil
}

func (r *TeacherComplaintRepository) ListByTeacher(_ context.Context, teacherID int64, f repositories.TeacherComplaintFilter) ([]*models.TeacherComplaint, error) {
	return r.selectWhere(func(c *models.TeacherComplaint) bool {
		return c.TeacherID == teacherID &&
			matchTeacherComplaint(c, f, c.ProblemDescription, c.Location, deref(c.SpecificItem))
	}, false), nil
}

func (r *TeacherComplaintRepository) List(_ context.Context, f repositories.TeacherComplaintFilter) ([]*models.TeacherComplaint, error) {
	return r.selectWhere(func(c *models.TeacherComplaint) bool {
		return matchTeacherComplaint(c, f, c.Name, c.TeacherIDNumber, c.ProblemDescription, c.Location)
	}, true), nil
}

func (r *TeacherComplaintRepository) selectWhere(keep func(*models.TeacherComplaint) bool, joinTeacher bool) []*models.TeacherComplaint {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*models.TeacherComplaint{}
	for _, c := range r.s.teacherComplaints {
		if !keep(c) {
			continue
		}
		cp := *c
		if joinTeacher {
			t := r.s.teacherByID(c.TeacherID)
			if t == nil {
				continue
			}
			designation := t.Designation
			cp.TeacherDesignation = &designation
		}
		out = append(out, &cp)
	}
	sortNewestFirst(out, func(c *models.TeacherComplaint) (time.Time, int64) { return c.CreatedAt, c.ID })
	return out
}

func matchTeacherComplaint(c *models.TeacherComplaint, f repositories.TeacherComplaintFilter, searchable ...string) bool {
	if v := strings.TrimSpace(f.Status); v != "" && string(c.Status) != v {
		return false
	}
	if v := strings.TrimSpace(f.ComplaintType); v != "" {
		category, specific := models.SplitComplaintType(v)
		if c.Category != category || c.SpecificType != specific {
			return false
		}
	}
	if v := strings.TrimSpace(f.Category); v != "" && c.Category != v {
		return false
	}
	if v := strings.TrimSpace(f.Search); v != "" && !anyContains(v, searchable...) {
		return false
	}
	return true
}

func (r *TeacherComplaintRepository) UpdateStatus(_ context.Context, id int64, status models.ComplaintStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.teacherComplaints {
		if c.ID == id {
			c.Status = status
			now := r.s.now()
			c.UpdatedAt = &now
			return nil
		}
	}
	return apperrors.ErrComplaintNotFound
}
