// Package memrepo provides in-memory implementations of the repository
// interfaces. It mirrors the Postgres repositories closely enough for service
// and handler tests: unique keys, ownership checks, filters and ordering.
package memrepo

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
)

// Store is the shared backing state. Foreign keys between tables behave as in
// the SQL schema (cascade on owner delete, set-null on approver delete).
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	nextID int64

	students          []*models.Student
	teachers          []*models.Teacher
	admins            []*models.Admin
	complaints        []*models.Complaint
	teacherComplaints []*models.TeacherComplaint
	resources         []*models.Resource
}

// New returns an empty store using the wall clock
func New() *Store {
	return &Store{now: time.Now}
}

// SetClock replaces the time source used for created_at and updated_at
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Repositories wires every in-memory repository onto s
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		Students:          &StudentRepository{s: s},
		Teachers:          &TeacherRepository{s: s},
		Admins:            &AdminRepository{s: s},
		Complaints:        &ComplaintRepository{s: s},
		TeacherComplaints: &TeacherComplaintRepository{s: s},
		Resources:         &ResourceRepository{s: s},
	}
}

// id hands out a store-wide increasing id; callers hold mu
func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// DeleteStudent removes a student and cascades to their complaints
func (s *Store) DeleteStudent(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = filterSlice(s.students, func(st *models.Student) bool { return st.ID != id })
	s.complaints = filterSlice(s.complaints, func(c *models.Complaint) bool { return c.StudentID != id })
}

// DeleteTeacher removes a teacher, cascading to their own complaints and
// clearing them as approver elsewhere
func (s *Store) DeleteTeacher(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teachers = filterSlice(s.teachers, func(t *models.Teacher) bool { return t.ID != id })
	s.teacherComplaints = filterSlice(s.teacherComplaints, func(c *models.TeacherComplaint) bool { return c.TeacherID != id })
	for _, c := range s.complaints {
		if c.TeacherID != nil && *c.TeacherID == id {
			c.TeacherID = nil
		}
	}
}

func filterSlice[T any](in []T, keep func(T) bool) []T {
	out := in[:0]
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// containsFold is the in-memory ILIKE '%term%'
func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

func anyContains(term string, values ...string) bool {
	for _, v := range values {
		if containsFold(v, term) {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// sortNewestFirst orders by created_at then id, both descending
func sortNewestFirst[T any](items []T, key func(T) (time.Time, int64)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, ii := key(items[i])
		tj, ij := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return ii > ij
	})
}
