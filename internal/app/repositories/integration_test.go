//go:build integration

package repositories_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/migrations"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/helpers"
)

// Run with: TEST_DATABASE_DSN=postgres://... go test -tags integration ./internal/app/repositories/

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "TEST_DATABASE_DSN not set, skipping repository integration tests")
		os.Exit(0)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot connect to test database: %v\n", err)
		os.Exit(1)
	}
	if err := migrations.NewMigrator(pool).Migrate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "migrations failed: %v\n", err)
		pool.Close()
		os.Exit(1)
	}
	testPool = pool

	code := m.Run()
	pool.Close()
	os.Exit(code)
}

// setupRepos empties every table and returns repositories on the test pool
func setupRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		"TRUNCATE complaints, teacher_complaints, resources, students, teachers, admins RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	return repositories.NewRepositories(testPool)
}

func createStudent(t *testing.T, repos *repositories.Repositories, roll, email string) *models.Student {
	t.Helper()
	s := &models.Student{RollNumber: roll, Name: "Student " + roll, Email: email, Password: "hash", Branch: "CSE", Year: 3}
	require.NoError(t, repos.Students.Create(context.Background(), s))
	return s
}

func createTeacher(t *testing.T, repos *repositories.Repositories, teacherID, email string) *models.Teacher {
	t.Helper()
	tc := &models.Teacher{TeacherID: teacherID, Name: "R. Menon", Email: email, Password: "hash", Department: "CSE", Designation: "Assistant Professor"}
	require.NoError(t, repos.Teachers.Create(context.Background(), tc))
	return tc
}

func createComplaint(t *testing.T, repos *repositories.Repositories, s *models.Student, location, description string) *models.Complaint {
	t.Helper()
	c := &models.Complaint{
		StudentID:          s.ID,
		Name:               s.Name,
		RollNumber:         s.RollNumber,
		Branch:             s.Branch,
		ComplaintType:      "Electrical",
		Location:           location,
		SpecificItem:       helpers.NullableString("Fan 3"),
		ProblemDescription: description,
	}
	require.NoError(t, repos.Complaints.Create(context.Background(), c))
	return c
}

func TestStudentRepository_Integration(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	asha := createStudent(t, repos, "21CS001", "asha@college.edu")
	assert.NotZero(t, asha.ID)
	assert.False(t, asha.CreatedAt.IsZero())

	got, err := repos.Students.GetByRollNumber(ctx, "21CS001")
	require.NoError(t, err)
	assert.Equal(t, asha.ID, got.ID)
	assert.Equal(t, "asha@college.edu", got.Email)
	assert.Equal(t, "hash", got.Password)
	assert.Equal(t, 3, got.Year)

	_, err = repos.Students.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	t.Run("ensure unique", func(t *testing.T) {
		createStudent(t, repos, "21CS002", "ravi@college.edu")

		assert.NoError(t, repos.Students.EnsureUnique(ctx, "21CS003", "new@college.edu"))

		err := repos.Students.EnsureUnique(ctx, "21CS003", "asha@college.edu")
		require.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Equal(t, "email", apperrors.FieldOf(err))

		// Roll number of one row and email of another: roll number is reported
		for i := 0; i < 5; i++ {
			err = repos.Students.EnsureUnique(ctx, "21CS002", "asha@college.edu")
			require.ErrorIs(t, err, apperrors.ErrConflict)
			assert.Equal(t, "roll_number", apperrors.FieldOf(err))
		}
	})

	t.Run("duplicate insert maps constraint", func(t *testing.T) {
		err := repos.Students.Create(ctx, &models.Student{RollNumber: "21CS001", Name: "X", Email: "x@college.edu", Password: "h", Branch: "ECE", Year: 1})
		require.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Equal(t, "roll_number", apperrors.FieldOf(err))

		err = repos.Students.Create(ctx, &models.Student{RollNumber: "21CS009", Name: "X", Email: "asha@college.edu", Password: "h", Branch: "ECE", Year: 1})
		require.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Equal(t, "email", apperrors.FieldOf(err))
	})
}

func TestTeacherAndAdminRepositories_Integration(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	menon := createTeacher(t, repos, "T-104", "menon@college.edu")
	got, err := repos.Teachers.GetByTeacherID(ctx, "T-104")
	require.NoError(t, err)
	assert.Equal(t, menon.ID, got.ID)
	assert.Equal(t, "Assistant Professor", got.Designation)

	err = repos.Teachers.Create(ctx, &models.Teacher{TeacherID: "T-104", Name: "Y", Email: "y@college.edu", Password: "h", Department: "ME", Designation: "Professor"})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "teacher_id", apperrors.FieldOf(err))

	_, err = repos.Teachers.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)

	admin := &models.Admin{Username: "admin", Name: "Administrator", Email: "admin@college.edu", Password: "hash"}
	require.NoError(t, repos.Admins.Create(ctx, admin))

	err = repos.Admins.EnsureUnique(ctx, "office", "admin@college.edu")
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "email", apperrors.FieldOf(err))

	err = repos.Admins.Create(ctx, &models.Admin{Username: "office", Name: "Office", Email: "admin@college.edu", Password: "h"})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "email", apperrors.FieldOf(err))

	_, err = repos.Admins.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
}

func TestComplaintRepository_Integration(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	asha := createStudent(t, repos, "21CS001", "asha@college.edu")
	ravi := createStudent(t, repos, "21CS002", "ravi@college.edu")
	menon := createTeacher(t, repos, "T-104", "menon@college.edu")

	fan := createComplaint(t, repos, asha, "Room 101", "Fan not working")
	assert.Equal(t, models.StatusPending, fan.Status)
	assert.False(t, fan.TeacherApproved)

	t.Run("scan round trip", func(t *testing.T) {
		got, err := repos.Complaints.GetForStudent(ctx, fan.ID, asha.ID)
		require.NoError(t, err)
		assert.Equal(t, fan.ID, got.ID)
		assert.Equal(t, "21CS001", got.RollNumber)
		assert.Equal(t, "Electrical", got.ComplaintType)
		assert.Equal(t, "Room 101", got.Location)
		require.NotNil(t, got.SpecificItem)
		assert.Equal(t, "Fan 3", *got.SpecificItem)
		assert.Nil(t, got.Suggestions)
		assert.Nil(t, got.ApprovalNote)
		assert.Nil(t, got.TeacherID)
		assert.Nil(t, got.UpdatedAt)
		assert.Equal(t, models.StatusPending, got.Status)

		_, err = repos.Complaints.GetForStudent(ctx, fan.ID, ravi.ID)
		assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
	})

	t.Run("updates report missing rows", func(t *testing.T) {
		err := repos.Complaints.UpdateStatusForStudent(ctx, fan.ID, ravi.ID, models.StatusResolved)
		assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
		assert.ErrorIs(t, repos.Complaints.UpdateStatus(ctx, 9999, models.StatusResolved), apperrors.ErrComplaintNotFound)
		assert.ErrorIs(t, repos.Complaints.Approve(ctx, 9999, menon.ID, "valid"), apperrors.ErrComplaintNotFound)

		require.NoError(t, repos.Complaints.UpdateStatusForStudent(ctx, fan.ID, asha.ID, models.StatusInProgress))
		got, err := repos.Complaints.GetForStudent(ctx, fan.ID, asha.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInProgress, got.Status)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("approval joins the approving teacher", func(t *testing.T) {
		require.NoError(t, repos.Complaints.Approve(ctx, fan.ID, menon.ID, "valid"))

		approved, err := repos.Complaints.ListTeacherApproved(ctx, repositories.ComplaintFilter{})
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.True(t, approved[0].TeacherApproved)
		require.NotNil(t, approved[0].ApprovalNote)
		assert.Equal(t, "valid", *approved[0].ApprovalNote)
		require.NotNil(t, approved[0].TeacherName)
		assert.Equal(t, "R. Menon", *approved[0].TeacherName)
		require.NotNil(t, approved[0].TeacherDepartment)
		assert.Equal(t, "CSE", *approved[0].TeacherDepartment)
	})

	t.Run("listings", func(t *testing.T) {
		createComplaint(t, repos, ravi, "Room 202", "Light flickers")

		own, err := repos.Complaints.ListByStudent(ctx, asha.ID)
		require.NoError(t, err)
		require.Len(t, own, 1)

		byRoll, err := repos.Complaints.ListByRollNumber(ctx, "21CS002")
		require.NoError(t, err)
		require.Len(t, byRoll, 1)
		assert.Equal(t, "Light flickers", byRoll[0].ProblemDescription)

		all, err := repos.Complaints.List(ctx, repositories.ComplaintFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "21CS002", all[0].RollNumber, "newest first")

		filtered, err := repos.Complaints.List(ctx, repositories.ComplaintFilter{Status: "In Progress", Branch: "CSE"})
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, fan.ID, filtered[0].ID)
	})
}

func TestComplaintSearchEscapesWildcards_Integration(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	asha := createStudent(t, repos, "21CS001", "asha@college.edu")

	percent := createComplaint(t, repos, asha, "Lab_1", "Fan 100% dead")
	createComplaint(t, repos, asha, "Lab21", "Fan 1000 dead")

	got, err := repos.Complaints.List(ctx, repositories.ComplaintFilter{Search: "100%"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, percent.ID, got[0].ID)

	got, err = repos.Complaints.List(ctx, repositories.ComplaintFilter{Search: "lab_1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, percent.ID, got[0].ID)

	got, err = repos.Complaints.List(ctx, repositories.ComplaintFilter{Search: "FAN"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestComplaintStatistics_Integration(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	stats, err := repos.Complaints.Statistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByStatus)

	asha := createStudent(t, repos, "21CS001", "asha@college.edu")
	ece := &models.Student{RollNumber: "21EC001", Name: "Ravi", Email: "ravi@college.edu", Password: "hash", Branch: "ECE", Year: 2}
	require.NoError(t, repos.Students.Create(ctx, ece))

	first := createComplaint(t, repos, asha, "Room 101", "Fan")
	createComplaint(t, repos, asha, "Room 102", "Light")
	createComplaint(t, repos, ece, "Lab 3", "Bench")
	require.NoError(t, repos.Complaints.UpdateStatus(ctx, first.ID, models.StatusResolved))

	stats, err = repos.Complaints.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(3), stats.Recent)
	assert.Equal(t, []models.GroupCount{{Key: "Pending", Count: 2}, {Key: "Resolved", Count: 1}}, stats.ByStatus)
	assert.Equal(t, []models.GroupCount{{Key: "CSE", Count: 2}, {Key: "ECE", Count: 1}}, stats.ByBranch)
	assert.Equal(t, []models.GroupCount{{Key: "Electrical", Count: 3}}, stats.ByType)
}

func TestTeacherComplaintRepository_Integration(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	menon := createTeacher(t, repos, "T-104", "menon@college.edu")

	fan := &models.TeacherComplaint{
		TeacherID:          menon.ID,
		Name:               menon.Name,
		TeacherIDNumber:    menon.TeacherID,
		Department:         menon.Department,
		Category:           models.CategoryOther,
		SpecificType:       "Fan - Ceiling",
		Location:           "Room 12",
		ProblemDescription: "Wobbles",
	}
	require.NoError(t, repos.TeacherComplaints.Create(ctx, fan))
	assert.Equal(t, models.StatusPending, fan.Status)

	own, err := repos.TeacherComplaints.ListByTeacher(ctx, menon.ID, repositories.TeacherComplaintFilter{ComplaintType: fan.ComplaintType()})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, fan.ID, own[0].ID)
	assert.Nil(t, own[0].TeacherDesignation)

	all, err := repos.TeacherComplaints.List(ctx, repositories.TeacherComplaintFilter{Search: "t-104"})
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].TeacherDesignation)
	assert.Equal(t, "Assistant Professor", *all[0].TeacherDesignation)

	require.NoError(t, repos.TeacherComplaints.UpdateStatus(ctx, fan.ID, models.StatusResolved))
	assert.ErrorIs(t, repos.TeacherComplaints.UpdateStatus(ctx, 9999, models.StatusResolved), apperrors.ErrComplaintNotFound)
}

func TestResourceRepository_Integration(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	projector := &models.Resource{Name: "Projector", ItemID: "PRJ-01", Features: helpers.NullableString("HDMI")}
	require.NoError(t, repos.Resources.Create(ctx, projector))
	require.NoError(t, repos.Resources.Create(ctx, &models.Resource{Name: "Chair", ItemID: "CHR-01"}))

	got, err := repos.Resources.List(ctx, repositories.ResourceFilter{Name: "proj"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, projector.ID, got[0].ID)

	projector.Name = "Projector 4K"
	projector.Features = nil
	require.NoError(t, repos.Resources.Update(ctx, projector))
	updated, err := repos.Resources.GetByID(ctx, projector.ID)
	require.NoError(t, err)
	assert.Equal(t, "Projector 4K", updated.Name)
	assert.Nil(t, updated.Features)

	assert.ErrorIs(t, repos.Resources.Update(ctx, &models.Resource{ID: 9999, Name: "x", ItemID: "y"}), apperrors.ErrInventoryItemNotFound)
	require.NoError(t, repos.Resources.Delete(ctx, projector.ID))
	assert.ErrorIs(t, repos.Resources.Delete(ctx, projector.ID), apperrors.ErrInventoryItemNotFound)
	_, err = repos.Resources.GetByID(ctx, projector.ID)
	assert.ErrorIs(t, err, apperrors.ErrInventoryItemNotFound)
}
