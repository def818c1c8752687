package services

import (
	"context"
	"testing"
	"time"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fanComplaint() *dto.CreateComplaintRequest {
	return &dto.CreateComplaintRequest{
		ComplaintType:      "Fans",
		Location:           "101",
		SpecificItem:       "Fan 3",
		ProblemDescription: "Not spinning",
	}
}

func registerStudent(t *testing.T, svc *Services, roll, email, branch string) *dto.StudentResponse {
	t.Helper()
	req := studentRequest()
	req.RollNumber, req.Email, req.Branch = roll, email, branch
	resp, err := svc.Auth.RegisterStudent(context.Background(), req)
	require.NoError(t, err)
	return resp
}

func TestSubmitSnapshotsStudent(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	student := registerStudent(t, svc, "21A1", "a@x.com", "CSE")

	complaint, err := svc.Complaints.Submit(ctx, student.ID, fanComplaint())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, complaint.Status)
	assert.False(t, complaint.TeacherApproved)
	assert.Equal(t, "Ann", complaint.Name)
	assert.Equal(t, "21A1", complaint.RollNumber)
	assert.Equal(t, "CSE", complaint.Branch)
	require.NotNil(t, complaint.SpecificItem)
	assert.Equal(t, "Fan 3", *complaint.SpecificItem)
	assert.Nil(t, complaint.Suggestions)

	fetched, err := svc.Complaints.GetForStudent(ctx, complaint.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, complaint.ComplaintType, fetched.ComplaintType)
	assert.Equal(t, complaint.Location, fetched.Location)
	assert.Equal(t, complaint.SpecificItem, fetched.SpecificItem)
	assert.Equal(t, complaint.ProblemDescription, fetched.ProblemDescription)
	assert.Equal(t, complaint.Status, fetched.Status)
}

func TestSubmitForDeletedStudent(t *testing.T) {
	svc, store, _ := newTestServices(t)
	student := registerStudent(t, svc, "21A1", "a@x.com", "CSE")
	store.DeleteStudent(student.ID)

	_, err := svc.Complaints.Submit(context.Background(), student.ID, fanComplaint())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestComplaintOwnership(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	owner := registerStudent(t, svc, "21A1", "a@x.com", "CSE")
	other := registerStudent(t, svc, "21A2", "b@x.com", "ECE")

	complaint, err := svc.Complaints.Submit(ctx, owner.ID, fanComplaint())
	require.NoError(t, err)

	_, err = svc.Complaints.GetForStudent(ctx, complaint.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)

	err = svc.Complaints.UpdateStatusForStudent(ctx, complaint.ID, other.ID, models.StatusResolved)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
	assert.Equal(t, "Complaint not found or not owned by student", err.Error())

	mine, err := svc.Complaints.GetForStudent(ctx, complaint.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, mine.Status)

	list, err := svc.Complaints.ListForStudent(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateStatusRejectsUnknownValues(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	student := registerStudent(t, svc, "21A1", "a@x.com", "CSE")
	complaint, err := svc.Complaints.Submit(ctx, student.ID, fanComplaint())
	require.NoError(t, err)

	for _, status := range []models.ComplaintStatus{"Closed", "", "pending", models.StatusRejected} {
		err := svc.Complaints.UpdateStatusForStudent(ctx, complaint.ID, student.ID, status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "status %q", status)
		err = svc.Complaints.UpdateStatus(ctx, complaint.ID, status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "status %q", status)
	}

	unchanged, err := svc.Complaints.GetForStudent(ctx, complaint.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, unchanged.Status)
	assert.Nil(t, unchanged.UpdatedAt)

	require.NoError(t, svc.Complaints.UpdateStatusForStudent(ctx, complaint.ID, student.ID, models.StatusInProgress))
	updated, err := svc.Complaints.GetForStudent(ctx, complaint.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestApproveFlow(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	student := registerStudent(t, svc, "21A1", "a@x.com", "CSE")
	teacher, err := svc.Auth.RegisterTeacher(ctx, teacherRequest())
	require.NoError(t, err)

	complaint, err := svc.Complaints.Submit(ctx, student.ID, fanComplaint())
	require.NoError(t, err)

	approved, err := svc.Complaints.ListTeacherApproved(ctx, repositories.ComplaintFilter{})
	require.NoError(t, err)
	assert.Empty(t, approved)

	require.NoError(t, svc.Complaints.Approve(ctx, complaint.ID, teacher.ID, "valid"))

	list, err := svc.Complaints.List(ctx, repositories.ComplaintFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].TeacherApproved)
	require.NotNil(t, list[0].ApprovalNote)
	assert.Equal(t, "valid", *list[0].ApprovalNote)
	require.NotNil(t, list[0].TeacherID)
	assert.Equal(t, teacher.ID, *list[0].TeacherID)

	approved, err = svc.Complaints.ListTeacherApproved(ctx, repositories.ComplaintFilter{})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	require.NotNil(t, approved[0].TeacherName)
	assert.Equal(t, "R. Menon", *approved[0].TeacherName)
	require.NotNil(t, approved[0].TeacherDepartment)
	assert.Equal(t, "CSE", *approved[0].TeacherDepartment)

	// Status changes never clear the approval.
	require.NoError(t, svc.Complaints.UpdateStatus(ctx, complaint.ID, models.StatusResolved))
	require.NoError(t, svc.Complaints.UpdateStatusForStudent(ctx, complaint.ID, student.ID, models.StatusPending))
	got, err := svc.Complaints.GetForStudent(ctx, complaint.ID, student.ID)
	require.NoError(t, err)
	assert.True(t, got.TeacherApproved)

	// A second approval overwrites the note.
	require.NoError(t, svc.Complaints.Approve(ctx, complaint.ID, teacher.ID, "checked again"))
	got, err = svc.Complaints.GetForStudent(ctx, complaint.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "checked again", *got.ApprovalNote)
}

func TestApproveErrors(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	teacher, err := svc.Auth.RegisterTeacher(ctx, teacherRequest())
	require.NoError(t, err)

	err = svc.Complaints.Approve(ctx, 42, teacher.ID, "valid")
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)

	err = svc.Complaints.Approve(ctx, 42, teacher.ID, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.Complaints.Approve(ctx, 42, 9999, "valid")
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestAdminUpdateStatusMissingComplaint(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	student := registerStudent(t, svc, "21A1", "a@x.com", "CSE")
	complaint, err := svc.Complaints.Submit(ctx, student.ID, fanComplaint())
	require.NoError(t, err)

	err = svc.Complaints.UpdateStatus(ctx, complaint.ID+100, models.StatusResolved)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)

	list, err := svc.Complaints.List(ctx, repositories.ComplaintFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.StatusPending, list[0].Status)
	assert.Nil(t, list[0].UpdatedAt)
}

func TestListFiltersAndOrdering(t *testing.T) {
	svc, store, _ := newTestServices(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := base
	store.SetClock(func() time.Time { return clock })

	cse := registerStudent(t, svc, "21A1", "a@x.com", "CSE")
	ece := registerStudent(t, svc, "21A2", "b@x.com", "ECE")

	first, err := svc.Complaints.Submit(ctx, cse.ID, fanComplaint())
	require.NoError(t, err)
	clock = base.Add(time.Hour)
	lights := &dto.CreateComplaintRequest{ComplaintType: "Lights", Location: "Lab 2", ProblemDescription: "Flickering tube"}
	second, err := svc.Complaints.Submit(ctx, ece.ID, lights)
	require.NoError(t, err)
	third, err := svc.Complaints.Submit(ctx, cse.ID, lights)
	require.NoError(t, err)

	all, err := svc.Complaints.List(ctx, repositories.ComplaintFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{third.ID, second.ID, first.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})

	tests := []struct {
		name   string
		filter repositories.ComplaintFilter
		want   []int64
	}{
		{"branch", repositories.ComplaintFilter{Branch: "ECE"}, []int64{second.ID}},
		{"type", repositories.ComplaintFilter{ComplaintType: "Fans"}, []int64{first.ID}},
		{"search is case insensitive", repositories.ComplaintFilter{Search: "FLICKER"}, []int64{third.ID, second.ID}},
		{"search matches roll number", repositories.ComplaintFilter{Search: "21a2"}, []int64{second.ID}},
		{"combined", repositories.ComplaintFilter{Branch: "CSE", Search: "lab"}, []int64{third.ID}},
		{"rejected matches nothing", repositories.ComplaintFilter{Status: string(models.StatusRejected)}, nil},
		{"wildcards are literal", repositories.ComplaintFilter{Search: "%"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Complaints.List(ctx, tt.filter)
			require.NoError(t, err)
			var ids []int64
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	byRoll, err := svc.Complaints.ListByRollNumber(ctx, "21A1")
	require.NoError(t, err)
	require.Len(t, byRoll, 2)
	assert.Equal(t, third.ID, byRoll[0].ID)
}

func TestStatistics(t *testing.T) {
	svc, store, _ := newTestServices(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	clock := now.Add(-10 * 24 * time.Hour)
	store.SetClock(func() time.Time { return clock })

	cse := registerStudent(t, svc, "21A1", "a@x.com", "CSE")
	ece := registerStudent(t, svc, "21A2", "b@x.com", "ECE")

	old, err := svc.Complaints.Submit(ctx, cse.ID, fanComplaint())
	require.NoError(t, err)
	clock = now.Add(-time.Hour)
	_, err = svc.Complaints.Submit(ctx, ece.ID, fanComplaint())
	require.NoError(t, err)
	_, err = svc.Complaints.Submit(ctx, cse.ID, &dto.CreateComplaintRequest{ComplaintType: "Lights", Location: "Lab", ProblemDescription: "Dark"})
	require.NoError(t, err)
	clock = now
	require.NoError(t, svc.Complaints.UpdateStatus(ctx, old.ID, models.StatusResolved))

	stats, err := svc.Complaints.Statistics(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 2, stats.Recent)
	assert.ElementsMatch(t, []models.GroupCount{{Key: "Pending", Count: 2}, {Key: "Resolved", Count: 1}}, stats.ByStatus)
	assert.ElementsMatch(t, []models.GroupCount{{Key: "Fans", Count: 2}, {Key: "Lights", Count: 1}}, stats.ByType)
	assert.ElementsMatch(t, []models.GroupCount{{Key: "CSE", Count: 2}, {Key: "ECE", Count: 1}}, stats.ByBranch)
}
