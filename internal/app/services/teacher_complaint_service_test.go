package services

import (
	"context"
	"testing"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintCategory(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateTeacherComplaintRequest
		wantCategory string
		wantSpecific string
		wantField    string
	}{
		{
			name:         "composed type",
			req:          dto.CreateTeacherComplaintRequest{ComplaintType: "Infrastructure - Projector"},
			wantCategory: "Infrastructure",
			wantSpecific: "Projector",
		},
		{
			name:         "splits on first separator only",
			req:          dto.CreateTeacherComplaintRequest{ComplaintType: "IT - Wi-Fi - Block A"},
			wantCategory: "IT",
			wantSpecific: "Wi-Fi - Block A",
		},
		{
			name:         "no separator",
			req:          dto.CreateTeacherComplaintRequest{ComplaintType: "Water leakage"},
			wantCategory: models.CategoryOther,
			wantSpecific: "Water leakage",
		},
		{
			name:         "explicit category wins",
			req:          dto.CreateTeacherComplaintRequest{ComplaintType: "ignored - value", Category: "Furniture", SpecificType: "Chair"},
			wantCategory: "Furniture",
			wantSpecific: "Chair",
		},
		{
			name:      "category without specific type",
			req:       dto.CreateTeacherComplaintRequest{Category: "Furniture"},
			wantField: "specific_type",
		},
		{
			name:      "category with empty specific part",
			req:       dto.CreateTeacherComplaintRequest{ComplaintType: "Infrastructure - "},
			wantField: "complaint_type",
		},
		{
			name:      "specific part without category",
			req:       dto.CreateTeacherComplaintRequest{ComplaintType: " - Projector"},
			wantField: "complaint_type",
		},
		{
			name:      "blank type",
			req:       dto.CreateTeacherComplaintRequest{ComplaintType: "   "},
			wantField: "complaint_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, specific, err := complaintCategory(&tt.req)
			if tt.wantField != "" {
				require.ErrorIs(t, err, apperrors.ErrValidationFailed)
				assert.Equal(t, tt.wantField, apperrors.FieldOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, category)
			assert.Equal(t, tt.wantSpecific, specific)
		})
	}
}

func TestTeacherComplaintLifecycle(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	teacher, err := svc.Auth.RegisterTeacher(ctx, teacherRequest())
	require.NoError(t, err)
	otherReq := teacherRequest()
	otherReq.TeacherID, otherReq.Email, otherReq.Name = "T-200", "other@college.edu", "S. Iyer"
	other, err := svc.Auth.RegisterTeacher(ctx, otherReq)
	require.NoError(t, err)

	projector, err := svc.TeacherComplaints.Submit(ctx, teacher.ID, &dto.CreateTeacherComplaintRequest{
		ComplaintType:      "Infrastructure - Projector",
		Location:           "Seminar Hall",
		SpecificItem:       "Projector 2",
		ProblemDescription: "No display",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, projector.Status)
	assert.Equal(t, "R. Menon", projector.Name)
	assert.Equal(t, "T-104", projector.TeacherIDNumber)
	assert.Equal(t, "Infrastructure - Projector", projector.ComplaintType())

	_, err = svc.TeacherComplaints.Submit(ctx, other.ID, &dto.CreateTeacherComplaintRequest{
		Category:           "Furniture",
		SpecificType:       "Chair",
		Location:           "Staff Room",
		ProblemDescription: "Broken leg",
	})
	require.NoError(t, err)

	own, err := svc.TeacherComplaints.ListForTeacher(ctx, teacher.ID, repositories.TeacherComplaintFilter{})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, projector.ID, own[0].ID)

	own, err = svc.TeacherComplaints.ListForTeacher(ctx, teacher.ID, repositories.TeacherComplaintFilter{Search: "projector 2"})
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.TeacherComplaints.List(ctx, repositories.TeacherComplaintFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].TeacherDesignation)
	assert.Equal(t, "Assistant Professor", *all[0].TeacherDesignation)

	byType, err := svc.TeacherComplaints.List(ctx, repositories.TeacherComplaintFilter{ComplaintType: "Furniture - Chair"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Chair", byType[0].SpecificType)

	byName, err := svc.TeacherComplaints.List(ctx, repositories.TeacherComplaintFilter{Search: "iyer"})
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	require.NoError(t, svc.TeacherComplaints.UpdateStatus(ctx, projector.ID, models.StatusResolved))
	resolved, err := svc.TeacherComplaints.List(ctx, repositories.TeacherComplaintFilter{Status: "Resolved"})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, projector.ID, resolved[0].ID)

	err = svc.TeacherComplaints.UpdateStatus(ctx, 9999, models.StatusResolved)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
	err = svc.TeacherComplaints.UpdateStatus(ctx, projector.ID, "Done")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestTeacherComplaintForDeletedTeacher(t *testing.T) {
	svc, store, _ := newTestServices(t)
	ctx := context.Background()
	teacher, err := svc.Auth.RegisterTeacher(ctx, teacherRequest())
	require.NoError(t, err)
	store.DeleteTeacher(teacher.ID)

	_, err = svc.TeacherComplaints.Submit(ctx, teacher.ID, &dto.CreateTeacherComplaintRequest{
		ComplaintType: "Lab - Fume hood", Location: "Chem Lab", ProblemDescription: "Fan dead",
	})
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestTeacherComplaintOtherTypeWithSeparator(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	teacher, err := svc.Auth.RegisterTeacher(ctx, teacherRequest())
	require.NoError(t, err)

	fan, err := svc.TeacherComplaints.Submit(ctx, teacher.ID, &dto.CreateTeacherComplaintRequest{
		Category:           models.CategoryOther,
		SpecificType:       "Fan - Ceiling",
		Location:           "Room 12",
		ProblemDescription: "Wobbles",
	})
	require.NoError(t, err)
	shown := fan.ComplaintType()
	assert.Equal(t, "Other - Fan - Ceiling", shown)

	found, err := svc.TeacherComplaints.ListForTeacher(ctx, teacher.ID, repositories.TeacherComplaintFilter{ComplaintType: shown})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, fan.ID, found[0].ID)
}
