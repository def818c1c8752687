package dto

import (
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/helpers"
)

// CreateComplaintRequest is the body of POST /api/complaints
type CreateComplaintRequest struct {
	ComplaintType      string `json:"complaint_type" binding:"required,notblank,max=255" example:"Fans"`
	Location           string `json:"location" binding:"required,notblank,max=255" example:"101"`
	SpecificItem       string `json:"specific_item" binding:"max=255" example:"Fan 3"`
	ProblemDescription string `json:"problem_description" binding:"required,notblank" example:"Not spinning"`
	Suggestions        string `json:"suggestions" example:"Replace the capacitor"`
}

// CreateTeacherComplaintRequest is the body of POST /api/teachers/complaints.
// Either complaint_type in "Category - Specific" form or category with
// specific_type must be given.
type CreateTeacherComplaintRequest struct {
	ComplaintType      string `json:"complaint_type" binding:"required_without=Category,max=255" example:"Infrastructure - Projector"`
	Category           string `json:"category" binding:"max=100" example:"Infrastructure"`
	SpecificType       string `json:"specific_type" binding:"required_with=Category,max=255" example:"Projector"`
	Location           string `json:"location" binding:"required,notblank,max=255" example:"Seminar Hall"`
	SpecificItem       string `json:"specific_item" binding:"max=255" example:"Projector 2"`
	ProblemDescription string `json:"problem_description" binding:"required,notblank" example:"No display"`
	Suggestions        string `json:"suggestions" example:"Replace HDMI cable"`
}

// UpdateStatusRequest is the body of every status PATCH endpoint
type UpdateStatusRequest struct {
	Status models.ComplaintStatus `json:"status" binding:"required,complaint_status" example:"In Progress"`
}

// ApproveComplaintRequest is the body of PATCH /api/teachers/complaints/:id/approve
type ApproveComplaintRequest struct {
	ApprovalNote string `json:"approval_note" binding:"required,notblank" example:"valid"`
}

// ComplaintListQuery holds the list filters accepted in the query string
type ComplaintListQuery struct {
	Branch        string `form:"branch"`
	Status        string `form:"status"`
	ComplaintType string `form:"complaint_type"`
	Search        string `form:"search"`
}

// TeacherComplaintListQuery holds teacher complaint list filters
type TeacherComplaintListQuery struct {
	Status        string `form:"status"`
	ComplaintType string `form:"complaint_type"`
	Category      string `form:"category"`
	Search        string `form:"search"`
}

// ComplaintResponse is the wire form of a student complaint
type ComplaintResponse struct {
	ID                 int64   `json:"id" example:"12"`
	StudentID          int64   `json:"student_id" example:"1"`
	Name               string  `json:"name" example:"Asha Rao"`
	RollNumber         string  `json:"roll_number" example:"21CS001"`
	Branch             string  `json:"branch" example:"CSE"`
	ComplaintType      string  `json:"complaint_type" example:"Fans"`
	Location           string  `json:"location" example:"101"`
	SpecificItem       *string `json:"specific_item" example:"Fan 3"`
	ProblemDescription string  `json:"problem_description" example:"Not spinning"`
	Suggestions        *string `json:"suggestions"`
	Status             string  `json:"status" example:"Pending"`
	TeacherApproved    bool    `json:"teacher_approved" example:"false"`
	ApprovalNote       *string `json:"approval_note"`
	TeacherID          *int64  `json:"teacher_id"`
	TeacherName        *string `json:"teacher_name,omitempty"`
	TeacherDepartment  *string `json:"teacher_department,omitempty"`
	CreatedAt          string  `json:"created_at" example:"2024-03-09 08:35:07"`
	UpdatedAt          *string `json:"updated_at"`
}

// NewComplaintResponse maps a complaint model
func NewComplaintResponse(c *models.Complaint) *ComplaintResponse {
	return &ComplaintResponse{
		ID:                 c.ID,
		StudentID:          c.StudentID,
		Name:               c.Name,
		RollNumber:         c.RollNumber,
		Branch:             c.Branch,
		ComplaintType:      c.ComplaintType,
		Location:           c.Location,
		SpecificItem:       c.SpecificItem,
		ProblemDescription: c.ProblemDescription,
		Suggestions:        c.Suggestions,
		Status:             string(c.Status),
		TeacherApproved:    c.TeacherApproved,
		ApprovalNote:       c.ApprovalNote,
		TeacherID:          c.TeacherID,
		TeacherName:        c.TeacherName,
		TeacherDepartment:  c.TeacherDepartment,
		CreatedAt:          helpers.FormatTimestamp(c.CreatedAt),
		UpdatedAt:          helpers.FormatOptionalTimestamp(c.UpdatedAt),
	}
}

// NewComplaintResponses maps a slice, never returning nil
func NewComplaintResponses(list []*models.Complaint) []*ComplaintResponse {
	out := make([]*ComplaintResponse, 0, len(list))
	for _, c := range list {
		out = append(out, NewComplaintResponse(c))
	}
	return out
}

// TeacherComplaintResponse is the wire form of a teacher complaint
type TeacherComplaintResponse struct {
	ID                 int64   `json:"id" example:"4"`
	TeacherID          int64   `json:"teacher_id" example:"2"`
	Name               string  `json:"name" example:"R. Menon"`
	TeacherIDNumber    string  `json:"teacher_id_number" example:"T-104"`
	Department         string  `json:"department" example:"CSE"`
	ComplaintType      string  `json:"complaint_type" example:"Infrastructure - Projector"`
	Category           string  `json:"category" example:"Infrastructure"`
	SpecificType       string  `json:"specific_type" example:"Projector"`
	Location           string  `json:"location" example:"Seminar Hall"`
	SpecificItem       *string `json:"specific_item"`
	ProblemDescription string  `json:"problem_description" example:"No display"`
	Suggestions        *string `json:"suggestions"`
	Status             string  `json:"status" example:"Pending"`
	TeacherDesignation *string `json:"teacher_designation,omitempty"`
	CreatedAt          string  `json:"created_at" example:"2024-03-09 08:35:07"`
	UpdatedAt          *string `json:"updated_at"`
}

// NewTeacherComplaintResponse maps a teacher complaint model
func NewTeacherComplaintResponse(c *models.TeacherComplaint) *TeacherComplaintResponse {
	return &TeacherComplaintResponse{
		ID:                 c.ID,
		TeacherID:          c.TeacherID,
		Name:               c.Name,
		TeacherIDNumber:    c.TeacherIDNumber,
		Department:         c.Department,
		ComplaintType:      c.ComplaintType(),
		Category:           c.Category,
		SpecificType:       c.SpecificType,
		Location:           c.Location,
		SpecificItem:       c.SpecificItem,
		ProblemDescription: c.ProblemDescription,
		Suggestions:        c.Suggestions,
		Status:             string(c.Status),
		TeacherDesignation: c.TeacherDesignation,
		CreatedAt:          helpers.FormatTimestamp(c.CreatedAt),
		UpdatedAt:          helpers.FormatOptionalTimestamp(c.UpdatedAt),
	}
}

// NewTeacherComplaintResponses maps a slice, never returning nil
func NewTeacherComplaintResponses(list []*models.TeacherComplaint) []*TeacherComplaintResponse {
	out := make([]*TeacherComplaintResponse, 0, len(list))
	for _, c := range list {
		out = append(out, NewTeacherComplaintResponse(c))
	}
	return out
}

// StatusCount is one byStatus entry of the statistics response
type StatusCount struct {
	Status string `json:"status" example:"Pending"`
	Count  int64  `json:"count" example:"4"`
}

// TypeCount is one byType entry of the statistics response
type TypeCount struct {
	ComplaintType string `json:"complaint_type" example:"Fans"`
	Count         int64  `json:"count" example:"2"`
}

// BranchCount is one byBranch entry of the statistics response
type BranchCount struct {
	Branch string `json:"branch" example:"CSE"`
	Count  int64  `json:"count" example:"3"`
}

// StatisticsResponse is the body of GET /api/admin/statistics
type StatisticsResponse struct {
	Total    int64         `json:"total" example:"10"`
	ByStatus []StatusCount `json:"byStatus"`
	ByType   []TypeCount   `json:"byType"`
	ByBranch []BranchCount `json:"byBranch"`
	Recent   int64         `json:"recent" example:"3"`
}

// NewStatisticsResponse maps the aggregate model
func NewStatisticsResponse(s *models.ComplaintStatistics) *StatisticsResponse {
	resp := &StatisticsResponse{
		Total:    s.Total,
		Recent:   s.Recent,
		ByStatus: make([]StatusCount, 0, len(s.ByStatus)),
		ByType:   make([]TypeCount, 0, len(s.ByType)),
		ByBranch: make([]BranchCount, 0, len(s.ByBranch)),
	}
	for _, g := range s.ByStatus {
		resp.ByStatus = append(resp.ByStatus, StatusCount{Status: g.Key, Count: g.Count})
	}
	for _, g := range s.ByType {
		resp.ByType = append(resp.ByType, TypeCount{ComplaintType: g.Key, Count: g.Count})
	}
	for _, g := range s.ByBranch {
		resp.ByBranch = append(resp.ByBranch, BranchCount{Branch: g.Key, Count: g.Count})
	}
	return resp
}

// StatusUpdateResponse confirms a status change
type StatusUpdateResponse struct {
	ID     int64  `json:"id" example:"12"`
	Status string `json:"status" example:"Resolved"`
}

// ApprovalResponse confirms a teacher approval
type ApprovalResponse struct {
	ID              int64  `json:"id" example:"12"`
	TeacherApproved bool   `json:"teacher_approved" example:"true"`
	ApprovalNote    string `json:"approval_note" example:"valid"`
	TeacherID       int64  `json:"teacher_id" example:"2"`
}
