package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/services"
	"github.com/akhilduddi/college-complaints-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	msgSubmitFailed     = "Failed to submit complaint. Please try again later."
	msgFetchFailed      = "Failed to fetch complaints. Please try again later."
	msgUpdateFailed     = "Failed to update complaint. Please try again later."
	msgStatisticsFailed = "Failed to fetch statistics. Please try again later."
	msgExportFailed     = "Failed to export complaints. Please try again later."
	msgStatusUpdated    = "Complaint status updated successfully"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ComplaintController handles the student complaint workflow endpoints
type ComplaintController struct {
	complaintService services.ComplaintService
	exportService    services.ExportService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService, exportService services.ExportService) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		exportService:    exportService,
	}
}

func complaintFilter(q dto.ComplaintListQuery) repositories.ComplaintFilter {
	return repositories.ComplaintFilter{
		Branch:        q.Branch,
		Status:        q.Status,
		ComplaintType: q.ComplaintType,
		Search:        q.Search,
	}
}

// SubmitComplaint handles complaint submission by a student
// @Summary Submit a complaint
// @Description Files a complaint for the authenticated student. Name, roll number and branch are taken from the account.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateComplaintRequest true "Complaint details"
// @Success 201 {object} dto.APIResponse{data=dto.ComplaintResponse} "Complaint submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Required fields are missing"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not a student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints [post]
func (c *ComplaintController) SubmitComplaint(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.CreateComplaintRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.Submit(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgSubmitFailed)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Complaint submitted successfully", dto.NewComplaintResponse(complaint)))
}

// ListMyComplaints lists the authenticated student's complaints
// @Summary List own complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplaintResponse} "Complaints, newest first"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not a student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints [get]
func (c *ComplaintController) ListMyComplaints(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	list, err := c.complaintService.ListForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgFetchFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponses(list)))
}

// ListByRollNumber lists the complaints filed under a roll number
// @Summary List complaints by roll number
// @Description Unauthenticated lookup of every complaint filed under a roll number.
// @Tags complaints
// @Produce json
// @Param roll_number path string true "Student roll number"
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplaintResponse} "Complaints, newest first"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints/by-roll-number/{roll_number} [get]
func (c *ComplaintController) ListByRollNumber(ctx *gin.Context) {
	list, err := c.complaintService.ListByRollNumber(ctx.Request.Context(), ctx.Param("roll_number"))
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgFetchFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponses(list)))
}

// GetMyComplaint returns one complaint owned by the authenticated student
// @Summary Get own complaint
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse} "Complaint"
// @Failure 400 {object} dto.ErrorResponse "Invalid complaint ID"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not a student"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints/{id} [get]
func (c *ComplaintController) GetMyComplaint(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "complaint")
	if !ok {
		return
	}

	complaint, err := c.complaintService.GetForStudent(ctx.Request.Context(), id, studentID)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgFetchFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponse(complaint)))
}

// UpdateMyComplaintStatus changes the status of a complaint the student owns
// @Summary Update own complaint status
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStatusRequest true "New status: Pending, In Progress or Resolved"
// @Success 200 {object} dto.APIResponse{data=dto.StatusUpdateResponse} "Complaint status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not a student"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found or not owned by student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints/{id}/status [patch]
func (c *ComplaintController) UpdateMyComplaintStatus(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "complaint")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.complaintService.UpdateStatusForStudent(ctx.Request.Context(), id, studentID, req.Status); err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgUpdateFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(msgStatusUpdated, dto.StatusUpdateResponse{ID: id, Status: string(req.Status)}))
}

// ListComplaints lists every student complaint for teachers and admins
// @Summary List all complaints
// @Description Filters are AND-combined. search matches name, roll number, description and location case-insensitively.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param branch query string false "Exact branch"
// @Param status query string false "Exact status"
// @Param complaint_type query string false "Exact complaint type"
// @Param search query string false "Case-insensitive text search"
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplaintResponse} "Complaints, newest first"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or wrong role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/complaints [get]
// @Router /admin/complaints [get]
func (c *ComplaintController) ListComplaints(ctx *gin.Context) {
	var q dto.ComplaintListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	list, err := c.complaintService.List(ctx.Request.Context(), complaintFilter(q))
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgFetchFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponses(list)))
}

// ApproveComplaint records a teacher's review of a complaint
// @Summary Approve a complaint
// @Description Sets teacher_approved, the approval note and the approving teacher. Approving again overwrites the note.
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID" Format(int64) minimum(1)
// @Param request body dto.ApproveComplaintRequest true "Approval note"
// @Success 200 {object} dto.APIResponse{data=dto.ApprovalResponse} "Complaint approved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing approval note"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not a teacher"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/complaints/{id}/approve [patch]
func (c *ComplaintController) ApproveComplaint(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "complaint")
	if !ok {
		return
	}
	var req dto.ApproveComplaintRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.complaintService.Approve(ctx.Request.Context(), id, teacherID, req.ApprovalNote); err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgUpdateFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Complaint approved successfully", dto.ApprovalResponse{
		ID:              id,
		TeacherApproved: true,
		ApprovalNote:    strings.TrimSpace(req.ApprovalNote),
		TeacherID:       teacherID,
	}))
}

// ListTeacherApproved lists complaints a teacher has approved, with the approver
// @Summary List teacher-approved complaints
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param branch query string false "Exact branch"
// @Param status query string false "Exact status"
// @Param complaint_type query string false "Exact complaint type"
// @Param search query string false "Case-insensitive text search"
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplaintResponse} "Approved complaints with teacher_name and teacher_department"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/teacher-approved-complaints [get]
func (c *ComplaintController) ListTeacherApproved(ctx *gin.Context) {
	var q dto.ComplaintListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	list, err := c.complaintService.ListTeacherApproved(ctx.Request.Context(), complaintFilter(q))
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgFetchFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponses(list)))
}

// UpdateComplaintStatus changes the status of any complaint
// @Summary Update complaint status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStatusRequest true "New status: Pending, In Progress or Resolved"
// @Success 200 {object} dto.APIResponse{data=dto.StatusUpdateResponse} "Complaint status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not an admin"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/complaints/{id}/status [patch]
func (c *ComplaintController) UpdateComplaintStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "complaint")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.complaintService.UpdateStatus(ctx.Request.Context(), id, req.Status); err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgUpdateFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(msgStatusUpdated, dto.StatusUpdateResponse{ID: id, Status: string(req.Status)}))
}

// GetStatistics returns aggregate complaint counts
// @Summary Complaint statistics
// @Description Total, counts by status, type and branch, and complaints filed in the last 7 days.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatisticsResponse} "Statistics"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/statistics [get]
func (c *ComplaintController) GetStatistics(ctx *gin.Context) {
	stats, err := c.complaintService.Statistics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgStatisticsFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStatisticsResponse(stats)))
}

// ExportComplaints downloads the filtered complaint list as a spreadsheet
// @Summary Export complaints
// @Description Same filters as the admin complaint list, returned as an .xlsx workbook.
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param branch query string false "Exact branch"
// @Param status query string false "Exact status"
// @Param complaint_type query string false "Exact complaint type"
// @Param search query string false "Case-insensitive text search"
// @Success 200 {file} file "Excel workbook"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/complaints/export [get]
func (c *ComplaintController) ExportComplaints(ctx *gin.Context) {
	var q dto.ComplaintListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	buf, filename, err := c.exportService.ExportComplaints(ctx.Request.Context(), complaintFilter(q))
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgExportFailed)
		return
	}

	ctx.Header("Content-Description", "File Transfer")
	ctx.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
