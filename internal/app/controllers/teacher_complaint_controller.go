package controllers

import (
	"net/http"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/services"
	"github.com/akhilduddi/college-complaints-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
)

const msgFetchTeacherComplaintsFailed = "Failed to fetch teacher complaints. Please try again later."

// TeacherComplaintController handles complaints filed by teachers
type TeacherComplaintController struct {
	teacherComplaintService services.TeacherComplaintService
}

// NewTeacherComplaintController creates a new TeacherComplaintController
func NewTeacherComplaintController(teacherComplaintService services.TeacherComplaintService) *TeacherComplaintController {
	return &TeacherComplaintController{
		teacherComplaintService: teacherComplaintService,
	}
}

func teacherComplaintFilter(q dto.TeacherComplaintListQuery) repositories.TeacherComplaintFilter {
	return repositories.TeacherComplaintFilter{
		Status:        q.Status,
		ComplaintType: q.ComplaintType,
		Category:      q.Category,
		Search:        q.Search,
	}
}

// SubmitTeacherComplaint handles complaint submission by a teacher
// @Summary Submit a teacher complaint
// @Description Accepts either category with specific_type, or complaint_type in "Category - Specific" form.
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherComplaintRequest true "Complaint details"
// @Success 201 {object} dto.APIResponse{data=dto.TeacherComplaintResponse} "Complaint submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Complaint type, location and problem description are required"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not a teacher"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/complaints [post]
func (c *TeacherComplaintController) SubmitTeacherComplaint(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.CreateTeacherComplaintRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	complaint, err := c.teacherComplaintService.Submit(ctx.Request.Context(), teacherID, &req)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgSubmitFailed)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Complaint submitted successfully", dto.NewTeacherComplaintResponse(complaint)))
}

// ListMyTeacherComplaints lists the authenticated teacher's own complaints
// @Summary List own teacher complaints
// @Description search matches description, location and specific item.
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Exact status"
// @Param complaint_type query string false "Composed type, e.g. Infrastructure - Projector"
// @Param category query string false "Exact category"
// @Param search query string false "Case-insensitive text search"
// @Success 200 {object} dto.APIResponse{data=[]dto.TeacherComplaintResponse} "Complaints, newest first"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not a teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/my-complaints [get]
func (c *TeacherComplaintController) ListMyTeacherComplaints(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var q dto.TeacherComplaintListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	list, err := c.teacherComplaintService.ListForTeacher(ctx.Request.Context(), teacherID, teacherComplaintFilter(q))
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgFetchTeacherComplaintsFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewTeacherComplaintResponses(list)))
}

// ListTeacherComplaints lists every teacher complaint for admins
// @Summary List all teacher complaints
// @Description search matches teacher name, teacher id number, description and location.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Exact status"
// @Param complaint_type query string false "Composed type, e.g. Infrastructure - Projector"
// @Param category query string false "Exact category"
// @Param search query string false "Case-insensitive text search"
// @Success 200 {object} dto.APIResponse{data=[]dto.TeacherComplaintResponse} "Complaints with teacher_designation, newest first"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/teacher-complaints [get]
func (c *TeacherComplaintController) ListTeacherComplaints(ctx *gin.Context) {
	var q dto.TeacherComplaintListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	list, err := c.teacherComplaintService.List(ctx.Request.Context(), teacherComplaintFilter(q))
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgFetchTeacherComplaintsFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewTeacherComplaintResponses(list)))
}

// UpdateTeacherComplaintStatus changes the status of a teacher complaint
// @Summary Update teacher complaint status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher complaint ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStatusRequest true "New status: Pending, In Progress or Resolved"
// @Success 200 {object} dto.APIResponse{data=dto.StatusUpdateResponse} "Complaint status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not an admin"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/teacher-complaints/{id}/status [patch]
func (c *TeacherComplaintController) UpdateTeacherComplaintStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "complaint")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.teacherComplaintService.UpdateStatus(ctx.Request.Context(), id, req.Status); err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgUpdateFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(msgStatusUpdated, dto.StatusUpdateResponse{ID: id, Status: string(req.Status)}))
}
