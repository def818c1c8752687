package routes

import (
	"net/http"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/controllers"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	complaintController *controllers.ComplaintController,
	teacherComplaintController *controllers.TeacherComplaintController,
	resourceController *controllers.ResourceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	studentOnly := []gin.HandlerFunc{authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleStudent)}
	teacherOnly := []gin.HandlerFunc{authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleTeacher)}
	adminOnly := []gin.HandlerFunc{authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin)}

	// --- Students ---
	students := api.Group("/students")
	{
		students.POST("/register", authController.RegisterStudent)
		students.POST("/login", authController.LoginStudent)

		studentsProtected := students.Group("", studentOnly...)
		studentsProtected.GET("/me", authController.StudentProfile)
	}

	// --- Student complaints ---
	complaints := api.Group("/complaints")
	{
		// Public lookup by roll number
		complaints.GET("/by-roll-number/:roll_number", complaintController.ListByRollNumber)

		complaintsProtected := complaints.Group("", studentOnly...)
		{
			complaintsProtected.POST("", complaintController.SubmitComplaint)
			complaintsProtected.GET("", complaintController.ListMyComplaints)
			complaintsProtected.GET("/:id", complaintController.GetMyComplaint)
			complaintsProtected.PATCH("/:id/status", complaintController.UpdateMyComplaintStatus)
		}
	}

	// --- Teachers ---
	teachers := api.Group("/teachers")
	{
		teachers.POST("/register", authController.RegisterTeacher)
		teachers.POST("/login", authController.LoginTeacher)

		teachersProtected := teachers.Group("", teacherOnly...)
		{
			teachersProtected.GET("/me", authController.TeacherProfile)

			// Student complaints awaiting review
			teachersProtected.GET("/complaints", complaintController.ListComplaints)
			teachersProtected.PATCH("/complaints/:id/approve", complaintController.ApproveComplaint)

			// Complaints filed by the teacher
			teachersProtected.POST("/complaints", teacherComplaintController.SubmitTeacherComplaint)
			teachersProtected.GET("/my-complaints", teacherComplaintController.ListMyTeacherComplaints)
		}
	}

	// --- Admin ---
	admin := api.Group("/admin")
	{
		admin.POST("/register", authController.RegisterAdmin)
		admin.POST("/login", authController.LoginAdmin)

		adminProtected := admin.Group("", adminOnly...)
		{
			adminProtected.GET("/me", authController.AdminProfile)

			adminProtected.GET("/complaints", complaintController.ListComplaints)
			adminProtected.GET("/complaints/export", complaintController.ExportComplaints)
			adminProtected.PATCH("/complaints/:id/status", complaintController.UpdateComplaintStatus)
			adminProtected.GET("/teacher-approved-complaints", complaintController.ListTeacherApproved)
			adminProtected.GET("/statistics", complaintController.GetStatistics)

			adminProtected.GET("/teacher-complaints", teacherComplaintController.ListTeacherComplaints)
			adminProtected.PATCH("/teacher-complaints/:id/status", teacherComplaintController.UpdateTeacherComplaintStatus)
		}
	}

	// --- Resources ---
	resources := api.Group("/resources", authMiddleware.JWTAuth())
	{
		resources.GET("", resourceController.ListResources)
		resources.POST("", resourceController.CreateResource)
		resources.GET("/:id", resourceController.GetResource)

		resourcesAdmin := resources.Group("", authMiddleware.RoleRequired(models.RoleAdmin))
		{
			resourcesAdmin.PUT("/:id", resourceController.UpdateResource)
			resourcesAdmin.DELETE("/:id", resourceController.DeleteResource)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
