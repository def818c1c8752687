package controllers

import (
	"net/http"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/services"
	"github.com/akhilduddi/college-complaints-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderAdminRegistrationKey carries the shared secret that unlocks admin registration
const HeaderAdminRegistrationKey = "X-Admin-Registration-Key"

const (
	msgRegistrationFailed = "Registration failed. Please try again later."
	msgLoginFailed        = "Login failed. Please try again later."
	msgProfileFailed      = "Failed to fetch profile. Please try again later."
)

// AuthController handles registration, login and profile endpoints
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// RegisterStudent handles student registration
// @Summary Register a student
// @Description Creates a student account. Roll number and email must be unique.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRegisterRequest true "Student registration data"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Roll number or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.StudentRegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgRegistrationFailed)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Student registered successfully", resp))
}

// LoginStudent handles student login
// @Summary Student login
// @Description Authenticates a student by roll number and returns a bearer token
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Student credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.LoginStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.loginFailed(ctx, "student", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Login successful", resp))
}

func (c *AuthController) loginFailed(ctx *gin.Context, role string, err error) {
	c.logger.Debug().Err(err).Str("role", role).Str("ip", ctx.ClientIP()).Msg("Login rejected")
	middleware.HandleAPIErrorWithFallback(ctx, err, msgLoginFailed)
}

// StudentProfile returns the authenticated student's account
// @Summary Current student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student profile"
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not a student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/me [get]
func (c *AuthController) StudentProfile(ctx *gin.Context) {
	id, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.authService.GetStudentProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgProfileFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// RegisterTeacher handles teacher registration
// @Summary Register a teacher
// @Description Creates a teacher account. Teacher ID and email must be unique.
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.TeacherRegisterRequest true "Teacher registration data"
// @Success 201 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Teacher ID or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/register [post]
func (c *AuthController) RegisterTeacher(ctx *gin.Context) {
	var req dto.TeacherRegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.RegisterTeacher(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgRegistrationFailed)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Teacher registered successfully", resp))
}

// LoginTeacher handles teacher login
// @Summary Teacher login
// @Description Authenticates a teacher by teacher ID and returns a bearer token
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.TeacherLoginRequest true "Teacher credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/login [post]
func (c *AuthController) LoginTeacher(ctx *gin.Context) {
	var req dto.TeacherLoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.LoginTeacher(ctx.Request.Context(), &req)
	if err != nil {
		c.loginFailed(ctx, "teacher", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Login successful", resp))
}

// TeacherProfile returns the authenticated teacher's account
// @Summary Current teacher profile
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TeacherResponse} "Teacher profile"
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not a teacher"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/me [get]
func (c *AuthController) TeacherProfile(ctx *gin.Context) {
	id, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.authService.GetTeacherProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgProfileFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// RegisterAdmin handles admin registration
// @Summary Register an admin
// @Description Creates an admin account. Requires the configured registration key; disabled when none is configured.
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Registration-Key header string true "Admin registration key"
// @Param request body dto.AdminRegisterRequest true "Admin registration data"
// @Success 201 {object} dto.APIResponse{data=dto.AdminResponse} "Admin registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Registration disabled or wrong key"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/register [post]
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.AdminRegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.RegisterAdmin(ctx.Request.Context(), ctx.GetHeader(HeaderAdminRegistrationKey), &req)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgRegistrationFailed)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Admin registered successfully", resp))
}

// LoginAdmin handles admin login
// @Summary Admin login
// @Description Authenticates an admin by username and returns a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/login [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.LoginAdmin(ctx.Request.Context(), &req)
	if err != nil {
		c.loginFailed(ctx, "admin", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Login successful", resp))
}

// AdminProfile returns the authenticated admin's account
// @Summary Current admin profile
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminResponse} "Admin profile"
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid token or not an admin"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admin/me [get]
func (c *AuthController) AdminProfile(ctx *gin.Context) {
	id, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.authService.GetAdminProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, msgProfileFailed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
