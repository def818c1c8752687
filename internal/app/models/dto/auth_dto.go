package dto

import (
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/helpers"
)

// StudentRegisterRequest is the body of POST /api/students/register
type StudentRegisterRequest struct {
	RollNumber string `json:"roll_number" binding:"required,notblank,max=50" example:"21CS001"`
	Name       string `json:"name" binding:"required,notblank,max=255" example:"Asha Rao"`
	Email      string `json:"email" binding:"required,notblank,max=255" example:"asha@college.edu"`
	Password   string `json:"password" binding:"required,min=6,max=72" example:"secret1"`
	Branch     string `json:"branch" binding:"required,notblank,max=100" example:"CSE"`
	Year       int    `json:"year" binding:"required,min=1,max=10" example:"3"`
}

// TeacherRegisterRequest is the body of POST /api/teachers/register
type TeacherRegisterRequest struct {
	TeacherID   string `json:"teacher_id" binding:"required,notblank,max=50" example:"T-104"`
	Name        string `json:"name" binding:"required,notblank,max=255" example:"R. Menon"`
	Email       string `json:"email" binding:"required,notblank,max=255" example:"menon@college.edu"`
	Password    string `json:"password" binding:"required,min=6,max=72" example:"secret1"`
	Department  string `json:"department" binding:"required,notblank,max=100" example:"CSE"`
	Designation string `json:"designation" binding:"required,notblank,max=100" example:"Assistant Professor"`
}

// AdminRegisterRequest is the body of POST /api/admin/register
type AdminRegisterRequest struct {
	Username string `json:"username" binding:"required,notblank,max=100" example:"admin"`
	Name     string `json:"name" binding:"required,notblank,max=255" example:"Office Admin"`
	Email    string `json:"email" binding:"required,notblank,max=255" example:"admin@college.edu"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"secret1"`
}

// StudentLoginRequest is the body of POST /api/students/login
type StudentLoginRequest struct {
	RollNumber string `json:"roll_number" binding:"required" example:"21CS001"`
	Password   string `json:"password" binding:"required" example:"secret1"`
}

// TeacherLoginRequest is the body of POST /api/teachers/login
type TeacherLoginRequest struct {
	TeacherID string `json:"teacher_id" binding:"required" example:"T-104"`
	Password  string `json:"password" binding:"required" example:"secret1"`
}

// AdminLoginRequest is the body of POST /api/admin/login
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// LoginResponse carries the bearer token and the public account projection
type LoginResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type" example:"Bearer"`
	ExpiresIn int         `json:"expires_in" example:"86400"`
	User      interface{} `json:"user"`
}

// StudentResponse is the public projection of a student account
type StudentResponse struct {
	ID         int64  `json:"id" example:"1"`
	RollNumber string `json:"roll_number" example:"21CS001"`
	Name       string `json:"name" example:"Asha Rao"`
	Email      string `json:"email" example:"asha@college.edu"`
	Branch     string `json:"branch" example:"CSE"`
	Year       int    `json:"year" example:"3"`
	CreatedAt  string `json:"created_at" example:"2024-03-09 08:35:07"`
}

// TeacherResponse is the public projection of a teacher account
type TeacherResponse struct {
	ID          int64  `json:"id" example:"1"`
	TeacherID   string `json:"teacher_id" example:"T-104"`
	Name        string `json:"name" example:"R. Menon"`
	Email       string `json:"email" example:"menon@college.edu"`
	Department  string `json:"department" example:"CSE"`
	Designation string `json:"designation" example:"Assistant Professor"`
	CreatedAt   string `json:"created_at" example:"2024-03-09 08:35:07"`
}

// AdminResponse is the public projection of an admin account
type AdminResponse struct {
	ID        int64  `json:"id" example:"1"`
	Username  string `json:"username" example:"admin"`
	Name      string `json:"name" example:"Office Admin"`
	Email     string `json:"email" example:"admin@college.edu"`
	IsAdmin   bool   `json:"isAdmin" example:"true"`
	CreatedAt string `json:"created_at" example:"2024-03-09 08:35:07"`
}

// NewStudentResponse maps a student model, dropping the password hash
func NewStudentResponse(s *models.Student) *StudentResponse {
	return &StudentResponse{
		ID:         s.ID,
		RollNumber: s.RollNumber,
		Name:       s.Name,
		Email:      s.Email,
		Branch:     s.Branch,
		Year:       s.Year,
		CreatedAt:  helpers.FormatTimestamp(s.CreatedAt),
	}
}

// NewTeacherResponse maps a teacher model, dropping the password hash
func NewTeacherResponse(t *models.Teacher) *TeacherResponse {
	return &TeacherResponse{
		ID:          t.ID,
		TeacherID:   t.TeacherID,
		Name:        t.Name,
		Email:       t.Email,
		Department:  t.Department,
		Designation: t.Designation,
		CreatedAt:   helpers.FormatTimestamp(t.CreatedAt),
	}
}

// NewAdminResponse maps an admin model, dropping the password hash
func NewAdminResponse(a *models.Admin) *AdminResponse {
	return &AdminResponse{
		ID:        a.ID,
		Username:  a.Username,
		Name:      a.Name,
		Email:     a.Email,
		IsAdmin:   true,
		CreatedAt: helpers.FormatTimestamp(a.CreatedAt),
	}
}
