package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// Admin registration gate errors
var (
	ErrAdminRegistrationDisabled = apperrors.NewForbiddenError("Admin registration is disabled")
	ErrInvalidRegistrationKey    = apperrors.NewForbiddenError("Invalid admin registration key")
)

// AuthService handles registration, login and profile lookups for all three
// account kinds
type AuthService struct {
	students        repositories.IStudentRepository
	teachers        repositories.ITeacherRepository
	admins          repositories.IAdminRepository
	jwtService      *auth.JWTService
	registrationKey string
	logger          zerolog.Logger
}

// NewAuthService creates a new AuthService. An empty registrationKey disables
// admin self-registration.
func NewAuthService(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	registrationKey string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		students:        repos.Students,
		teachers:        repos.Teachers,
		admins:          repos.Admins,
		jwtService:      jwtService,
		registrationKey: registrationKey,
		logger:          logger,
	}
}

// validatePassword enforces the minimum password length
func (s *AuthService) validatePassword(password string) error {
	if utf8.RuneCountInString(password) < auth.MinPasswordLength {
		return apperrors.NewValidationError("password",
			fmt.Sprintf("Password must be at least %d characters long", auth.MinPasswordLength))
	}
	return nil
}

func (s *AuthService) hashPassword(password string) (string, error) {
	if err := s.validatePassword(password); err != nil {
		return "", err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}

// RegisterStudent creates a student account
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.StudentRegisterRequest) (*dto.StudentResponse, error) {
	student := &models.Student{
		RollNumber: strings.TrimSpace(req.RollNumber),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Branch:     strings.TrimSpace(req.Branch),
		Year:       req.Year,
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.students.EnsureUnique(ctx, student.RollNumber, student.Email); err != nil {
		return nil, err
	}
	student.Password = hash

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Str("rollNumber", student.RollNumber).Msg("Student registered")
	return dto.NewStudentResponse(student), nil
}

// RegisterTeacher creates a teacher account
func (s *AuthService) RegisterTeacher(ctx context.Context, req *dto.TeacherRegisterRequest) (*dto.TeacherResponse, error) {
	teacher := &models.Teacher{
		TeacherID:   strings.TrimSpace(req.TeacherID),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Department:  strings.TrimSpace(req.Department),
		Designation: strings.TrimSpace(req.Designation),
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.teachers.EnsureUnique(ctx, teacher.TeacherID, teacher.Email); err != nil {
		return nil, err
	}
	teacher.Password = hash

	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("teacherId", teacher.ID).Str("teacherIdNumber", teacher.TeacherID).Msg("Teacher registered")
	return dto.NewTeacherResponse(teacher), nil
}

// RegisterAdmin creates an admin account when key matches the configured
// registration key
func (s *AuthService) RegisterAdmin(ctx context.Context, key string, req *dto.AdminRegisterRequest) (*dto.AdminResponse, error) {
	if s.registrationKey == "" {
		return nil, ErrAdminRegistrationDisabled
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.registrationKey)) != 1 {
		s.logger.Warn().Str("username", req.Username).Msg("Admin registration attempted with a wrong key")
		return nil, ErrInvalidRegistrationKey
	}
	return s.createAdmin(ctx, req)
}

// EnsureAdmin creates the admin described by req unless the username is
// already taken. It reports whether an account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, req *dto.AdminRegisterRequest) (bool, error) {
	_, err := s.admins.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrAdminNotFound) {
		return false, fmt.Errorf("error checking admin account: %w", err)
	}
	if _, err := s.createAdmin(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) createAdmin(ctx context.Context, req *dto.AdminRegisterRequest) (*dto.AdminResponse, error) {
	admin := &models.Admin{
		Username: strings.TrimSpace(req.Username),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.admins.EnsureUnique(ctx, admin.Username, admin.Email); err != nil {
		return nil, err
	}
	admin.Password = hash

	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminId", admin.ID).Str("username", admin.Username).Msg("Admin registered")
	return dto.NewAdminResponse(admin), nil
}

// LoginStudent authenticates a student by roll number
func (s *AuthService) LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (*dto.LoginResponse, error) {
	student, err := s.students.GetByRollNumber(ctx, strings.TrimSpace(req.RollNumber))
	if err != nil {
		return nil, s.failedLookup(err, apperrors.ErrStudentNotFound, req.Password)
	}
	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(auth.Subject{
		ID:         student.ID,
		Identifier: student.RollNumber,
		Name:       student.Name,
		Role:       models.RoleStudent,
	}, dto.NewStudentResponse(student))
}

// LoginTeacher authenticates a teacher by teacher ID
func (s *AuthService) LoginTeacher(ctx context.Context, req *dto.TeacherLoginRequest) (*dto.LoginResponse, error) {
	teacher, err := s.teachers.GetByTeacherID(ctx, strings.TrimSpace(req.TeacherID))
	if err != nil {
		return nil, s.failedLookup(err, apperrors.ErrTeacherNotFound, req.Password)
	}
	if !auth.CheckPassword(teacher.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(auth.Subject{
		ID:         teacher.ID,
		Identifier: teacher.TeacherID,
		Name:       teacher.Name,
		Role:       models.RoleTeacher,
	}, dto.NewTeacherResponse(teacher))
}

// LoginAdmin authenticates an admin by username
func (s *AuthService) LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.admins.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, s.failedLookup(err, apperrors.ErrAdminNotFound, req.Password)
	}
	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(auth.Subject{
		ID:         admin.ID,
		Identifier: admin.Username,
		Name:       admin.Name,
		Role:       models.RoleAdmin,
	}, dto.NewAdminResponse(admin))
}

// failedLookup turns a missing account into the same error a wrong password
// produces, after spending the same bcrypt work.
func (s *AuthService) failedLookup(err, notFound error, password string) error {
	if errors.Is(err, notFound) {
		auth.BurnPasswordCheck(password)
		return apperrors.ErrInvalidCredentials
	}
	return fmt.Errorf("error fetching account: %w", err)
}

func (s *AuthService) issueToken(sub auth.Subject, user interface{}) (*dto.LoginResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(sub)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	s.logger.Info().Int64("accountId", sub.ID).Str("role", string(sub.Role)).Msg("Login successful")
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		User:      user,
	}, nil
}

// GetStudentProfile returns the public projection of a student account
func (s *AuthService) GetStudentProfile(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponse(student), nil
}

// GetTeacherProfile returns the public projection of a teacher account
func (s *AuthService) GetTeacherProfile(ctx context.Context, id int64) (*dto.TeacherResponse, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewTeacherResponse(teacher), nil
}

// GetAdminProfile returns the public projection of an admin account
func (s *AuthService) GetAdminProfile(ctx context.Context, id int64) (*dto.AdminResponse, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewAdminResponse(admin), nil
}
