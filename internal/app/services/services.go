package services

import (
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// Services defined in this package:
// - AuthService: registration, login and profiles for students, teachers and admins
// - ComplaintService: the student complaint workflow (submit, approve, resolve)
// - TeacherComplaintService: complaints filed by teachers
// - ResourceService: inventory resources
// - ExportService: spreadsheet export of complaint listings
type Services struct {
	Auth              *AuthService
	Complaints        ComplaintService
	TeacherComplaints TeacherComplaintService
	Resources         ResourceService
	Export            ExportService
}

// NewServices wires every service on top of repos
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, adminRegistrationKey string, logger zerolog.Logger) *Services {
	return &Services{
		Auth:              NewAuthService(repos, jwtService, adminRegistrationKey, logger.With().Str("service", "auth").Logger()),
		Complaints:        NewComplaintService(repos, logger.With().Str("service", "complaints").Logger()),
		TeacherComplaints: NewTeacherComplaintService(repos, logger.With().Str("service", "teacher_complaints").Logger()),
		Resources:         NewResourceService(repos.Resources, logger.With().Str("service", "resources").Logger()),
		Export:            NewExportService(repos.Complaints, logger.With().Str("service", "export").Logger()),
	}
}
