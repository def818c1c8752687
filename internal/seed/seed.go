package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/config"
)

// AdminSeeder creates an admin account unless the username already exists
type AdminSeeder interface {
	EnsureAdmin(ctx context.Context, req *dto.AdminRegisterRequest) (bool, error)
}

// CreateDefaultData creates the configured default admin if it doesn't exist.
// Nothing is seeded when no default username is configured or in production,
// where the first admin goes through the registration key.
func CreateDefaultData(ctx context.Context, cfg *config.Config, admins AdminSeeder, lgr zerolog.Logger) error {
	if cfg.Admin.DefaultUsername == "" {
		lgr.Info().Msg("No default admin configured, skipping seed")
		return nil
	}
	if cfg.IsProduction() {
		lgr.Warn().Str("mode", cfg.Server.Mode).Msg("Default admin seeding is disabled in production, skipping seed")
		return nil
	}

	lgr.Info().Str("username", cfg.Admin.DefaultUsername).Msg("Checking/Creating default admin...")

	name := cfg.Admin.DefaultName
	if name == "" {
		name = "Administrator"
	}
	email := cfg.Admin.DefaultEmail
	if email == "" {
		email = cfg.Admin.DefaultUsername + "@localhost"
	}

	created, err := admins.EnsureAdmin(ctx, &dto.AdminRegisterRequest{
		Username: cfg.Admin.DefaultUsername,
		Name:     name,
		Email:    email,
		Password: cfg.Admin.DefaultPassword,
	})
	if err != nil {
		return fmt.Errorf("error creating default admin: %w", err)
	}

	if created {
		lgr.Warn().Str("username", cfg.Admin.DefaultUsername).Msg("Default admin created, change its password")
	} else {
		lgr.Info().Str("username", cfg.Admin.DefaultUsername).Msg("Default admin already exists")
	}
	return nil
}
