package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an admin and fills in its ID and CreatedAt
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	sql, args, err := r.sb.Insert("admins").
		Columns("username", "name", "email", "password").
		Values(admin.Username, admin.Name, admin.Email, admin.Password).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admin SQL")
		return fmt.Errorf("failed to build create admin query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.CreatedAt); err != nil {
		if conflict := mapDuplicateError(err, adminKeys); conflict != nil {
			return conflict
		}
		logger.Error().Err(err).Str("username", admin.Username).Msg("Error executing create admin query")
		return fmt.Errorf("error creating admin: %w", err)
	}

	logger.Info().Int64("id", admin.ID).Str("username", admin.Username).Msg("Admin created successfully")
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

// EnsureUnique checks username then email
func (r *AdminRepository) EnsureUnique(ctx context.Context, username, email string) error {
	return ensureUnique(ctx, r.db, r.sb, "admins", adminKeys, username, email)
}

func (r *AdminRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Admin, error) {
	sql, args, err := r.sb.Select("id", "username", "name", "email", "password", "created_at").
		From("admins").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin SQL")
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	var a models.Admin
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.Username, &a.Name, &a.Email, &a.Password, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin: %w", err)
	}

	return &a, nil
}
