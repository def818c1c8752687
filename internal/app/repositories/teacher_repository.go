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

var teacherColumns = []string{"id", "teacher_id", "name", "email", "password", "department", "designation", "created_at"}

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a teacher and fills in its ID and CreatedAt
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Insert("teachers").
		Columns("teacher_id", "name", "email", "password", "department", "designation").
		Values(teacher.TeacherID, teacher.Name, teacher.Email, teacher.Password, teacher.Department, teacher.Designation).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create teacher SQL")
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&teacher.ID, &teacher.CreatedAt)
	if err != nil {
		if conflict := mapDuplicateError(err, teacherKeys); conflict != nil {
			logger.Warn().Str("teacherID", teacher.TeacherID).Msg("Attempted to create teacher with duplicate key")
			return conflict
		}
		logger.Error().Err(err).Str("teacherID", teacher.TeacherID).Msg("Error executing create teacher query")
		return fmt.Errorf("error creating teacher: %w", err)
	}

	logger.Info().Int64("id", teacher.ID).Str("teacherID", teacher.TeacherID).Msg("Teacher created successfully")
	return nil
}

// GetByID retrieves a teacher by primary key
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByTeacherID retrieves a teacher by their institutional id
func (r *TeacherRepository) GetByTeacherID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	return r.getOne(ctx, squirrel.Eq{"teacher_id": teacherID})
}

// EnsureUnique checks teacher id then email
func (r *TeacherRepository) EnsureUnique(ctx context.Context, teacherID, email string) error {
	return ensureUnique(ctx, r.db, r.sb, "teachers", teacherKeys, teacherID, email)
}

func (r *TeacherRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get teacher SQL")
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	var t models.Teacher
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&t.ID, &t.TeacherID, &t.Name, &t.Email, &t.Password, &t.Department, &t.Designation, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Interface("where", where).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher: %w", err)
	}

	return &t, nil
}
