package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var teacherComplaintColumns = []string{
	"tc.id", "tc.teacher_id", "tc.name", "tc.teacher_id_number", "tc.department",
	"tc.category", "tc.specific_type", "tc.location", "tc.specific_item",
	"tc.problem_description", "tc.suggestions", "tc.status", "tc.created_at", "tc.updated_at",
}

// Columns searched by each view of the teacher complaint table
var (
	ownTeacherComplaintSearch   = []string{"problem_description", "location", "specific_item"}
	adminTeacherComplaintSearch = []string{"name", "teacher_id_number", "problem_description", "location"}
)

// TeacherComplaintRepository handles teacher complaint database operations
type TeacherComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherComplaintRepository creates a new TeacherComplaintRepository
func NewTeacherComplaintRepository(db *pgxpool.Pool) *TeacherComplaintRepository {
	return &TeacherComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a teacher complaint in the Pending state
func (r *TeacherComplaintRepository) Create(ctx context.Context, c *models.TeacherComplaint) error {
	sql, args, err := r.sb.Insert("teacher_complaints").
		Columns("teacher_id", "name", "teacher_id_number", "department", "category", "specific_type",
			"location", "specific_item", "problem_description", "suggestions", "status").
		Values(c.TeacherID, c.Name, c.TeacherIDNumber, c.Department, c.Category, c.SpecificType,
			c.Location, c.SpecificItem, c.ProblemDescription, c.Suggestions, string(models.StatusPending)).
		Suffix("RETURNING id, status, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create teacher complaint SQL")
		return fmt.Errorf("failed to build create teacher complaint query: %w", err)
	}

	var status string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &status, &c.CreatedAt); err != nil {
		logger.Error().Err(err).Int64("teacherID", c.TeacherID).Msg("Error executing create teacher complaint query")
		return fmt.Errorf("error creating teacher complaint: %w", err)
	}
	c.Status = models.ComplaintStatus(status)

	logger.Info().Int64("complaintID", c.ID).Int64("teacherID", c.TeacherID).Msg("Teacher complaint created")
	return nil
}

// ListByTeacher returns one teacher's complaints
func (r *TeacherComplaintRepository) ListByTeacher(ctx context.Context, teacherID int64, filter TeacherComplaintFilter) ([]*models.TeacherComplaint, error) {
	return r.list(ctx, OwnTeacherComplaintsQuery(r.sb, teacherID, filter), false)
}

// List returns all teacher complaints joined with the filing teacher
func (r *TeacherComplaintRepository) List(ctx context.Context, filter TeacherComplaintFilter) ([]*models.TeacherComplaint, error) {
	return r.list(ctx, AdminTeacherComplaintsQuery(r.sb, filter), true)
}

// OwnTeacherComplaintsQuery builds the teacher's own listing
func OwnTeacherComplaintsQuery(sb squirrel.StatementBuilderType, teacherID int64, filter TeacherComplaintFilter) squirrel.SelectBuilder {
	q := sb.Select(teacherComplaintColumns...).
		From("teacher_complaints tc").
		Where(squirrel.Eq{"tc.teacher_id": teacherID})
	q = applyConditions(q, TeacherComplaintConditions("tc", filter, ownTeacherComplaintSearch...))
	return q.OrderBy(orderNewestFirst("tc")...)
}

// AdminTeacherComplaintsQuery builds the admin listing. Only the designation
// is read from the teachers table; name and department are the snapshot
// taken when the complaint was filed.
func AdminTeacherComplaintsQuery(sb squirrel.StatementBuilderType, filter TeacherComplaintFilter) squirrel.SelectBuilder {
	cols := append(append([]string{}, teacherComplaintColumns...), "t.designation")
	q := sb.Select(cols...).
		From("teacher_complaints tc").
		Join("teachers t ON tc.teacher_id = t.id")
	q = applyConditions(q, TeacherComplaintConditions("tc", filter, adminTeacherComplaintSearch...))
	return q.OrderBy(orderNewestFirst("tc")...)
}

func (r *TeacherComplaintRepository) list(ctx context.Context, q squirrel.SelectBuilder, withDesignation bool) ([]*models.TeacherComplaint, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list teacher complaints SQL")
		return nil, fmt.Errorf("failed to build list teacher complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list teacher complaints query")
		return nil, fmt.Errorf("error querying teacher complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.TeacherComplaint{}
	for rows.Next() {
		c, err := scanTeacherComplaint(rows, withDesignation)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning teacher complaint row")
			return nil, fmt.Errorf("error scanning teacher complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating teacher complaint rows")
		return nil, fmt.Errorf("error iterating teacher complaint rows: %w", err)
	}
	return complaints, nil
}

func scanTeacherComplaint(row pgx.Row, withDesignation bool) (*models.TeacherComplaint, error) {
	var c models.TeacherComplaint
	var status string
	dest := []interface{}{
		&c.ID, &c.TeacherID, &c.Name, &c.TeacherIDNumber, &c.Department,
		&c.Category, &c.SpecificType, &c.Location, &c.SpecificItem,
		&c.ProblemDescription, &c.Suggestions, &status, &c.CreatedAt, &c.UpdatedAt,
	}
	if withDesignation {
		dest = append(dest, &c.TeacherDesignation)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	c.Status = models.ComplaintStatus(status)
	return &c, nil
}

// UpdateStatus changes the status of any teacher complaint
func (r *TeacherComplaintRepository) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	sql, args, err := r.sb.Update("teacher_complaints").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update teacher complaint SQL")
		return fmt.Errorf("failed to build update teacher complaint query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error executing update teacher complaint query")
		return fmt.Errorf("error updating teacher complaint: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}
	return nil
}
