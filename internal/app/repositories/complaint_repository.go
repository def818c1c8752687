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

var complaintColumns = []string{
	"c.id", "c.student_id", "c.name", "c.roll_number", "c.branch", "c.complaint_type",
	"c.location", "c.specific_item", "c.problem_description", "c.suggestions", "c.status",
	"c.teacher_approved", "c.approval_note", "c.teacher_id", "c.created_at", "c.updated_at",
}

// newestFirst orders listings; id breaks ties between rows created in the same instant
var newestFirst = []string{"created_at DESC", "id DESC"}

func orderNewestFirst(alias string) []string {
	out := make([]string, len(newestFirst))
	for i, o := range newestFirst {
		out[i] = qualify(alias, o)
	}
	return out
}

// ComplaintRepository handles student complaint database operations
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a complaint in the Pending state
func (r *ComplaintRepository) Create(ctx context.Context, c *models.Complaint) error {
	sql, args, err := r.sb.Insert("complaints").
		Columns("student_id", "name", "roll_number", "branch", "complaint_type", "location",
			"specific_item", "problem_description", "suggestions", "status").
		Values(c.StudentID, c.Name, c.RollNumber, c.Branch, c.ComplaintType, c.Location,
			c.SpecificItem, c.ProblemDescription, c.Suggestions, string(models.StatusPending)).
		Suffix("RETURNING id, status, teacher_approved, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create complaint SQL")
		return fmt.Errorf("failed to build create complaint query: %w", err)
	}

	var status string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &status, &c.TeacherApproved, &c.CreatedAt); err != nil {
		logger.Error().Err(err).Int64("studentID", c.StudentID).Msg("Error executing create complaint query")
		return fmt.Errorf("error creating complaint: %w", err)
	}
	c.Status = models.ComplaintStatus(status)

	logger.Info().Int64("complaintID", c.ID).Int64("studentID", c.StudentID).Msg("Complaint created")
	return nil
}

// GetForStudent returns the complaint only when it belongs to studentID
func (r *ComplaintRepository) GetForStudent(ctx context.Context, id, studentID int64) (*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns...).
		From("complaints c").
		Where(squirrel.Eq{"c.id": id, "c.student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get complaint SQL")
		return nil, fmt.Errorf("failed to build get complaint query: %w", err)
	}

	c, err := scanComplaint(r.db.QueryRow(ctx, sql, args...), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error scanning complaint row")
		return nil, fmt.Errorf("error getting complaint: %w", err)
	}
	return c, nil
}

// ListByStudent returns a student's own complaints, newest first
func (r *ComplaintRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	q := r.sb.Select(complaintColumns...).
		From("complaints c").
		Where(squirrel.Eq{"c.student_id": studentID}).
		OrderBy(orderNewestFirst("c")...)
	return r.list(ctx, q, false)
}

// ListByRollNumber returns complaints filed under a roll number snapshot
func (r *ComplaintRepository) ListByRollNumber(ctx context.Context, rollNumber string) ([]*models.Complaint, error) {
	q := r.sb.Select(complaintColumns...).
		From("complaints c").
		Where(squirrel.Eq{"c.roll_number": rollNumber}).
		OrderBy(orderNewestFirst("c")...)
	return r.list(ctx, q, false)
}

// List returns every complaint matching filter
func (r *ComplaintRepository) List(ctx context.Context, filter ComplaintFilter) ([]*models.Complaint, error) {
	return r.list(ctx, ComplaintListQuery(r.sb, filter), false)
}

// ListTeacherApproved returns approved complaints joined with the approving teacher
func (r *ComplaintRepository) ListTeacherApproved(ctx context.Context, filter ComplaintFilter) ([]*models.Complaint, error) {
	return r.list(ctx, TeacherApprovedQuery(r.sb, filter), true)
}

// ComplaintListQuery builds the filtered listing over all complaints
func ComplaintListQuery(sb squirrel.StatementBuilderType, filter ComplaintFilter) squirrel.SelectBuilder {
	q := sb.Select(complaintColumns...).From("complaints c")
	return applyConditions(q, ComplaintConditions("c", filter)).OrderBy(orderNewestFirst("c")...)
}

// TeacherApprovedQuery builds the approved listing. The inner join drops
// complaints whose approving teacher has since been deleted.
func TeacherApprovedQuery(sb squirrel.StatementBuilderType, filter ComplaintFilter) squirrel.SelectBuilder {
	cols := append(append([]string{}, complaintColumns...), "t.name", "t.department")
	q := sb.Select(cols...).
		From("complaints c").
		Join("teachers t ON c.teacher_id = t.id").
		Where(squirrel.Eq{"c.teacher_approved": true})
	return applyConditions(q, ComplaintConditions("c", filter)).OrderBy(orderNewestFirst("c")...)
}

func (r *ComplaintRepository) list(ctx context.Context, q squirrel.SelectBuilder, withTeacher bool) ([]*models.Complaint, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list complaints SQL")
		return nil, fmt.Errorf("failed to build list complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list complaints query")
		return nil, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}
	for rows.Next() {
		c, err := scanComplaint(rows, withTeacher)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning complaint row during list")
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating complaint rows")
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

// scanComplaint reads complaintColumns, plus t.name and t.department when withTeacher is set
func scanComplaint(row pgx.Row, withTeacher bool) (*models.Complaint, error) {
	var c models.Complaint
	var status string
	dest := []interface{}{
		&c.ID, &c.StudentID, &c.Name, &c.RollNumber, &c.Branch, &c.ComplaintType,
		&c.Location, &c.SpecificItem, &c.ProblemDescription, &c.Suggestions, &status,
		&c.TeacherApproved, &c.ApprovalNote, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt,
	}
	if withTeacher {
		dest = append(dest, &c.TeacherName, &c.TeacherDepartment)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	c.Status = models.ComplaintStatus(status)
	return &c, nil
}

// UpdateStatusForStudent changes status only on a complaint owned by studentID
func (r *ComplaintRepository) UpdateStatusForStudent(ctx context.Context, id, studentID int64, status models.ComplaintStatus) error {
	return r.update(ctx, r.sb.Update("complaints").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "student_id": studentID}), id)
}

// UpdateStatus changes status regardless of owner
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	return r.update(ctx, r.sb.Update("complaints").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}), id)
}

// Approve marks a complaint teacher-approved. A repeat approval overwrites the
// note and approver; nothing clears the flag.
func (r *ComplaintRepository) Approve(ctx context.Context, id, teacherID int64, note string) error {
	return r.update(ctx, r.sb.Update("complaints").
		Set("teacher_approved", true).
		Set("approval_note", note).
		Set("teacher_id", teacherID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}), id)
}

func (r *ComplaintRepository) update(ctx context.Context, q squirrel.UpdateBuilder, id int64) error {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update complaint SQL")
		return fmt.Errorf("failed to build update complaint query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error executing update complaint query")
		return fmt.Errorf("error updating complaint: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}
	return nil
}

// Statistics computes every aggregate inside one read-only snapshot
func (r *ComplaintRepository) Statistics(ctx context.Context) (*models.ComplaintStatistics, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		logger.Error().Err(err).Msg("Error starting statistics transaction")
		return nil, fmt.Errorf("failed to begin statistics transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stats := &models.ComplaintStatistics{}

	if stats.Total, err = r.count(ctx, tx, r.sb.Select("COUNT(*)").From("complaints")); err != nil {
		return nil, err
	}
	if stats.ByStatus, err = r.groupCount(ctx, tx, "status"); err != nil {
		return nil, err
	}
	if stats.ByType, err = r.groupCount(ctx, tx, "complaint_type"); err != nil {
		return nil, err
	}
	if stats.ByBranch, err = r.groupCount(ctx, tx, "branch"); err != nil {
		return nil, err
	}
	recent := r.sb.Select("COUNT(*)").From("complaints").Where("created_at >= NOW() - INTERVAL '7 days'")
	if stats.Recent, err = r.count(ctx, tx, recent); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *ComplaintRepository) count(ctx context.Context, tx pgx.Tx, q squirrel.SelectBuilder) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var n int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Str("sql", sql).Msg("Error executing count query")
		return 0, fmt.Errorf("error counting complaints: %w", err)
	}
	return n, nil
}

// GroupCountQuery builds SELECT column, COUNT(*) ... GROUP BY column
func GroupCountQuery(sb squirrel.StatementBuilderType, column string) squirrel.SelectBuilder {
	return sb.Select(column, "COUNT(*)").
		From("complaints").
		GroupBy(column).
		OrderBy(column)
}

func (r *ComplaintRepository) groupCount(ctx context.Context, tx pgx.Tx, column string) ([]models.GroupCount, error) {
	sql, args, err := GroupCountQuery(r.sb, column).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build group count query: %w", err)
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("column", column).Msg("Error executing group count query")
		return nil, fmt.Errorf("error grouping complaints by %s: %w", column, err)
	}
	defer rows.Close()

	groups := []models.GroupCount{}
	for rows.Next() {
		var g models.GroupCount
		if err := rows.Scan(&g.Key, &g.Count); err != nil {
			return nil, fmt.Errorf("error scanning %s group: %w", column, err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
