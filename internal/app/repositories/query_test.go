package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSB = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func TestComplaintListQuery_NoFilters(t *testing.T) {
	sql, args, err := ComplaintListQuery(testSB, ComplaintFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "FROM complaints c ORDER BY c.created_at DESC, c.id DESC")
	assert.Empty(t, args)
}

func TestComplaintListQuery_AllFilters(t *testing.T) {
	sql, args, err := ComplaintListQuery(testSB, ComplaintFilter{
		Branch:        "CSE",
		Status:        "Pending",
		ComplaintType: "Fans",
		Search:        "fan",
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE c.branch = $1 AND c.status = $2 AND c.complaint_type = $3 AND "+
		"(c.name ILIKE $4 OR c.roll_number ILIKE $5 OR c.problem_description ILIKE $6 OR c.location ILIKE $7)")
	assert.Equal(t, []interface{}{"CSE", "Pending", "Fans", "%fan%", "%fan%", "%fan%", "%fan%"}, args)
}

func TestComplaintListQuery_SearchIsBound(t *testing.T) {
	injection := "x' OR '1'='1"
	sql, args, err := ComplaintListQuery(testSB, ComplaintFilter{Search: injection}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, injection)
	assert.Len(t, args, 4)
	assert.Equal(t, "%"+injection+"%", args[0])
}

func TestTeacherApprovedQuery(t *testing.T) {
	sql, args, err := TeacherApprovedQuery(testSB, ComplaintFilter{Branch: "ECE"}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "t.name, t.department FROM complaints c JOIN teachers t ON c.teacher_id = t.id")
	assert.Contains(t, sql, "WHERE c.teacher_approved = $1 AND c.branch = $2")
	assert.Equal(t, []interface{}{true, "ECE"}, args)
}

func TestOwnTeacherComplaintsQuery(t *testing.T) {
	sql, args, err := OwnTeacherComplaintsQuery(testSB, 9, TeacherComplaintFilter{
		ComplaintType: "Infrastructure - Fan",
		Search:        "lab",
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE tc.teacher_id = $1 AND tc.category = $2 AND tc.specific_type = $3 AND "+
		"(tc.problem_description ILIKE $4 OR tc.location ILIKE $5 OR tc.specific_item ILIKE $6)")
	assert.Contains(t, sql, "ORDER BY tc.created_at DESC, tc.id DESC")
	assert.Equal(t, []interface{}{int64(9), "Infrastructure", "Fan", "%lab%", "%lab%", "%lab%"}, args)
}

func TestOwnTeacherComplaintsQuery_TypeWithoutCategory(t *testing.T) {
	_, args, err := OwnTeacherComplaintsQuery(testSB, 1, TeacherComplaintFilter{ComplaintType: "Projector"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(1), "Other", "Projector"}, args)
}

func TestAdminTeacherComplaintsQuery(t *testing.T) {
	sql, args, err := AdminTeacherComplaintsQuery(testSB, TeacherComplaintFilter{
		Status:   "Resolved",
		Category: "Electrical",
		Search:   "T-1",
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "t.designation FROM teacher_complaints tc JOIN teachers t ON tc.teacher_id = t.id")
	assert.Contains(t, sql, "WHERE tc.status = $1 AND tc.category = $2 AND "+
		"(tc.name ILIKE $3 OR tc.teacher_id_number ILIKE $4 OR tc.problem_description ILIKE $5 OR tc.location ILIKE $6)")
	assert.Equal(t, "Resolved", args[0])
	assert.Equal(t, "Electrical", args[1])
}

func TestResourceListQuery(t *testing.T) {
	sql, args, err := ResourceListQuery(testSB, ResourceFilter{Name: "Projector", ItemID: "PRJ-01"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, item_id, features, created_at FROM resources "+
		"WHERE name ILIKE $1 AND item_id = $2 ORDER BY created_at DESC, id DESC", sql)
	assert.Equal(t, []interface{}{"%Projector%", "PRJ-01"}, args)
}

func TestUniqueLookupQuery(t *testing.T) {
	sql, args, err := uniqueLookupQuery(testSB, "students", studentKeys, []string{"21CS001", "a@b.c"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT roll_number, email FROM students WHERE (roll_number = $1 OR email = $2) ORDER BY (roll_number = $3) DESC LIMIT 1", sql)
	assert.Equal(t, []interface{}{"21CS001", "a@b.c", "21CS001"}, args)
}

func TestMapDuplicateError(t *testing.T) {
	dup := func(constraint string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
	}

	err := mapDuplicateError(dup("students_email_key"), studentKeys)
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "email", apperrors.FieldOf(err))
	assert.Equal(t, "Email already exists", apperrors.MessageOf(err, ""))

	err = mapDuplicateError(dup("teachers_teacher_id_key"), teacherKeys)
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "teacher_id", apperrors.FieldOf(err))

	assert.Nil(t, mapDuplicateError(dup("teachers_teacher_id_key"), studentKeys))
	assert.Nil(t, mapDuplicateError(&pgconn.PgError{Code: "23503", ConstraintName: "students_email_key"}, studentKeys))
	assert.Nil(t, mapDuplicateError(errors.New("connection reset"), adminKeys))
}

func TestGroupCountQuery(t *testing.T) {
	sql, _, err := GroupCountQuery(testSB, "branch").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT branch, COUNT(*) FROM complaints GROUP BY branch ORDER BY branch", sql)
}
