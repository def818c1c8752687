package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/dberrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueKey is one UNIQUE column of an account table. Column doubles as the
// request field reported back to the client.
type uniqueKey struct {
	Column     string
	Label      string
	Constraint string
}

var (
	studentKeys = []uniqueKey{
		{Column: "roll_number", Label: "Roll number", Constraint: "students_roll_number_key"},
		{Column: "email", Label: "Email", Constraint: "students_email_key"},
	}
	teacherKeys = []uniqueKey{
		{Column: "teacher_id", Label: "Teacher ID", Constraint: "teachers_teacher_id_key"},
		{Column: "email", Label: "Email", Constraint: "teachers_email_key"},
	}
	adminKeys = []uniqueKey{
		{Column: "username", Label: "Username", Constraint: "admins_username_key"},
		{Column: "email", Label: "Email", Constraint: "admins_email_key"},
	}
)

// uniqueLookupQuery builds the single-row lookup used before inserting an account:
// SELECT k1, k2 FROM table WHERE (k1 = $1 OR k2 = $2) ORDER BY (k1 = $3) DESC LIMIT 1.
// The ordering puts a row matching an earlier key first when two rows clash.
func uniqueLookupQuery(sb squirrel.StatementBuilderType, table string, keys []uniqueKey, values []string) squirrel.SelectBuilder {
	cols := make([]string, len(keys))
	or := make(squirrel.Or, len(keys))
	for i, k := range keys {
		cols[i] = k.Column
		or[i] = squirrel.Eq{k.Column: values[i]}
	}
	q := sb.Select(cols...).From(table).Where(or)
	for i, k := range keys[:len(keys)-1] {
		q = q.OrderByClause("("+k.Column+" = ?) DESC", values[i])
	}
	return q.Limit(1)
}

// ensureUnique reports the first key in keys whose value is already taken.
// Keys are checked in order so the account identifier wins over email when both clash.
func ensureUnique(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string, keys []uniqueKey, values ...string) error {
	sql, args, err := uniqueLookupQuery(sb, table, keys, values).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building uniqueness check SQL")
		return fmt.Errorf("failed to build uniqueness query: %w", err)
	}

	existing := make([]string, len(keys))
	dest := make([]interface{}, len(keys))
	for i := range existing {
		dest[i] = &existing[i]
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		logger.Error().Err(err).Str("table", table).Msg("Error executing uniqueness check")
		return fmt.Errorf("error checking %s uniqueness: %w", table, err)
	}

	for i, k := range keys {
		if existing[i] == values[i] {
			return apperrors.NewConflictError(k.Column, k.Label)
		}
	}
	// Row matched the OR but no exact value did; only possible with collations
	return apperrors.NewConflictError(keys[len(keys)-1].Column, keys[len(keys)-1].Label)
}

// mapDuplicateError turns a unique violation raised by INSERT into the same
// conflict error ensureUnique would have returned.
func mapDuplicateError(err error, keys []uniqueKey) error {
	for _, k := range keys {
		if dberrors.IsDuplicateConstraintError(err, k.Constraint) {
			return apperrors.NewConflictError(k.Column, k.Label)
		}
	}
	return nil
}
