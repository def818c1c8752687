package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/helpers"
)

// ComplaintFilter narrows student complaint listings. Empty fields are ignored;
// set fields are AND-combined.
type ComplaintFilter struct {
	Branch        string
	Status        string
	ComplaintType string
	// Search matches name, roll number, description and location, case-insensitively
	Search string
}

// TeacherComplaintFilter narrows teacher complaint listings
type TeacherComplaintFilter struct {
	Status string
	// ComplaintType is the composed "Category - Specific" form
	ComplaintType string
	Category      string
	Search        string
}

// ResourceFilter narrows inventory listings
type ResourceFilter struct {
	// Name matches case-insensitively anywhere in the name
	Name   string
	ItemID string
}

// qualify prefixes column with a table alias when one is given
func qualify(alias, column string) string {
	if alias == "" {
		return column
	}
	return alias + "." + column
}

func searchAny(term string, columns ...string) squirrel.Or {
	pattern := helpers.ContainsPattern(term)
	or := make(squirrel.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, squirrel.ILike{c: pattern})
	}
	return or
}

// ComplaintConditions returns the WHERE clauses for f against the complaints
// table aliased as alias.
func ComplaintConditions(alias string, f ComplaintFilter) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	if v := strings.TrimSpace(f.Branch); v != "" {
		conds = append(conds, squirrel.Eq{qualify(alias, "branch"): v})
	}
	if v := strings.TrimSpace(f.Status); v != "" {
		conds = append(conds, squirrel.Eq{qualify(alias, "status"): v})
	}
	if v := strings.TrimSpace(f.ComplaintType); v != "" {
		conds = append(conds, squirrel.Eq{qualify(alias, "complaint_type"): v})
	}
	if v := strings.TrimSpace(f.Search); v != "" {
		conds = append(conds, searchAny(v,
			qualify(alias, "name"),
			qualify(alias, "roll_number"),
			qualify(alias, "problem_description"),
			qualify(alias, "location"),
		))
	}
	return conds
}

// TeacherComplaintConditions returns the WHERE clauses for f. searchColumns
// differ between the teacher's own view and the admin view.
func TeacherComplaintConditions(alias string, f TeacherComplaintFilter, searchColumns ...string) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	if v := strings.TrimSpace(f.Status); v != "" {
		conds = append(conds, squirrel.Eq{qualify(alias, "status"): v})
	}
	if v := strings.TrimSpace(f.ComplaintType); v != "" {
		category, specific := models.SplitComplaintType(v)
		conds = append(conds,
			squirrel.Eq{qualify(alias, "category"): category},
			squirrel.Eq{qualify(alias, "specific_type"): specific},
		)
	}
	if v := strings.TrimSpace(f.Category); v != "" {
		conds = append(conds, squirrel.Eq{qualify(alias, "category"): v})
	}
	if v := strings.TrimSpace(f.Search); v != "" {
		cols := make([]string, len(searchColumns))
		for i, c := range searchColumns {
			cols[i] = qualify(alias, c)
		}
		conds = append(conds, searchAny(v, cols...))
	}
	return conds
}

// ResourceConditions returns the WHERE clauses for f
func ResourceConditions(f ResourceFilter) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	if v := strings.TrimSpace(f.Name); v != "" {
		conds = append(conds, squirrel.ILike{"name": helpers.ContainsPattern(v)})
	}
	if v := strings.TrimSpace(f.ItemID); v != "" {
		conds = append(conds, squirrel.Eq{"item_id": v})
	}
	return conds
}

func applyConditions(q squirrel.SelectBuilder, conds []squirrel.Sqlizer) squirrel.SelectBuilder {
	for _, c := range conds {
		q = q.Where(c)
	}
	return q
}
