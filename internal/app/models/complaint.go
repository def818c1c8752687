package models

import (
	"strings"
	"time"
)

// Complaint is a student-submitted complaint row. Name, RollNumber and Branch
// are snapshots of the student at submission time.
type Complaint struct {
	ID                 int64           `db:"id"`
	StudentID          int64           `db:"student_id"`
	Name               string          `db:"name"`
	RollNumber         string          `db:"roll_number"`
	Branch             string          `db:"branch"`
	ComplaintType      string          `db:"complaint_type"`
	Location           string          `db:"location"`
	SpecificItem       *string         `db:"specific_item"`
	ProblemDescription string          `db:"problem_description"`
	Suggestions        *string         `db:"suggestions"`
	Status             ComplaintStatus `db:"status"`
	TeacherApproved    bool            `db:"teacher_approved"`
	ApprovalNote       *string         `db:"approval_note"`
	TeacherID          *int64          `db:"teacher_id"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          *time.Time      `db:"updated_at"`

	// Populated by the teacher-approved listing only
	TeacherName       *string
	TeacherDepartment *string
}

// TeacherComplaint is a complaint filed by a teacher about college facilities
type TeacherComplaint struct {
	ID                 int64           `db:"id"`
	TeacherID          int64           `db:"teacher_id"`
	Name               string          `db:"name"`
	TeacherIDNumber    string          `db:"teacher_id_number"`
	Department         string          `db:"department"`
	Category           string          `db:"category"`
	SpecificType       string          `db:"specific_type"`
	Location           string          `db:"location"`
	SpecificItem       *string         `db:"specific_item"`
	ProblemDescription string          `db:"problem_description"`
	Suggestions        *string         `db:"suggestions"`
	Status             ComplaintStatus `db:"status"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          *time.Time      `db:"updated_at"`

	// Populated by the admin listing only
	TeacherDesignation *string
}

// CategoryOther is used when a legacy complaint type carries no category prefix
const CategoryOther = "Other"

const complaintTypeSeparator = " - "

// SplitComplaintType breaks a "Category - Specific" string on its first
// separator. Input without a separator is filed under Other.
func SplitComplaintType(complaintType string) (category, specific string) {
	if i := strings.Index(complaintType, complaintTypeSeparator); i >= 0 {
		return strings.TrimSpace(complaintType[:i]), strings.TrimSpace(complaintType[i+len(complaintTypeSeparator):])
	}
	return CategoryOther, strings.TrimSpace(complaintType)
}

// ComposeComplaintType is the inverse of SplitComplaintType. Other keeps its
// prefix when the specific part itself contains the separator.
func ComposeComplaintType(category, specific string) string {
	switch {
	case category == CategoryOther || category == "":
		if strings.Contains(specific, complaintTypeSeparator) {
			return CategoryOther + complaintTypeSeparator + specific
		}
		return specific
	case specific == "":
		return category
	default:
		return category + complaintTypeSeparator + specific
	}
}

// ComplaintType returns the composed display type
func (c *TeacherComplaint) ComplaintType() string {
	return ComposeComplaintType(c.Category, c.SpecificType)
}

// Resource is an inventory item tracked by the college
type Resource struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	ItemID    string    `db:"item_id"`
	Features  *string   `db:"features"`
	CreatedAt time.Time `db:"created_at"`
}
