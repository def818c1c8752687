package models

// Role identifies which account table a token belongs to
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the three known roles
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// ComplaintStatus is the lifecycle state of a complaint row
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
	// StatusRejected is accepted by the store and by list filters but no
	// operation ever writes it.
	StatusRejected ComplaintStatus = "Rejected"
)

// Valid reports whether s may be written by a status update.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// AllStatuses lists every value the status CHECK constraint accepts
var AllStatuses = []ComplaintStatus{StatusPending, StatusInProgress, StatusResolved, StatusRejected}
