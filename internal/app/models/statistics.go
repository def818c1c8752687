package models

// GroupCount is one row of a GROUP BY ... COUNT(*) aggregate
type GroupCount struct {
	Key   string
	Count int64
}

// ComplaintStatistics aggregates the student complaint table
type ComplaintStatistics struct {
	Total    int64
	ByStatus []GroupCount
	ByType   []GroupCount
	ByBranch []GroupCount
	// Recent counts complaints created in the last seven days
	Recent int64
}
