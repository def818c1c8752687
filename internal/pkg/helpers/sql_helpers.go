package helpers

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns a user search term into a LIKE/ILIKE pattern matching
// any value that contains it. Wildcards typed by the user match literally.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// NullableString returns nil for blank input so optional columns store NULL
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, treating nil as ""
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
