package models

import "strings"

// matchesFold reports whether term is a case-insensitive substring of any of
// the given fields. An empty term matches everything.
func matchesFold(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
