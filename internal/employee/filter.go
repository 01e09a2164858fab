package employee

import "strings"

// Criteria is the user-controlled filter state. Empty Departments or
// Ratings mean "no restriction", not "match nothing".
type Criteria struct {
	SearchText  string
	Departments []string
	Ratings     []int
}

// IsZero reports whether the criteria place no restriction at all.
func (c Criteria) IsZero() bool {
	return c.SearchText == "" && len(c.Departments) == 0 && len(c.Ratings) == 0
}

// Filter returns the employees matching every predicate of the
// criteria, preserving source order. It never mutates its input and is
// idempotent: filtering an already-filtered slice with the same
// criteria returns the same elements.
func Filter(employees []Employee, c Criteria) []Employee {
	matched := make([]Employee, 0, len(employees))
	search := strings.ToLower(c.SearchText)

	for _, emp := range employees {
		if !matchesSearch(emp, search) {
			continue
		}
		if len(c.Departments) > 0 && !containsString(c.Departments, emp.Company.Department) {
			continue
		}
		if len(c.Ratings) > 0 && !containsInt(c.Ratings, emp.Rating) {
			continue
		}
		matched = append(matched, emp)
	}

	return matched
}

// matchesSearch does a case-insensitive substring check over first
// name, last name, email and department; any one field matching
// suffices. search must already be lowercased.
func matchesSearch(emp Employee, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(emp.FirstName), search) ||
		strings.Contains(strings.ToLower(emp.LastName), search) ||
		strings.Contains(strings.ToLower(emp.Email), search) ||
		strings.Contains(strings.ToLower(emp.Company.Department), search)
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsInt(haystack []int, needle int) bool {
	for _, n := range haystack {
		if n == needle {
			return true
		}
	}
	return false
}
