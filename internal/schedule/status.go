package schedule

import "strings"

// inactiveKeywords are the terminal-status markers. A status containing any
// of them (case-insensitive substring) gets no future visits projected.
var inactiveKeywords = []string{
	"discontinued",
	"completed",
	"withdrawn",
	"terminated",
	"death",
	"died",
	"screen failure",
}

// IsActive reports whether a patient with the given enrollment status should
// still have future visits projected. An absent status is inactive. Composite
// statuses like "Crossover Approved" contain no terminal keyword and are
// therefore active.
func IsActive(status string) bool {
	if strings.TrimSpace(status) == "" {
		return false
	}
	lower := strings.ToLower(status)
	for _, kw := range inactiveKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}
