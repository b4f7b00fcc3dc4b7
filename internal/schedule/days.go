// Package schedule implements the visit-schedule projection engine: tolerant
// parsers for the free-text schedule fields, treatment-plan matching, and the
// forward projection of future dispensing visits.
package schedule

import (
	"sort"
	"strconv"
	"strings"
)

// defaultVisitDays is the schedule assumed when the visit-day list is absent
// or unparseable: a single visit on day 1 of each cycle.
var defaultVisitDays = []int{1}

// ParseVisitDays parses a comma-separated list of intra-cycle visit days
// (e.g. "1, 8, 15") into an ascending list of distinct day numbers.
// Absent or malformed input degrades to the day-1 default; it never fails.
func ParseVisitDays(text string) []int {
	text = strings.TrimSpace(text)
	if text == "" {
		return append([]int(nil), defaultVisitDays...)
	}

	parts := strings.Split(text, ",")
	seen := make(map[int]bool, len(parts))
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return append([]int(nil), defaultVisitDays...)
		}
		if !seen[n] {
			seen[n] = true
			days = append(days, n)
		}
	}
	sort.Ints(days)
	return days
}
