package schedule

import (
	"regexp"
	"strconv"
)

var (
	cyclePattern = regexp.MustCompile(`Cycle\s+(\d+)`)
	dayPattern   = regexp.MustCompile(`Day\s+(\d+)`)
)

// CycleDay is the (cycle number, day number) pair extracted from a visit label.
type CycleDay struct {
	Cycle int
	Day   int
}

// ParseVisitLabel extracts the cycle and day numbers from a free-text visit
// label such as "Cycle 18 Day 8" or "Crossover Cycle 2 Day 1". The two tokens
// are searched independently; a missing token leaves its component at 0.
func ParseVisitLabel(text string) CycleDay {
	var cd CycleDay
	if m := cyclePattern.FindStringSubmatch(text); m != nil {
		cd.Cycle, _ = strconv.Atoi(m[1])
	}
	if m := dayPattern.FindStringSubmatch(text); m != nil {
		cd.Day, _ = strconv.Atoi(m[1])
	}
	return cd
}
