package schedule

import "testing"

func TestIsActive(t *testing.T) {
	cases := []struct {
		status string
		active bool
	}{
		{"Randomized", true},
		{"Crossover Approved", true},
		{"On Treatment", true},
		{"Completed", false},
		{"Discontinued", false},
		{"Withdrawn by Subject", false},
		{"Study Terminated", false},
		{"Death", false},
		{"Died", false},
		{"Screen Failure", false},
		{"screen failure", false},
		{"", false},
		{"   ", false},
	}
	for _, c := range cases {
		if got := IsActive(c.status); got != c.active {
			t.Errorf("IsActive(%q) = %v, want %v", c.status, got, c.active)
		}
	}
}
