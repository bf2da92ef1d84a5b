package heuristic

import (
	"testing"

	"github.com/devhire/devhire/internal/model"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		in       string
		min, max int
	}{
		{"$70k-$100k", 70000, 100000},
		{"70k - 100k", 70000, 100000},
		{"$90000-$120000", 90000, 120000},
		{"$80k", 80000, 100000},  // missing upper bound synthesized
		{"💰 60k", 60000, 80000},
		{"competitive", 0, 0},
		{"", 0, 0},
	}
	for _, tt := range tests {
		min, max := ParseSalary(tt.in)
		if min != tt.min || max != tt.max {
			t.Errorf("ParseSalary(%q) = (%d, %d), want (%d, %d)", tt.in, min, max, tt.min, tt.max)
		}
	}
}

func TestParseSalary_InvariantHolds(t *testing.T) {
	inputs := []string{"$100k-$70k", "$50k", "120000 - 90000", "nonsense", "1-2"}
	for _, in := range inputs {
		min, max := ParseSalary(in)
		if min > 0 && max > 0 && min > max {
			t.Errorf("ParseSalary(%q) violated min<=max: (%d, %d)", in, min, max)
		}
	}
}

func TestClampRange_SwapsInvertedBounds(t *testing.T) {
	min, max := ClampRange(120000, 90000)
	if min != 90000 || max != 120000 {
		t.Errorf("expected swapped bounds (90000, 120000), got (%d, %d)", min, max)
	}
}

func TestClampRange_ZeroMeansUnspecified(t *testing.T) {
	if min, max := ClampRange(50000, 0); min != 50000 || max != 0 {
		t.Errorf("zero max should pass through, got (%d, %d)", min, max)
	}
	if min, max := ClampRange(0, 0); min != 0 || max != 0 {
		t.Errorf("zero range should pass through, got (%d, %d)", min, max)
	}
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in   string
		want model.JobType
	}{
		{"FULLTIME", model.FullTime},
		{"Part-time", model.PartTime},
		{"CONTRACTOR", model.Contract},
		{"freelance", model.Contract},
		{"Internship", model.Internship},
		{"", model.FullTime},
		{"permanent", model.FullTime},
	}
	for _, tt := range tests {
		if got := NormalizeType(tt.in); got != tt.want {
			t.Errorf("NormalizeType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
