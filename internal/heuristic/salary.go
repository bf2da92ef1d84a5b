package heuristic

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/devhire/devhire/internal/model"
)

// missingUpperOffset is added to the lower bound when a salary string only
// carries one number.
const missingUpperOffset = 20000

var salaryPattern = regexp.MustCompile(`(?i)\$?\s*(\d+)\s*(k?)(?:\s*[-–]\s*\$?\s*(\d+)\s*(k?))?`)

// ParseSalary extracts numeric bounds from a formatted salary string like
// "$70k - $100k" or "90000-120000". Values under 1000 are treated as
// thousands even without an explicit k suffix. Unparseable input yields
// zero/zero ("unspecified").
func ParseSalary(s string) (min, max int) {
	m := salaryPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0
	}

	min = salaryNumber(m[1], m[2])
	if m[3] != "" {
		max = salaryNumber(m[3], m[4])
	} else {
		max = min + missingUpperOffset
	}
	return ClampRange(min, max)
}

func salaryNumber(digits, suffix string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	if suffix != "" || n < 1000 {
		n *= 1000
	}
	return n
}

// ClampRange enforces min <= max by swapping inverted bounds. Zero values
// pass through untouched since they mean "unspecified".
func ClampRange(min, max int) (int, int) {
	if min > 0 && max > 0 && min > max {
		return max, min
	}
	return min, max
}

// NormalizeType maps a source's free-text employment type onto the four
// canonical values. Anything unrecognized is full-time.
func NormalizeType(raw string) model.JobType {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "part"):
		return model.PartTime
	case strings.Contains(lower, "contract"), strings.Contains(lower, "freelance"):
		return model.Contract
	case strings.Contains(lower, "intern"):
		return model.Internship
	default:
		return model.FullTime
	}
}
