// Package filter applies user-selected facets and free-text search to an
// already-aggregated job list. Pure functions, no I/O.
package filter

import (
	"strings"

	"github.com/devhire/devhire/internal/model"
	"github.com/devhire/devhire/internal/rank"
)

// Apply returns the jobs satisfying every active facet of f plus the
// free-text search, re-sorted by relevance. Empty facets are unconstrained.
// A contradictory salary window yields an empty result, not an error.
func Apply(jobs []model.Job, f model.Filter, searchText string) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if matches(j, f, searchText) {
			out = append(out, j)
		}
	}
	rank.SortByRelevance(out)
	return out
}

func matches(j model.Job, f model.Filter, searchText string) bool {
	if q := strings.ToLower(strings.TrimSpace(searchText)); q != "" {
		if !matchesText(j, q) {
			return false
		}
	}

	if len(f.Locations) > 0 && !j.Remote && !matchesLocation(j, f.Locations) {
		return false
	}

	if f.Remote && !j.Remote {
		return false
	}

	if len(f.Types) > 0 && !containsType(f.Types, j.Type) {
		return false
	}

	if len(f.TechStack) > 0 && !matchesTech(j, f.TechStack) {
		return false
	}

	// Salary window overlap. A job with an unspecified upper bound fails an
	// active minimum, matching how the board has always behaved.
	if f.SalaryMin > 0 && j.Salary.Max < f.SalaryMin {
		return false
	}
	if f.SalaryMax > 0 && j.Salary.Min > f.SalaryMax {
		return false
	}

	if f.NoWhiteboard && !j.NoWhiteboard {
		return false
	}
	if f.DiversityFriendly && !j.DiversityFriendly {
		return false
	}

	return true
}

// matchesText checks title, company, and tech stack for the lowered query.
func matchesText(j model.Job, query string) bool {
	if strings.Contains(strings.ToLower(j.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Company), query) {
		return true
	}
	for _, tech := range j.TechStack {
		if strings.Contains(strings.ToLower(tech), query) {
			return true
		}
	}
	return false
}

func matchesLocation(j model.Job, allowed []string) bool {
	locLower := strings.ToLower(j.Location)
	for _, loc := range allowed {
		if strings.Contains(locLower, strings.ToLower(loc)) {
			return true
		}
	}
	return false
}

func matchesTech(j model.Job, wanted []string) bool {
	for _, w := range wanted {
		wLower := strings.ToLower(w)
		for _, tech := range j.TechStack {
			if strings.Contains(strings.ToLower(tech), wLower) {
				return true
			}
		}
	}
	return false
}

func containsType(types []model.JobType, t model.JobType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
