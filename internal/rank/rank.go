// Package rank removes cross-source duplicates and orders the unified job
// list by a fixed multi-criterion chain.
package rank

import (
	"sort"
	"strings"
	"unicode"

	"github.com/devhire/devhire/internal/model"
)

// Finalize deduplicates the list and sorts it into the final display order.
// The input slice is not modified.
func Finalize(jobs []model.Job) []model.Job {
	out := Dedup(jobs)
	Sort(out)
	return out
}

// Dedup drops later occurrences of jobs sharing a normalized title+company
// key. First occurrence in input order wins. Near-duplicates with slightly
// different titles are accepted as distinct.
func Dedup(jobs []model.Job) []model.Job {
	seen := make(map[string]bool, len(jobs))
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		key := normalize(j.Title) + "_" + normalize(j.Company)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, j)
	}
	return out
}

// Sort orders jobs in place: live records before synthetic, then by
// relevance. Stable, so ties keep input order and the result is
// deterministic for a fixed input.
func Sort(jobs []model.Job) {
	sort.SliceStable(jobs, func(i, k int) bool {
		a, b := jobs[i], jobs[k]
		if a.Synthetic() != b.Synthetic() {
			return !a.Synthetic()
		}
		return moreRelevant(a, b)
	})
}

// SortByRelevance orders jobs in place by the relevance criteria alone,
// ignoring the live/synthetic distinction. Used after local filtering, where
// the set is already merged.
func SortByRelevance(jobs []model.Job) {
	sort.SliceStable(jobs, func(i, k int) bool {
		return moreRelevant(jobs[i], jobs[k])
	})
}

// moreRelevant is the tie-break chain: featured, hot, match score (missing
// ranks lowest), best salary bound, recency.
func moreRelevant(a, b model.Job) bool {
	if a.Featured != b.Featured {
		return a.Featured
	}
	if a.IsHot != b.IsHot {
		return a.IsHot
	}
	if a.AIMatchScore != b.AIMatchScore {
		return a.AIMatchScore > b.AIMatchScore
	}
	if as, bs := a.Salary.Upper(), b.Salary.Upper(); as != bs {
		return as > bs
	}
	return a.PostedAt.After(b.PostedAt)
}

// normalize lowercases, strips punctuation, and collapses whitespace so the
// dedup key tolerates cosmetic differences between sources.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
