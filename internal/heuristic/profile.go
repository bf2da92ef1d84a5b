package heuristic

import (
	"math/rand/v2"
	"strings"
)

// featuredThreshold promotes a job to "featured" regardless of source.
const featuredThreshold = 90

// Profile holds the per-source tuning constants for the match-score formula.
// The formula shape is the same for every source:
//
//	clamp(baseline + perTech*matches + bonus + jitter, floor, ceiling)
type Profile struct {
	Baseline     int
	PerTechBonus int
	Floor        int
	Ceiling      int
	Jitter       int // exclusive upper bound of the random jitter

	// RelevantTechs drive the match count; a subset of the full vocabulary
	// that the source's audience actually searches for.
	RelevantTechs []string

	// Hot gating. HotSalaryFloor of zero drops the salary clause for
	// sources without reliable salary data.
	HotScore       int
	HotSalaryFloor int
}

// CountMatches returns how many relevant techs appear in any of the given
// texts (case-insensitive substring).
func (p Profile) CountMatches(texts ...string) int {
	lowered := make([]string, len(texts))
	for i, t := range texts {
		lowered[i] = strings.ToLower(t)
	}
	count := 0
	for _, tech := range p.RelevantTechs {
		for _, t := range lowered {
			if strings.Contains(t, tech) {
				count++
				break
			}
		}
	}
	return count
}

// Score computes the match score from the deterministic signals plus bounded
// random jitter. The jitter breaks ties between near-identical postings; it
// is small enough never to dominate the real signals.
func (p Profile) Score(rng *rand.Rand, matches, bonus int) int {
	score := p.Baseline + p.PerTechBonus*matches + bonus
	if p.Jitter > 0 {
		score += rng.IntN(p.Jitter)
	}
	if score > p.Ceiling {
		score = p.Ceiling
	}
	if score < p.Floor {
		score = p.Floor
	}
	return score
}

// Hot reports whether the score and salary clear this source's promotion
// thresholds.
func (p Profile) Hot(score, salaryMin int) bool {
	if score <= p.HotScore {
		return false
	}
	if p.HotSalaryFloor > 0 && salaryMin <= p.HotSalaryFloor {
		return false
	}
	return true
}

// Featured reports whether the score clears the uniform featured threshold.
func Featured(score int) bool {
	return score > featuredThreshold
}
