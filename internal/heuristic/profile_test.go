package heuristic

import (
	"math/rand/v2"
	"testing"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

var testProfile = Profile{
	Baseline:       65,
	PerTechBonus:   5,
	Floor:          60,
	Ceiling:        98,
	Jitter:         8,
	RelevantTechs:  []string{"react", "go", "python"},
	HotScore:       85,
	HotSalaryFloor: 100000,
}

func TestCountMatches(t *testing.T) {
	got := testProfile.CountMatches(
		"Senior Go Developer",
		"We use React on the frontend and Python for tooling.",
	)
	if got != 3 {
		t.Errorf("expected 3 matches, got %d", got)
	}
}

func TestCountMatches_NoDoubleCounting(t *testing.T) {
	// "go" appears in both texts but counts once.
	got := testProfile.CountMatches("Go Engineer", "Go, Go, Go!")
	if got != 1 {
		t.Errorf("expected 1 match, got %d", got)
	}
}

func TestScore_DeterministicWithSeededRand(t *testing.T) {
	a := testProfile.Score(testRng(), 3, 10)
	b := testProfile.Score(testRng(), 3, 10)
	if a != b {
		t.Errorf("same seed produced different scores: %d vs %d", a, b)
	}
}

func TestScore_WithinBounds(t *testing.T) {
	rng := testRng()
	for matches := 0; matches <= 10; matches++ {
		for bonus := 0; bonus <= 20; bonus += 5 {
			score := testProfile.Score(rng, matches, bonus)
			if score < testProfile.Floor || score > testProfile.Ceiling {
				t.Fatalf("score %d out of bounds [%d,%d] (matches=%d bonus=%d)",
					score, testProfile.Floor, testProfile.Ceiling, matches, bonus)
			}
		}
	}
}

func TestScore_ClampsAtCeiling(t *testing.T) {
	score := testProfile.Score(testRng(), 100, 100)
	if score != testProfile.Ceiling {
		t.Errorf("expected ceiling %d, got %d", testProfile.Ceiling, score)
	}
}

func TestScore_JitterNeverDominates(t *testing.T) {
	// Two inputs separated by more than the jitter bound keep their order.
	rng := testRng()
	low := testProfile.Baseline + testProfile.Jitter // worst case for 0 matches
	high := testProfile.Score(rng, 3, 0)             // at least baseline+15
	if high < low {
		t.Errorf("3-match score %d fell below 0-match worst case %d", high, low)
	}
}

func TestHot(t *testing.T) {
	tests := []struct {
		score, salary int
		want          bool
	}{
		{96, 120000, true},
		{96, 90000, false}, // salary below floor
		{80, 150000, false}, // score below threshold
		{86, 100001, true},
	}
	for _, tt := range tests {
		if got := testProfile.Hot(tt.score, tt.salary); got != tt.want {
			t.Errorf("Hot(%d, %d) = %v, want %v", tt.score, tt.salary, got, tt.want)
		}
	}
}

func TestHot_NoSalaryClause(t *testing.T) {
	p := testProfile
	p.HotSalaryFloor = 0
	if !p.Hot(90, 0) {
		t.Error("expected hot without salary clause")
	}
}

func TestFeatured(t *testing.T) {
	if Featured(90) {
		t.Error("90 should not be featured")
	}
	if !Featured(91) {
		t.Error("91 should be featured")
	}
}
