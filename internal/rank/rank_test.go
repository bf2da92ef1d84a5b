package rank

import (
	"testing"
	"time"

	"github.com/devhire/devhire/internal/model"
)

func job(id, title, company string) model.Job {
	return model.Job{ID: id, Title: title, Company: company}
}

func TestDedup_FirstOccurrenceWins(t *testing.T) {
	jobs := []model.Job{
		job("jsearch_1", "Senior Go Developer", "Acme Corp"),
		job("reed_2", "Senior Go Developer!", "ACME CORP."),
		job("remoteok_3", "Senior Go Developer", "Other Co"),
	}

	out := Dedup(jobs)
	if len(out) != 2 {
		t.Fatalf("expected 2 jobs after dedup, got %d", len(out))
	}
	if out[0].ID != "jsearch_1" {
		t.Errorf("expected first occurrence to win, got %s", out[0].ID)
	}
	if out[1].ID != "remoteok_3" {
		t.Errorf("expected distinct company to survive, got %s", out[1].ID)
	}
}

func TestDedup_Idempotent(t *testing.T) {
	jobs := []model.Job{
		job("a", "Backend Engineer", "TechFlow"),
		job("b", "Backend Engineer", "TechFlow"),
		job("c", "Frontend Engineer", "TechFlow"),
	}

	once := Dedup(jobs)
	twice := Dedup(once)
	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("order changed on second dedup at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestDedup_NearDuplicatesKept(t *testing.T) {
	jobs := []model.Job{
		job("a", "Go Developer", "Acme"),
		job("b", "Senior Go Developer", "Acme"),
	}
	if got := len(Dedup(jobs)); got != 2 {
		t.Errorf("near-duplicate titles should both survive, got %d", got)
	}
}

func TestSort_LiveBeforeSynthetic(t *testing.T) {
	jobs := []model.Job{
		{ID: "mock_1", Title: "A", Featured: true, AIMatchScore: 98},
		{ID: "reed_1", Title: "B", AIMatchScore: 61},
	}
	Sort(jobs)
	if jobs[0].ID != "reed_1" {
		t.Errorf("live job must rank above any synthetic job, got %s first", jobs[0].ID)
	}
}

func TestSort_CriteriaChain(t *testing.T) {
	now := time.Now()
	jobs := []model.Job{
		{ID: "e", AIMatchScore: 70, PostedAt: now.Add(-time.Hour)},
		{ID: "f", AIMatchScore: 70, PostedAt: now}, // newer wins the final tiebreak
		{ID: "d", AIMatchScore: 70, Salary: model.Salary{Min: 90000, Max: 140000}},
		{ID: "c", AIMatchScore: 80},
		{ID: "b", IsHot: true, AIMatchScore: 75},
		{ID: "a", Featured: true, AIMatchScore: 65},
	}
	Sort(jobs)

	want := []string{"a", "b", "c", "d", "f", "e"}
	for i, id := range want {
		if jobs[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s (full order: %v)", i, id, jobs[i].ID, ids(jobs))
		}
	}
}

func TestSort_NoInversions(t *testing.T) {
	jobs := []model.Job{
		{ID: "mock_9", AIMatchScore: 95},
		{ID: "a", AIMatchScore: 62},
		{ID: "b", Featured: true, AIMatchScore: 91},
		{ID: "c", IsHot: true, AIMatchScore: 88},
		{ID: "d"},
		{ID: "e", Salary: model.Salary{Min: 200000, Max: 250000}},
	}
	Sort(jobs)

	for i := 0; i < len(jobs)-1; i++ {
		a, b := jobs[i], jobs[i+1]
		// b must not strictly beat a under the chain.
		if !a.Synthetic() && b.Synthetic() {
			continue
		}
		if a.Synthetic() && !b.Synthetic() {
			t.Fatalf("inversion: synthetic %s before live %s", a.ID, b.ID)
		}
		if !a.Featured && b.Featured {
			t.Fatalf("inversion: %s before featured %s", a.ID, b.ID)
		}
		if a.Featured == b.Featured && !a.IsHot && b.IsHot {
			t.Fatalf("inversion: %s before hot %s", a.ID, b.ID)
		}
	}
}

func TestSort_MissingScoreRanksLowest(t *testing.T) {
	jobs := []model.Job{
		{ID: "none"},
		{ID: "low", AIMatchScore: 60},
	}
	Sort(jobs)
	if jobs[0].ID != "low" {
		t.Errorf("missing score should rank below any score, got %s first", jobs[0].ID)
	}
}

func TestSort_Deterministic(t *testing.T) {
	build := func() []model.Job {
		return []model.Job{
			{ID: "a", AIMatchScore: 70},
			{ID: "b", AIMatchScore: 70},
			{ID: "c", AIMatchScore: 70},
		}
	}
	first := build()
	second := build()
	Sort(first)
	Sort(second)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("sort not deterministic at %d", i)
		}
	}
	// Ties keep input order.
	if first[0].ID != "a" || first[2].ID != "c" {
		t.Errorf("expected stable tie order, got %v", ids(first))
	}
}

func TestFinalize_DedupsThenSorts(t *testing.T) {
	jobs := []model.Job{
		{ID: "x", Title: "Dev", Company: "Acme", AIMatchScore: 70},
		{ID: "mock_1", Title: "Dev", Company: "Beta", AIMatchScore: 95},
		{ID: "y", Title: "dev", Company: "acme", AIMatchScore: 99},
	}
	out := Finalize(jobs)
	if len(out) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(out))
	}
	if out[0].ID != "x" || out[1].ID != "mock_1" {
		t.Errorf("unexpected order: %v", ids(out))
	}
}

func ids(jobs []model.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}
