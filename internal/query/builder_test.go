package query

import (
	"strings"
	"testing"

	"github.com/devhire/devhire/internal/model"
)

func TestForJSearch_Defaults(t *testing.T) {
	p := ForJSearch(model.SearchRequest{})
	if p.Query != DefaultQuery {
		t.Errorf("empty request should fall back to the default query, got %q", p.Query)
	}
	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
	if p.NumPages != 1 {
		t.Errorf("NumPages = %d, want 1", p.NumPages)
	}
	if p.DatePosted != "month" {
		t.Errorf("DatePosted = %q", p.DatePosted)
	}
	if p.RemoteOnly {
		t.Error("RemoteOnly should default to false")
	}
}

func TestForJSearch_LocationFoldedIntoQuery(t *testing.T) {
	p := ForJSearch(model.SearchRequest{Query: "go developer", Location: "Berlin"})
	if p.Query != "go developer in Berlin" {
		t.Errorf("Query = %q", p.Query)
	}
}

func TestForJSearch_PassesThrough(t *testing.T) {
	p := ForJSearch(model.SearchRequest{Query: "react", Page: 3, RemoteOnly: true})
	if p.Query != "react" || p.Page != 3 || !p.RemoteOnly {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestForReed_Defaults(t *testing.T) {
	p := ForReed(model.SearchRequest{})
	if p.Keywords != DefaultQuery {
		t.Errorf("Keywords = %q", p.Keywords)
	}
	if p.ResultsToTake != DefaultPageSize {
		t.Errorf("ResultsToTake = %d, want %d", p.ResultsToTake, DefaultPageSize)
	}
	if p.ResultsToSkip != 0 {
		t.Errorf("ResultsToSkip = %d, want 0", p.ResultsToSkip)
	}
	if p.MinimumSalary != 30000 {
		t.Errorf("MinimumSalary = %d", p.MinimumSalary)
	}
	if !p.Permanent {
		t.Error("Reed searches are restricted to permanent roles")
	}
}

func TestForReed_Pagination(t *testing.T) {
	p := ForReed(model.SearchRequest{Page: 3, PageSize: 25})
	if p.ResultsToTake != 25 {
		t.Errorf("ResultsToTake = %d", p.ResultsToTake)
	}
	if p.ResultsToSkip != 50 {
		t.Errorf("ResultsToSkip = %d, want 50", p.ResultsToSkip)
	}
}

func TestForRemoteOK_FixedTags(t *testing.T) {
	a := ForRemoteOK(model.SearchRequest{Query: "anything", Location: "anywhere", Page: 9})
	b := ForRemoteOK(model.SearchRequest{})
	if strings.Join(a.Tags, ",") != strings.Join(b.Tags, ",") {
		t.Errorf("tags must not vary with the request: %v vs %v", a.Tags, b.Tags)
	}
	if len(a.Tags) == 0 {
		t.Fatal("tag list must not be empty")
	}

	// Callers may mutate the returned slice without corrupting later calls.
	a.Tags[0] = "mutated"
	c := ForRemoteOK(model.SearchRequest{})
	if c.Tags[0] == "mutated" {
		t.Error("returned tag slice shares backing storage across calls")
	}
}

func TestQueryOrDefault_WhitespaceOnly(t *testing.T) {
	p := ForJSearch(model.SearchRequest{Query: "   "})
	if p.Query != DefaultQuery {
		t.Errorf("whitespace query should fall back to the default, got %q", p.Query)
	}
}
