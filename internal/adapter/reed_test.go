package adapter

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devhire/devhire/internal/model"
)

const reedPayload = `{
	"results": [
		{
			"jobId": 54321,
			"employerName": "Streamline Ltd",
			"jobTitle": "Python Developer",
			"locationName": "London",
			"minimumSalary": 55000,
			"maximumSalary": 75000,
			"currency": "GBP",
			"date": "28/08/2026",
			"jobDescription": "Experience with Python and Django required. Pension scheme and flexible working on offer. We value diversity and inclusion.",
			"jobUrl": "https://reed.example/jobs/54321"
		},
		{
			"jobId": 99,
			"employerName": "NoTitle Ltd",
			"jobTitle": "   "
		}
	],
	"totalResults": 2
}`

func TestReedAdapter_Search(t *testing.T) {
	var gotAuth string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Write([]byte(reedPayload))
	}))
	defer srv.Close()

	a := NewReedAdapter("reed-key", srv.URL, srv.Client(), testRng())

	jobs, err := a.Search(context.Background(), model.SearchRequest{Query: "python", Location: "London"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("reed-key:"))
	if gotAuth != wantAuth {
		t.Errorf("Authorization = %q, want %q", gotAuth, wantAuth)
	}
	if got := gotQuery["keywords"]; len(got) != 1 || got[0] != "python" {
		t.Errorf("keywords = %v", got)
	}
	if got := gotQuery["locationName"]; len(got) != 1 || got[0] != "London" {
		t.Errorf("locationName = %v", got)
	}
	if got := gotQuery["permanent"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("permanent = %v", got)
	}

	if len(jobs) != 1 {
		t.Fatalf("expected 1 job (blank-title record skipped), got %d", len(jobs))
	}

	j := jobs[0]
	if j.ID != "reed_54321" {
		t.Errorf("ID = %q", j.ID)
	}
	if j.Company != "Streamline Ltd" {
		t.Errorf("Company = %q", j.Company)
	}
	if j.Type != model.FullTime {
		t.Errorf("Type = %q, search is permanent-only", j.Type)
	}
	if j.Salary.Min != 55000 || j.Salary.Max != 75000 || j.Salary.Currency != "GBP" {
		t.Errorf("Salary = %+v", j.Salary)
	}
	want := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	if !j.PostedAt.Equal(want) {
		t.Errorf("PostedAt = %v, want %v", j.PostedAt, want)
	}
	if j.AIMatchScore < 60 || j.AIMatchScore > 96 {
		t.Errorf("score %d outside band", j.AIMatchScore)
	}
	if !j.DiversityFriendly {
		t.Error("description mentions diversity, flag should be set")
	}
	if j.Remote {
		t.Error("a London office role should not be marked remote")
	}
}

func TestReedAdapter_DefaultCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"jobId":1,"employerName":"A","jobTitle":"Dev","date":"01/01/2026"}],"totalResults":1}`))
	}))
	defer srv.Close()

	a := NewReedAdapter("k", srv.URL, srv.Client(), testRng())
	jobs, err := a.Search(context.Background(), model.SearchRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Salary.Currency != "GBP" {
		t.Fatalf("missing currency should default to GBP, got %+v", jobs)
	}
}

func TestReedAdapter_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := NewReedAdapter("bad-key", srv.URL, srv.Client(), testRng())
	_, err := a.Search(context.Background(), model.SearchRequest{})
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *model.HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d", httpErr.StatusCode)
	}
}

func TestParseReedDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"15/03/2026", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"2026-03-15T10:30:00Z", time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)},
		{"not a date", time.Time{}},
		{"", time.Time{}},
	}
	for _, tt := range tests {
		if got := parseReedDate(tt.in); !got.Equal(tt.want) {
			t.Errorf("parseReedDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
