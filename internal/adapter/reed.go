package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/devhire/devhire/internal/heuristic"
	"github.com/devhire/devhire/internal/model"
	"github.com/devhire/devhire/internal/query"
)

const reedDefaultBaseURL = "https://www.reed.co.uk/api/1.0"

// reedProfile tunes the match-score formula for Reed results. Reed is
// UK-centric, hence the London bonus and the lower hot-salary floor.
var reedProfile = heuristic.Profile{
	Baseline:     60,
	PerTechBonus: 6,
	Floor:        60,
	Ceiling:      96,
	Jitter:       8,
	RelevantTechs: []string{
		"react", "javascript", "typescript", "node", "python",
		"java", "go", "rust", "angular", "vue",
	},
	HotScore:       85,
	HotSalaryFloor: 50000,
}

var reedBenefitCandidates = []string{
	"Health insurance", "Pension scheme", "Flexible working",
	"Professional development", "Bonus scheme", "Stock options",
	"Remote work", "Cycle to work", "Private healthcare", "Life insurance",
}

var reedBenefitFallback = []string{
	"Competitive package", "Professional development", "Flexible working",
}

// reedJob represents a single job in the Reed search response.
type reedJob struct {
	JobID          int64   `json:"jobId"`
	EmployerName   string  `json:"employerName"`
	JobTitle       string  `json:"jobTitle"`
	LocationName   string  `json:"locationName"`
	MinimumSalary  float64 `json:"minimumSalary"`
	MaximumSalary  float64 `json:"maximumSalary"`
	Currency       string  `json:"currency"`
	Date           string  `json:"date"`
	JobDescription string  `json:"jobDescription"`
	JobURL         string  `json:"jobUrl"`
}

// reedResponse is the top-level Reed search response.
type reedResponse struct {
	Results      []reedJob `json:"results"`
	TotalResults int       `json:"totalResults"`
}

// ReedAdapter fetches jobs from the Reed UK jobs API.
type ReedAdapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
	rng     *rand.Rand
}

// NewReedAdapter creates an adapter for the Reed API. baseURL may be empty,
// in which case the public endpoint is used.
func NewReedAdapter(apiKey, baseURL string, client *http.Client, rng *rand.Rand) *ReedAdapter {
	if baseURL == "" {
		baseURL = reedDefaultBaseURL
	}
	return &ReedAdapter{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		rng:     rng,
	}
}

// Name identifies this source in logs and telemetry.
func (a *ReedAdapter) Name() string { return "reed" }

// Search queries Reed and normalizes the response into canonical jobs.
// Reed authenticates with HTTP basic auth, API key as username.
func (a *ReedAdapter) Search(ctx context.Context, req model.SearchRequest) ([]model.Job, error) {
	params := query.ForReed(req)

	q := url.Values{}
	q.Set("keywords", params.Keywords)
	if params.LocationName != "" {
		q.Set("locationName", params.LocationName)
	}
	q.Set("resultsToTake", strconv.Itoa(params.ResultsToTake))
	q.Set("resultsToSkip", strconv.Itoa(params.ResultsToSkip))
	q.Set("minimumSalary", strconv.Itoa(params.MinimumSalary))
	q.Set("permanent", strconv.FormatBool(params.Permanent))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("reed search: %w", err)
	}
	auth := base64.StdEncoding.EncodeToString([]byte(a.apiKey + ":"))
	httpReq.Header.Set("Authorization", "Basic "+auth)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("reed search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("reed search: unexpected status %d", resp.StatusCode),
		}
	}

	var reedResp reedResponse
	if err := json.NewDecoder(resp.Body).Decode(&reedResp); err != nil {
		return nil, fmt.Errorf("reed search: %w", err)
	}

	jobs := make([]model.Job, 0, len(reedResp.Results))
	for _, raw := range reedResp.Results {
		job, ok := a.mapJob(raw)
		if !ok {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// mapJob converts one raw Reed record. Records missing a title or employer
// are skipped without aborting the rest of the batch.
func (a *ReedAdapter) mapJob(raw reedJob) (model.Job, bool) {
	title := strings.TrimSpace(raw.JobTitle)
	company := strings.TrimSpace(raw.EmployerName)
	if title == "" || company == "" {
		return model.Job{}, false
	}

	salaryMin, salaryMax := heuristic.ClampRange(int(raw.MinimumSalary), int(raw.MaximumSalary))
	descLower := strings.ToLower(raw.JobDescription)
	locationLower := strings.ToLower(raw.LocationName)

	matches := reedProfile.CountMatches(raw.JobTitle, raw.JobDescription)
	bonus := 0
	if salaryMin > 0 {
		bonus = min(10, salaryMin/5000)
	}
	if strings.Contains(locationLower, "london") {
		bonus += 3
	}
	score := reedProfile.Score(a.rng, matches, bonus)

	currency := raw.Currency
	if currency == "" {
		currency = "GBP"
	}

	return model.Job{
		ID:                "reed_" + strconv.FormatInt(raw.JobID, 10),
		Title:             title,
		Company:           company,
		Location:          raw.LocationName,
		Remote:            strings.Contains(locationLower, "remote") || strings.Contains(descLower, "remote"),
		Type:              model.FullTime, // Reed search is restricted to permanent roles
		Salary:            model.Salary{Min: salaryMin, Max: salaryMax, Currency: currency},
		Description:       raw.JobDescription,
		Requirements:      heuristic.ExtractRequirements(raw.JobDescription),
		TechStack:         heuristic.DetectTech(raw.JobTitle, raw.JobDescription, nil),
		Benefits:          heuristic.DetectBenefits(raw.JobDescription, nil, reedBenefitCandidates, reedBenefitFallback),
		PostedAt:          parseReedDate(raw.Date),
		AIMatchScore:      score,
		IsHot:             reedProfile.Hot(score, salaryMin),
		Featured:          heuristic.Featured(score),
		NoWhiteboard:      heuristic.NoWhiteboard(raw.JobDescription),
		DiversityFriendly: heuristic.DiversityFriendly(raw.JobDescription),
		ExternalURL:       raw.JobURL,
	}, true
}

// parseReedDate handles Reed's day-first date format, with RFC3339 as a
// fallback. Unparseable dates yield the zero time, which ranks last.
func parseReedDate(s string) time.Time {
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
