package adapter

import (
	"context"
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

const jsearchBaseURL = "https://jsearch.p.rapidapi.com/search"

// jsearchProfile tunes the match-score formula for JSearch results.
var jsearchProfile = heuristic.Profile{
	Baseline:     65,
	PerTechBonus: 5,
	Floor:        60,
	Ceiling:      98,
	Jitter:       8,
	RelevantTechs: []string{
		"react", "javascript", "typescript", "node", "python", "java", "go", "rust",
	},
	HotScore:       85,
	HotSalaryFloor: 100000,
}

var jsearchBenefitCandidates = []string{
	"Health insurance", "Dental insurance", "Vision insurance",
	"401(k)", "Paid time off", "Flexible schedule", "Remote work",
	"Professional development", "Stock options", "Bonus opportunities",
}

var jsearchBenefitFallback = []string{"Competitive benefits package"}

// jsearchJob represents a single job in the JSearch API response.
type jsearchJob struct {
	JobID              string   `json:"job_id"`
	EmployerName       string   `json:"employer_name"`
	EmployerLogo       string   `json:"employer_logo"`
	JobTitle           string   `json:"job_title"`
	JobDescription     string   `json:"job_description"`
	JobApplyLink       string   `json:"job_apply_link"`
	JobCity            string   `json:"job_city"`
	JobState           string   `json:"job_state"`
	JobCountry         string   `json:"job_country"`
	JobPostedTimestamp int64    `json:"job_posted_at_timestamp"`
	JobPostedDatetime  string   `json:"job_posted_at_datetime_utc"`
	JobEmploymentType  string   `json:"job_employment_type"`
	JobIsRemote        bool     `json:"job_is_remote"`
	JobMinSalary       float64  `json:"job_min_salary"`
	JobMaxSalary       float64  `json:"job_max_salary"`
	JobSalaryCurrency  string   `json:"job_salary_currency"`
	JobRequiredSkills  []string `json:"job_required_skills"`
	JobBenefits        []string `json:"job_benefits"`
}

// jsearchResponse is the top-level JSearch API response.
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// JSearchAdapter fetches jobs from the JSearch API on RapidAPI.
type JSearchAdapter struct {
	apiKey  string
	apiHost string
	baseURL string
	client  *http.Client
	rng     *rand.Rand
}

// NewJSearchAdapter creates an adapter for the JSearch RapidAPI endpoint.
func NewJSearchAdapter(apiKey, apiHost string, client *http.Client, rng *rand.Rand) *JSearchAdapter {
	return &JSearchAdapter{
		apiKey:  apiKey,
		apiHost: apiHost,
		baseURL: jsearchBaseURL,
		client:  client,
		rng:     rng,
	}
}

// Name identifies this source in logs and telemetry.
func (a *JSearchAdapter) Name() string { return "jsearch" }

// Search queries JSearch and normalizes the response into canonical jobs.
func (a *JSearchAdapter) Search(ctx context.Context, req model.SearchRequest) ([]model.Job, error) {
	params := query.ForJSearch(req)

	q := url.Values{}
	q.Set("query", params.Query)
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("num_pages", strconv.Itoa(params.NumPages))
	q.Set("date_posted", params.DatePosted)
	if params.EmploymentType != "" {
		q.Set("employment_types", strings.ToUpper(params.EmploymentType))
	}
	if params.RemoteOnly {
		q.Set("remote_jobs_only", "true")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch search: %w", err)
	}
	httpReq.Header.Set("X-RapidAPI-Key", a.apiKey)
	httpReq.Header.Set("X-RapidAPI-Host", a.apiHost)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("jsearch search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("jsearch search: unexpected status %d", resp.StatusCode),
		}
	}

	var jsResp jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&jsResp); err != nil {
		return nil, fmt.Errorf("jsearch search: %w", err)
	}

	jobs := make([]model.Job, 0, len(jsResp.Data))
	for _, raw := range jsResp.Data {
		job, ok := a.mapJob(raw)
		if !ok {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// mapJob converts one raw JSearch record. Records missing a title or company
// are skipped without aborting the rest of the batch.
func (a *JSearchAdapter) mapJob(raw jsearchJob) (model.Job, bool) {
	title := strings.TrimSpace(raw.JobTitle)
	company := strings.TrimSpace(raw.EmployerName)
	if title == "" || company == "" {
		return model.Job{}, false
	}

	salaryMin, salaryMax := heuristic.ClampRange(int(raw.JobMinSalary), int(raw.JobMaxSalary))

	matches := jsearchProfile.CountMatches(raw.JobTitle, raw.JobDescription)
	bonus := 0
	if salaryMin > 0 {
		bonus = min(10, salaryMin/10000)
	}
	if raw.JobIsRemote {
		bonus += 5
	}
	score := jsearchProfile.Score(a.rng, matches, bonus)

	location := "Location not specified"
	var parts []string
	for _, p := range []string{raw.JobCity, raw.JobState, raw.JobCountry} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		location = strings.Join(parts, ", ")
	}

	currency := raw.JobSalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	var postedAt time.Time
	if raw.JobPostedTimestamp > 0 {
		postedAt = time.Unix(raw.JobPostedTimestamp, 0).UTC()
	} else if t, err := time.Parse(time.RFC3339, raw.JobPostedDatetime); err == nil {
		postedAt = t
	}

	return model.Job{
		ID:                "jsearch_" + raw.JobID,
		Title:             title,
		Company:           company,
		CompanyLogo:       raw.EmployerLogo,
		Location:          location,
		Remote:            raw.JobIsRemote,
		Type:              heuristic.NormalizeType(raw.JobEmploymentType),
		Salary:            model.Salary{Min: salaryMin, Max: salaryMax, Currency: currency},
		Description:       raw.JobDescription,
		Requirements:      heuristic.ExtractRequirements(raw.JobDescription),
		TechStack:         heuristic.DetectTech(raw.JobTitle, raw.JobDescription, raw.JobRequiredSkills),
		Benefits:          heuristic.DetectBenefits(raw.JobDescription, raw.JobBenefits, jsearchBenefitCandidates, jsearchBenefitFallback),
		PostedAt:          postedAt,
		AIMatchScore:      score,
		IsHot:             jsearchProfile.Hot(score, salaryMin),
		Featured:          heuristic.Featured(score),
		NoWhiteboard:      heuristic.NoWhiteboard(raw.JobDescription),
		DiversityFriendly: heuristic.DiversityFriendly(raw.JobDescription),
		ExternalURL:       raw.JobApplyLink,
	}, true
}
