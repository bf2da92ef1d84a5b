package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devhire/devhire/internal/heuristic"
	"github.com/devhire/devhire/internal/model"
	"github.com/devhire/devhire/internal/query"
)

const remoteOKDefaultBaseURL = "https://remoteok.io/api"

// remoteOKMaxResults caps how many feed entries are mapped per search.
const remoteOKMaxResults = 50

// remoteOKProfile tunes the match-score formula for RemoteOK results. The
// feed has no reliable salary data, so the hot flag is score-only.
var remoteOKProfile = heuristic.Profile{
	Baseline:     60,
	PerTechBonus: 7,
	Floor:        60,
	Ceiling:      95,
	Jitter:       10,
	RelevantTechs: []string{
		"react", "javascript", "typescript", "node", "python",
	},
	HotScore: 85,
}

// Every RemoteOK posting is remote by definition.
var remoteOKBenefits = []string{"Remote work", "Flexible hours", "Global team"}

// remoteOKJob represents a single entry in the RemoteOK feed. The first
// element of the feed is a legal notice, not a job.
type remoteOKJob struct {
	ID          string   `json:"id"`
	Epoch       int64    `json:"epoch"`
	Company     string   `json:"company"`
	CompanyLogo string   `json:"company_logo"`
	Position    string   `json:"position"`
	Tags        []string `json:"tags"`
	Logo        string   `json:"logo"`
	Description string   `json:"description"`
	Salary      string   `json:"salary"`
	Apply       string   `json:"apply"`
	URL         string   `json:"url"`
}

// RemoteOKAdapter fetches jobs from the public RemoteOK feed. No credentials
// are required.
type RemoteOKAdapter struct {
	baseURL string
	client  *http.Client
	rng     *rand.Rand
}

// NewRemoteOKAdapter creates an adapter for the RemoteOK feed. baseURL may
// be empty, in which case the public endpoint is used.
func NewRemoteOKAdapter(baseURL string, client *http.Client, rng *rand.Rand) *RemoteOKAdapter {
	if baseURL == "" {
		baseURL = remoteOKDefaultBaseURL
	}
	return &RemoteOKAdapter{
		baseURL: baseURL,
		client:  client,
		rng:     rng,
	}
}

// Name identifies this source in logs and telemetry.
func (a *RemoteOKAdapter) Name() string { return "remoteok" }

// Search fetches the RemoteOK feed and normalizes it into canonical jobs.
// The feed ignores free-text queries; the query builder requests a fixed
// developer tag set instead.
func (a *RemoteOKAdapter) Search(ctx context.Context, req model.SearchRequest) ([]model.Job, error) {
	params := query.ForRemoteOK(req)

	q := url.Values{}
	q.Set("tags", strings.Join(params.Tags, ","))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("remoteok search: %w", err)
	}
	httpReq.Header.Set("User-Agent", "DevHire Job Board")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("remoteok search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("remoteok search: unexpected status %d", resp.StatusCode),
		}
	}

	var feed []remoteOKJob
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("remoteok search: %w", err)
	}

	// Skip the metadata element at the head of the feed.
	if len(feed) > 0 {
		feed = feed[1:]
	}
	if len(feed) > remoteOKMaxResults {
		feed = feed[:remoteOKMaxResults]
	}

	jobs := make([]model.Job, 0, len(feed))
	for _, raw := range feed {
		job, ok := a.mapJob(raw)
		if !ok {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// mapJob converts one raw feed entry. Entries missing a position or company
// are skipped without aborting the rest of the batch.
func (a *RemoteOKAdapter) mapJob(raw remoteOKJob) (model.Job, bool) {
	title := strings.TrimSpace(raw.Position)
	company := strings.TrimSpace(raw.Company)
	if title == "" || company == "" {
		return model.Job{}, false
	}

	salaryMin, salaryMax := heuristic.ParseSalary(raw.Salary)

	matches := remoteOKProfile.CountMatches(raw.Tags...)
	score := remoteOKProfile.Score(a.rng, matches, 0)

	logo := raw.CompanyLogo
	if logo == "" {
		logo = raw.Logo
	}

	externalURL := raw.Apply
	if externalURL == "" {
		externalURL = raw.URL
	}

	var postedAt time.Time
	if raw.Epoch > 0 {
		postedAt = time.Unix(raw.Epoch, 0).UTC()
	}

	return model.Job{
		ID:                "remoteok_" + raw.ID,
		Title:             title,
		Company:           company,
		CompanyLogo:       logo,
		Location:          "Remote",
		Remote:            true,
		Type:              model.FullTime,
		Salary:            model.Salary{Min: salaryMin, Max: salaryMax, Currency: "USD"},
		Description:       raw.Description,
		Requirements:      heuristic.ExtractRequirements(raw.Description),
		TechStack:         heuristic.DetectTech(raw.Position, raw.Description, raw.Tags),
		Benefits:          append([]string(nil), remoteOKBenefits...),
		PostedAt:          postedAt,
		AIMatchScore:      score,
		IsHot:             remoteOKProfile.Hot(score, salaryMin),
		Featured:          heuristic.Featured(score),
		NoWhiteboard:      heuristic.NoWhiteboard(raw.Description),
		DiversityFriendly: heuristic.DiversityFriendly(raw.Description),
		ExternalURL:       externalURL,
	}, true
}
