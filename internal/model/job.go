package model

import (
	"context"
	"strings"
	"time"
)

// JobType is the canonical employment type of a posting.
type JobType string

const (
	FullTime   JobType = "full-time"
	PartTime   JobType = "part-time"
	Contract   JobType = "contract"
	Internship JobType = "internship"
)

// SyntheticPrefix marks fixture jobs added when live sources come up short.
// Downstream ranking and tests rely on this prefix to tell live records apart.
const SyntheticPrefix = "mock_"

// Salary is a compensation range. Zero min or max means "unspecified".
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Upper returns the best available upper bound for ranking purposes.
func (s Salary) Upper() int {
	if s.Max > 0 {
		return s.Max
	}
	return s.Min
}

// Job is the unified representation of a posting from any source.
// Adapters create it exactly once from one raw record; aggregation and
// ranking only reorder or drop, never mutate.
type Job struct {
	ID                string    `json:"id"` // source-prefixed, e.g. "reed_12345"
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	CompanyLogo       string    `json:"companyLogo,omitempty"`
	Location          string    `json:"location"`
	Remote            bool      `json:"remote"`
	Type              JobType   `json:"type"`
	Salary            Salary    `json:"salary"`
	Description       string    `json:"description"` // raw, may contain markup
	Requirements      []string  `json:"requirements"`
	TechStack         []string  `json:"techStack"`
	Benefits          []string  `json:"benefits"`
	PostedAt          time.Time `json:"postedAt"`
	AIMatchScore      int       `json:"aiMatchScore,omitempty"` // 0 = not produced
	IsHot             bool      `json:"isHot"`
	Featured          bool      `json:"featured"`
	NoWhiteboard      bool      `json:"noWhiteboard"`
	DiversityFriendly bool      `json:"diversityFriendly"`
	ExternalURL       string    `json:"externalUrl"`
}

// Synthetic reports whether the job is a local fixture rather than a
// live-sourced record.
func (j Job) Synthetic() bool {
	return strings.HasPrefix(j.ID, SyntheticPrefix)
}

// SearchRequest is the generic inbound search value. Zero-valued fields fall
// back to per-source defaults in the query builder.
type SearchRequest struct {
	Query      string
	Location   string
	RemoteOnly bool
	Page       int
	PageSize   int
}

// Filter is the user-controlled facet configuration. Every facet is
// optional: an empty slice, false flag, or zero bound leaves that facet
// unconstrained.
type Filter struct {
	Locations         []string  `json:"locations"`
	Remote            bool      `json:"remote"`
	Types             []JobType `json:"types"`
	TechStack         []string  `json:"techStack"`
	SalaryMin         int       `json:"salaryMin"`
	SalaryMax         int       `json:"salaryMax"`
	NoWhiteboard      bool      `json:"noWhiteboard"`
	DiversityFriendly bool      `json:"diversityFriendly"`
}

// User is the local profile populated by sign-up/login. There is no auth
// backend; this only personalizes the session.
type User struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Skills     []string `json:"skills"`
	Location   string   `json:"location"`
	RemoteOnly bool     `json:"remoteOnly"`
}

// Source fetches and normalizes postings from one external provider.
type Source interface {
	Name() string
	Search(ctx context.Context, req SearchRequest) ([]Job, error)
}

// ProfileStore is the key-value persistence sink for user-facing session
// state. Reads return the last written value; the core never talks to it
// directly.
type ProfileStore interface {
	SavedJobs() ([]string, error)
	SaveJob(jobID string) error
	UnsaveJob(jobID string) error
	LikedJobs() ([]string, error)
	LikeJob(jobID string) error
	UnlikeJob(jobID string) error
	Filter() (Filter, error)
	SetFilter(f Filter) error
	Profile() (*User, error)
	SetProfile(u User) error
	Theme() (string, error)
	SetTheme(mode string) error
}
