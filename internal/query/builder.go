// Package query turns a generic search request into each source's specific
// parameter shape. Sources that don't support an option ignore it rather
// than erroring.
package query

import (
	"fmt"
	"strings"

	"github.com/devhire/devhire/internal/model"
)

// DefaultQuery is the broad multi-role query used when the request carries
// no free text, so an empty search box still yields a full board.
const DefaultQuery = "software developer OR frontend developer OR backend developer OR full stack developer OR devops engineer OR data scientist"

// DefaultPageSize is the per-source result page size.
const DefaultPageSize = 100

// JSearchParams is the request shape for the JSearch RapidAPI endpoint.
type JSearchParams struct {
	Query          string // free text, location folded in as " in <location>"
	Page           int
	NumPages       int
	DatePosted     string // fixed window
	EmploymentType string // upper-cased, empty = all
	RemoteOnly     bool
}

// ReedParams is the request shape for the Reed UK jobs API.
type ReedParams struct {
	Keywords      string
	LocationName  string
	ResultsToTake int
	ResultsToSkip int
	MinimumSalary int
	Permanent     bool
}

// RemoteOKParams is the request shape for the RemoteOK feed. The feed has no
// query, location, or pagination support; only a fixed tag list.
type RemoteOKParams struct {
	Tags []string
}

// remoteOKTags is the fixed tag set requested from the RemoteOK feed.
var remoteOKTags = []string{"dev", "javascript", "react", "python", "nodejs"}

// ForJSearch maps the generic request onto JSearch parameters.
func ForJSearch(req model.SearchRequest) JSearchParams {
	q := queryOrDefault(req)
	if loc := strings.TrimSpace(req.Location); loc != "" {
		q = fmt.Sprintf("%s in %s", q, loc)
	}
	return JSearchParams{
		Query:      q,
		Page:       pageOrDefault(req),
		NumPages:   1,
		DatePosted: "month",
		RemoteOnly: req.RemoteOnly,
	}
}

// ForReed maps the generic request onto Reed parameters. Reed has no remote
// flag; RemoteOnly is dropped.
func ForReed(req model.SearchRequest) ReedParams {
	size := req.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return ReedParams{
		Keywords:      queryOrDefault(req),
		LocationName:  strings.TrimSpace(req.Location),
		ResultsToTake: size,
		ResultsToSkip: (pageOrDefault(req) - 1) * size,
		MinimumSalary: 30000,
		Permanent:     true,
	}
}

// ForRemoteOK returns the fixed RemoteOK tag parameters. Query, location,
// and pagination are unsupported by the feed and silently ignored.
func ForRemoteOK(model.SearchRequest) RemoteOKParams {
	return RemoteOKParams{Tags: append([]string(nil), remoteOKTags...)}
}

func queryOrDefault(req model.SearchRequest) string {
	if q := strings.TrimSpace(req.Query); q != "" {
		return q
	}
	return DefaultQuery
}

func pageOrDefault(req model.SearchRequest) int {
	if req.Page > 0 {
		return req.Page
	}
	return 1
}
