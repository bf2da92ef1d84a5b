// Package browse is the interactive terminal UI for the job board: a
// list/detail view over aggregated jobs with local filtering, saving, and
// liking. It is a thin consumer of the aggregation core and the profile
// store.
package browse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devhire/devhire/internal/aggregate"
	"github.com/devhire/devhire/internal/filter"
	"github.com/devhire/devhire/internal/model"
)

// Lines per job item in the list view (title + subtitle + blank separator).
const jobItemHeight = 3

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

// resultMsg is sent when an async aggregate call completes.
type resultMsg struct {
	res *aggregate.Result
}

// storeErrMsg surfaces a persistence failure in the status bar.
type storeErrMsg struct {
	err error
}

type browseModel struct {
	co     *aggregate.Coordinator
	store  model.ProfileStore
	logger *slog.Logger

	jobs     []model.Job // full aggregated set
	filtered []model.Job // after local facets + search text
	saved    map[string]bool
	liked    map[string]bool
	filters  model.Filter

	state      viewState
	cursor     int
	viewport   viewport.Model
	search     textinput.Model
	searching  bool
	loading    bool
	width      int
	height     int
	status     string
	lastReport []aggregate.SourceReport
}

// Run starts the browsing UI and blocks until the user quits.
func Run(co *aggregate.Coordinator, st model.ProfileStore, logger *slog.Logger) error {
	m := newBrowseModel(co, st, logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("browse ui: %w", err)
	}
	return nil
}

func newBrowseModel(co *aggregate.Coordinator, st model.ProfileStore, logger *slog.Logger) browseModel {
	search := textinput.New()
	search.Placeholder = "title, company, or tech"
	search.CharLimit = 80

	saved := make(map[string]bool)
	liked := make(map[string]bool)
	if ids, err := st.SavedJobs(); err == nil {
		for _, id := range ids {
			saved[id] = true
		}
	}
	if ids, err := st.LikedJobs(); err == nil {
		for _, id := range ids {
			liked[id] = true
		}
	}
	filters, _ := st.Filter()

	return browseModel{
		co:      co,
		store:   st,
		logger:  logger,
		saved:   saved,
		liked:   liked,
		filters: filters,
		search:  search,
		loading: true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.searchCmd(model.SearchRequest{})
}

// searchCmd issues an aggregate call off the UI loop. Stale responses are
// dropped by token when they arrive.
func (m browseModel) searchCmd(req model.SearchRequest) tea.Cmd {
	co := m.co
	return func() tea.Msg {
		return resultMsg{res: co.Aggregate(context.Background(), req)}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width-4, msg.Height-6)
		if m.state == viewDetail {
			m.viewport.SetContent(m.detailContent())
		}
		return m, nil

	case resultMsg:
		// A newer search was issued while this one was in flight.
		if !m.co.IsLatest(msg.res) {
			return m, nil
		}
		m.loading = false
		m.jobs = msg.res.Jobs
		m.lastReport = msg.res.Reports
		m.status = ""
		m.applyFilters()
		return m, nil

	case storeErrMsg:
		m.status = "store error: " + msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			m.applyFilters()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.applyFilters()
			return m, cmd
		}
	}

	if m.state == viewDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m browseModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.filtered) > 0 {
			m.state = viewDetail
			if m.viewport.Width > 0 {
				m.viewport.SetContent(m.detailContent())
				m.viewport.GotoTop()
			}
		}

	case "/":
		m.searching = true
		m.search.Focus()

	case "r":
		m.loading = true
		m.status = ""
		return m, m.searchCmd(model.SearchRequest{Query: m.search.Value()})

	case "s":
		return m.toggleSaved()
	case "l":
		return m.toggleLiked()
	case "o":
		return m.showApplyURL()

	case "m":
		m.filters.Remote = !m.filters.Remote
		return m.filtersChanged()
	case "w":
		m.filters.NoWhiteboard = !m.filters.NoWhiteboard
		return m.filtersChanged()
	case "d":
		m.filters.DiversityFriendly = !m.filters.DiversityFriendly
		return m.filtersChanged()
	case "t":
		m.filters.Types = nextTypeFilter(m.filters.Types)
		return m.filtersChanged()
	case "c":
		m.filters = model.Filter{}
		m.search.SetValue("")
		return m.filtersChanged()
	}
	return m, nil
}

func (m browseModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.state = viewList
		return m, nil
	case "s":
		return m.toggleSaved()
	case "l":
		return m.toggleLiked()
	case "o":
		return m.showApplyURL()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
}

func (m browseModel) toggleSaved() (tea.Model, tea.Cmd) {
	job, ok := m.currentJob()
	if !ok {
		return m, nil
	}
	var err error
	if m.saved[job.ID] {
		delete(m.saved, job.ID)
		err = m.store.UnsaveJob(job.ID)
	} else {
		m.saved[job.ID] = true
		err = m.store.SaveJob(job.ID)
	}
	if err != nil {
		return m, func() tea.Msg { return storeErrMsg{err: err} }
	}
	return m, nil
}

func (m browseModel) toggleLiked() (tea.Model, tea.Cmd) {
	job, ok := m.currentJob()
	if !ok {
		return m, nil
	}
	var err error
	if m.liked[job.ID] {
		delete(m.liked, job.ID)
		err = m.store.UnlikeJob(job.ID)
	} else {
		m.liked[job.ID] = true
		err = m.store.LikeJob(job.ID)
	}
	if err != nil {
		return m, func() tea.Msg { return storeErrMsg{err: err} }
	}
	return m, nil
}

// showApplyURL puts the selected job's application link in the status bar,
// where it can be copied from the terminal.
func (m browseModel) showApplyURL() (tea.Model, tea.Cmd) {
	job, ok := m.currentJob()
	if !ok {
		return m, nil
	}
	if job.ExternalURL == "" {
		m.status = "no apply link for this job"
	} else {
		m.status = "apply: " + job.ExternalURL
	}
	return m, nil
}

func (m *browseModel) filtersChanged() (tea.Model, tea.Cmd) {
	m.applyFilters()
	if err := m.store.SetFilter(m.filters); err != nil {
		return m, func() tea.Msg { return storeErrMsg{err: err} }
	}
	return m, nil
}

func (m *browseModel) applyFilters() {
	m.filtered = filter.Apply(m.jobs, m.filters, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m browseModel) currentJob() (model.Job, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return model.Job{}, false
	}
	return m.filtered[m.cursor], true
}

// nextTypeFilter cycles the type facet: all → full-time → part-time →
// contract → internship → all.
func nextTypeFilter(current []model.JobType) []model.JobType {
	order := []model.JobType{model.FullTime, model.PartTime, model.Contract, model.Internship}
	if len(current) == 0 {
		return []model.JobType{order[0]}
	}
	for i, t := range order {
		if current[0] == t {
			if i == len(order)-1 {
				return nil
			}
			return []model.JobType{order[i+1]}
		}
	}
	return nil
}
