package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devhire/devhire/internal/model"
)

var (
	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("24")).
			Padding(0, 1)

	jobTitleStyle = lipgloss.NewStyle().
			Bold(true)

	jobSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	selectedJobTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	selectedJobSubtitleStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("252")).
					Background(lipgloss.Color("24"))

	badgeHotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	badgeFeaturedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220")).
				Bold(true)

	badgeSavedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Width(14)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m browseModel) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.state == viewDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m browseModel) listView() string {
	var b strings.Builder

	b.WriteString(titleBarStyle.Render("DevHire — developer job board"))
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString("search: " + m.search.View() + "\n")
	} else {
		b.WriteString(hintStyle.Render(m.filterSummary()) + "\n")
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(hintStyle.Render("fetching jobs from all sources..."))
		return b.String()
	}
	if len(m.filtered) == 0 {
		b.WriteString(hintStyle.Render("no jobs match the current filters (press c to clear)"))
		return b.String()
	}

	visible := (m.height - 6) / jobItemHeight
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		job := m.filtered[i]
		title := job.Title
		if badges := m.badges(job); badges != "" {
			title += "  " + badges
		}
		subtitle := fmt.Sprintf("%s · %s · %s · %s",
			job.Company, job.Location, job.Type, formatSalary(job.Salary))

		if i == m.cursor {
			b.WriteString(selectedJobTitleStyle.Render("> "+title) + "\n")
			b.WriteString(selectedJobSubtitleStyle.Render("  "+subtitle) + "\n\n")
		} else {
			b.WriteString(jobTitleStyle.Render("  "+title) + "\n")
			b.WriteString(jobSubtitleStyle.Render("  "+subtitle) + "\n\n")
		}
	}

	b.WriteString(m.statusBar())
	return b.String()
}

func (m browseModel) detailView() string {
	job, ok := m.currentJob()
	if !ok {
		return "no job selected"
	}

	var b strings.Builder
	b.WriteString(titleBarStyle.Render(job.Title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	bar := "esc back  s save  l like  o apply  ↑/↓ scroll  q quit"
	if m.status != "" {
		bar = m.status + "  ·  " + bar
	}
	b.WriteString(statusBarStyle.Width(m.width).Render(bar))
	return b.String()
}

func (m browseModel) detailContent() string {
	job, ok := m.currentJob()
	if !ok {
		return ""
	}

	row := func(label, value string) string {
		return detailLabelStyle.Render(label) + " " + value + "\n"
	}

	var b strings.Builder
	b.WriteString(row("Company", job.Company))
	b.WriteString(row("Location", job.Location))
	b.WriteString(row("Type", string(job.Type)))
	b.WriteString(row("Salary", formatSalary(job.Salary)))
	if job.AIMatchScore > 0 {
		b.WriteString(row("Match", fmt.Sprintf("%d%%", job.AIMatchScore)))
	}
	if len(job.TechStack) > 0 {
		b.WriteString(row("Tech", strings.Join(job.TechStack, ", ")))
	}
	if badges := m.badges(job); badges != "" {
		b.WriteString(row("Flags", badges))
	}
	if !job.PostedAt.IsZero() {
		b.WriteString(row("Posted", job.PostedAt.Format("Jan 2, 2006")))
	}
	if job.ExternalURL != "" {
		b.WriteString(row("Apply", job.ExternalURL))
	}

	if len(job.Requirements) > 0 {
		b.WriteString("\n" + detailLabelStyle.Render("Requirements") + "\n")
		for _, r := range job.Requirements {
			b.WriteString("  • " + r + "\n")
		}
	}
	if len(job.Benefits) > 0 {
		b.WriteString("\n" + detailLabelStyle.Render("Benefits") + "\n")
		for _, bf := range job.Benefits {
			b.WriteString("  • " + bf + "\n")
		}
	}

	if desc := stripMarkup(job.Description); desc != "" {
		b.WriteString("\n" + detailLabelStyle.Render("Description") + "\n")
		b.WriteString(wordWrap(desc, m.viewport.Width-2))
		b.WriteString("\n")
	}

	return b.String()
}

func (m browseModel) badges(job model.Job) string {
	var parts []string
	if job.Featured {
		parts = append(parts, badgeFeaturedStyle.Render("★ featured"))
	}
	if job.IsHot {
		parts = append(parts, badgeHotStyle.Render("🔥 hot"))
	}
	if m.saved[job.ID] {
		parts = append(parts, badgeSavedStyle.Render("⊙ saved"))
	}
	if m.liked[job.ID] {
		parts = append(parts, badgeSavedStyle.Render("♥"))
	}
	return strings.Join(parts, " ")
}

func (m browseModel) filterSummary() string {
	var active []string
	if m.filters.Remote {
		active = append(active, "remote")
	}
	if len(m.filters.Types) > 0 {
		active = append(active, string(m.filters.Types[0]))
	}
	if m.filters.NoWhiteboard {
		active = append(active, "no-whiteboard")
	}
	if m.filters.DiversityFriendly {
		active = append(active, "diversity")
	}
	if len(active) == 0 {
		return "filters: none  (/ search  m remote  t type  w whiteboard  d diversity)"
	}
	return "filters: " + strings.Join(active, ", ") + "  (c to clear)"
}

func (m browseModel) statusBar() string {
	var sources []string
	for _, r := range m.lastReport {
		if r.Err != nil {
			sources = append(sources, r.Source+"✗")
		} else {
			sources = append(sources, fmt.Sprintf("%s:%d", r.Source, r.Count))
		}
	}
	left := fmt.Sprintf("%d/%d jobs", len(m.filtered), len(m.jobs))
	if len(sources) > 0 {
		left += "  " + strings.Join(sources, " ")
	}
	if m.status != "" {
		left += "  " + m.status
	}
	return statusBarStyle.Width(m.width).Render(
		left + "  ·  enter detail  s save  l like  o apply  r refetch  q quit")
}

func formatSalary(s model.Salary) string {
	switch {
	case s.Min > 0 && s.Max > 0:
		return fmt.Sprintf("%s %s–%s", s.Currency, compact(s.Min), compact(s.Max))
	case s.Min > 0:
		return fmt.Sprintf("%s %s+", s.Currency, compact(s.Min))
	case s.Max > 0:
		return fmt.Sprintf("up to %s %s", s.Currency, compact(s.Max))
	default:
		return "not specified"
	}
}

func compact(n int) string {
	if n >= 1000 && n%1000 == 0 {
		return fmt.Sprintf("%dk", n/1000)
	}
	return fmt.Sprintf("%d", n)
}
