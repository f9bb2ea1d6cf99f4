package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"resumatch/internal/models"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			MarginBottom(1)

	jobTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	companyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	barFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Renderer formats analysis results and job cards for the terminal.
type Renderer struct {
	BarWidth int
}

func NewRenderer() *Renderer {
	return &Renderer{BarWidth: 40}
}

// Render returns the full results view: analysis first, then one card
// per listing. Sections missing from the state are simply omitted.
func (r *Renderer) Render(analysis *models.ResumeAnalysis, listings []models.JobListing) string {
	var b strings.Builder

	if analysis != nil {
		b.WriteString(r.RenderAnalysis(analysis))
	}

	if len(listings) > 0 {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Job matches (%d)", len(listings))))
		b.WriteString("\n")
		for i := range listings {
			b.WriteString(r.RenderJobCard(&listings[i], i+1))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderAnalysis formats the extracted skills, education and
// experience sections.
func (r *Renderer) RenderAnalysis(analysis *models.ResumeAnalysis) string {
	var b strings.Builder

	if analysis.PersonalInfo.Name != "" {
		b.WriteString(jobTitleStyle.Render(analysis.PersonalInfo.Name))
		b.WriteString("\n")
	}

	if len(analysis.Skills) > 0 {
		b.WriteString(sectionStyle.Render("Skills"))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(strings.Join(analysis.Skills, ", ")))
		b.WriteString("\n")
	}

	if len(analysis.Education) > 0 {
		b.WriteString(sectionStyle.Render("Education"))
		b.WriteString("\n")
		for _, edu := range analysis.Education {
			line := fmt.Sprintf("%s — %s (%s)", edu.Degree, edu.Institution, edu.Year)
			b.WriteString(metaStyle.Render(line))
			b.WriteString("\n")
		}
	}

	if len(analysis.Experience) > 0 {
		b.WriteString(sectionStyle.Render("Experience"))
		b.WriteString("\n")
		for _, exp := range analysis.Experience {
			line := fmt.Sprintf("%s, %s (%s)", exp.Position, exp.Company, exp.Duration)
			b.WriteString(metaStyle.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderJobCard formats one listing with its score bar.
func (r *Renderer) RenderJobCard(job *models.JobListing, index int) string {
	var b strings.Builder

	b.WriteString(jobTitleStyle.Render(fmt.Sprintf("%d. %s", index, job.Title)))
	b.WriteString("\n")
	b.WriteString(companyStyle.Render(job.Company))
	if job.Location != "" || job.Mode != "" {
		b.WriteString(metaStyle.Render(fmt.Sprintf("  %s · %s", job.Location, job.Mode)))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d%% match\n", r.RenderScoreBar(job.MatchScore), job.MatchScore))
	b.WriteString(metaStyle.Render(job.URL))

	return cardStyle.Render(b.String())
}

// RenderScoreBar draws a progress bar whose filled width is
// proportional to the score percentage.
func (r *Renderer) RenderScoreBar(score int) string {
	width := r.BarWidth
	if width <= 0 {
		width = 40
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	filled := score * width / 100
	empty := width - filled

	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", empty))
}

// RenderError formats a user-visible error line.
func (r *Renderer) RenderError(msg string) string {
	return errorStyle.Render("✗ " + msg)
}
