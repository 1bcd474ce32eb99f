package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

var (
	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C7D2FE"))
	cardConceptStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("#A5B4FC"))
	cardFactStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))
	cardMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))
	cardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6366F1")).
			Padding(1, 2).
			Width(72)
)

// renderRecord draws one epiphany as a bordered card.
func renderRecord(r models.Epiphany) string {
	meta := fmt.Sprintf("%s · %s · id %s", r.Date.Format("Jan 2, 2006"), r.Category, r.ID)
	if r.IsFavorite {
		meta += " · ★"
	}
	if r.IsChallenge {
		meta += " · challenge"
	}

	lines := []string{
		cardTitleStyle.Render(r.Content.Title),
		cardConceptStyle.Render(r.Content.Concept),
		"",
		r.Content.Explanation,
		"",
		cardFactStyle.Render("Did you know? " + r.Content.Fact),
		cardMetaStyle.Render(fmt.Sprintf("%q", r.OriginalInput)),
		cardMetaStyle.Render(meta),
	}
	if r.ImageData != "" {
		lines = append(lines, cardMetaStyle.Render(fmt.Sprintf("(visual attached, %d bytes base64)", len(r.ImageData))))
	}
	return cardBoxStyle.Render(strings.Join(lines, "\n"))
}

// renderHistoryLine draws one compact list row.
func renderHistoryLine(r models.Epiphany) string {
	fav := " "
	if r.IsFavorite {
		fav = "★"
	}
	return fmt.Sprintf("%s %-14s %s  %-10s %-32s %q",
		fav, r.ID, r.Date.Format("2006-01-02"), r.Category, r.Content.Title, truncate(r.OriginalInput, 40))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
