package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const calendarColumns = 7

// renderCalendar renders the 31-slot month grid. Completed days are green,
// missed days red; slots that spill into next month are dimmed.
func (m Model) renderCalendar() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var b strings.Builder
	title := fmt.Sprintf("Workout Calendar · %s %d", snap.Today.Month, snap.Today.Year)
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", calendarColumns*5)))
	b.WriteString("\n")

	done := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Success)).
		Foreground(lipgloss.Color(m.theme.Background)).
		Bold(true)
	missed := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Danger)).
		Foreground(lipgloss.Color(m.theme.Background))
	spill := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Foreground(lipgloss.Color(m.theme.Faint))

	for i, cell := range snap.Grid {
		label := padLeft(fmt.Sprint(cell.Day), 3) + " "
		style := missed
		switch {
		case !cell.InMonth:
			style = spill
		case cell.Complete:
			style = done
		}
		if cell.Date == snap.Today {
			style = style.Underline(true)
		}
		b.WriteString(style.Render(label))
		if (i+1)%calendarColumns == 0 {
			b.WriteString("\n\n")
		} else {
			b.WriteString(" ")
		}
	}

	b.WriteString("\n\n")
	streak := fmt.Sprintf("Streak: %d %s", snap.Streak, plural(snap.Streak, "day", "days"))
	best := fmt.Sprintf("best %d", snap.BestStreak)
	total := fmt.Sprintf("%d %s logged", snap.Completed, plural(snap.Completed, "workout", "workouts"))
	b.WriteString(styles.Text.Bold(true).Render(streak))
	b.WriteString(styles.MutedText.Render("  ·  " + best + "  ·  " + total))
	return b.String()
}
