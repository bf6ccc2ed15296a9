package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var viewTitles = map[View]string{
	ViewMenu:     "Menu",
	ViewWorkout:  "Workout",
	ViewWeight:   "Weight",
	ViewCalendar: "Calendar",
	ViewActivity: "Activity",
}

// renderHeader renders the status bar: logo, screen, date, timer and streak.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot

	timer := bg.Render("○ idle", styles.MutedText)
	if snap.Running {
		timer = bg.Render("● "+formatSeconds(snap.Elapsed), styles.SuccessText)
	}

	parts := []string{
		bg.Render("fittrack", styles.Logo),
		bg.Render(viewTitles[m.currentView], styles.AccentText.Bold(true)),
		bg.Render(fmt.Sprintf("%s %s", snap.Weekday, snap.Today), styles.Text),
		timer,
		bg.Render("streak", styles.FaintText) + bg.Space() + bg.Render(fmt.Sprint(snap.Streak), styles.WarningText),
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderCommandBar lists the keys that act on the current screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var hints [][2]string
	switch {
	case m.editing:
		hints = [][2]string{{"enter", "save"}, {"esc", "cancel"}}
	case m.currentView == ViewWorkout:
		hints = [][2]string{{"a", "add exercise"}, {"s", "start"}, {"x", "stop"}, {"esc", "menu"}}
	case m.currentView == ViewWeight:
		hints = [][2]string{{"n", "log weight"}, {"g", "graph"}, {"x", "export csv"}, {"esc", "menu"}}
	case m.currentView == ViewCalendar:
		hints = [][2]string{{"esc", "menu"}}
	case m.currentView == ViewActivity:
		hints = [][2]string{{"r", "reload"}, {"esc", "menu"}}
	default:
		hints = [][2]string{{"j/k", "move"}, {"enter", "open"}}
	}
	hints = append(hints, [2]string{"?", "help"})

	out := ""
	for i, h := range hints {
		if i > 0 {
			out += styles.FaintText.Render("  ")
		}
		out += styles.WarningText.Render(h[0]) + " " + styles.MutedText.Render(h[1])
	}
	return out
}
