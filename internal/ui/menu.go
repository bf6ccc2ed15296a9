package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	key   string
	label string
	view  View
}

var menuItems = []menuItem{
	{"w", "View Workout Routine", ViewWorkout},
	{"m", "Weight Tracker", ViewWeight},
	{"c", "Calendar Log", ViewCalendar},
	{"l", "Activity Log", ViewActivity},
}

// handleMenuKey moves the menu cursor and opens the selected screen.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.menuRow < len(menuItems)-1 {
			m.menuRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.menuRow > 0 {
			m.menuRow--
		}
	case key.Matches(msg, m.keys.Confirm):
		return m, m.switchView(menuItems[m.menuRow].view)
	}
	return m, nil
}

func (m Model) renderMenu() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Logo.Render("Welcome to fittrack"))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		line := padRight(item.label, 24)
		hint := styles.WarningText.Render("[" + item.key + "]")
		if i == m.menuRow {
			b.WriteString(styles.Selected.Render("▸ " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString(" ")
		b.WriteString(hint)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("e to exit · h for help"))
	return b.String()
}
