package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fittrack/internal/logtail"
)

// renderActivity renders the newest log entries that fit on screen.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Activity Log"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")

	if m.logPath == "" {
		b.WriteString(styles.MutedText.Render("Logging to file is disabled."))
		return b.String()
	}
	if len(m.activity) == 0 {
		b.WriteString(styles.MutedText.Render("Nothing logged yet."))
		return b.String()
	}

	rows := maxInt(5, m.height-8)
	start := maxInt(0, len(m.activity)-rows)
	for _, line := range m.activity[start:] {
		b.WriteString(m.renderLogLine(line))
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render(truncateMiddle(m.logPath, maxInt(20, m.width-4))))
	return b.String()
}

func (m Model) renderLogLine(line logtail.Line) string {
	styles := m.theme.Styles()

	var level lipgloss.Style
	switch line.Level {
	case "error", "fatal", "panic":
		level = styles.DangerText
	case "warning":
		level = styles.WarningText
	case "info":
		level = styles.SuccessText
	default:
		level = styles.MutedText
	}

	var b strings.Builder
	if !line.Time.IsZero() {
		b.WriteString(styles.FaintText.Render(line.Time.Format("15:04:05")))
		b.WriteString(" ")
	}
	if line.Level != "" {
		b.WriteString(level.Bold(true).Render(padRight(strings.ToUpper(line.Level), 5)))
		b.WriteString(" ")
	}
	b.WriteString(styles.Text.Render(line.Message))
	for _, f := range line.Fields {
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(f.Key + "="))
		b.WriteString(styles.AccentText.Render(f.Value))
	}
	return b.String()
}
