package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fittrack/internal/state"
	"github.com/five82/fittrack/internal/weight"
)

// recentEntries is how many weight entries the list shows.
const recentEntries = 8

// handleWeightKey processes keyboard input for the weight view.
func (m Model) handleWeightKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.LogWeight):
		m.showGraph = false
		m.openWeightForm()
	case key.Matches(msg, m.keys.ToggleGraph):
		m.toggleGraph()
	case key.Matches(msg, m.keys.Export):
		m.exportCSV()
	}
	return m, nil
}

func (m *Model) submitWeight() {
	entry, err := m.store.RecordWeight(m.today(), m.weightInput.Value())
	if err != nil {
		m.setStatus(statusError, "%s", state.UserMessage(err))
		m.weightInput.Reset()
		return
	}
	m.setStatus(statusOK, "Logged: %skg on %s", weight.FormatWeight(entry.Weight), entry.Date)
	m.closeForm()
	m.refresh()
}

func (m *Model) toggleGraph() {
	if m.showGraph {
		m.showGraph = false
		return
	}
	if _, err := m.store.PlotBounds(); err != nil {
		m.setStatus(statusWarn, "%s", state.UserMessage(err))
		return
	}
	m.showGraph = true
	m.status = ""
	m.refresh()
}

func (m *Model) exportCSV() {
	path, err := m.store.ExportCSV()
	if err != nil {
		m.setStatus(statusError, "Export failed: %v", err)
		return
	}
	m.setStatus(statusOK, "CSV saved to %s", truncateMiddle(path, 60))
}

// renderWeight renders the entry form, recent entries and the optional graph.
func (m Model) renderWeight() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Weight Tracker"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")

	if m.editing {
		b.WriteString(styles.AccentText.Render("Enter your weight (kg): "))
		b.WriteString(m.weightInput.View())
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("enter log · esc cancel"))
		b.WriteString("\n\n")
	}

	if m.showGraph && snap.HasBounds {
		b.WriteString(m.renderGraph())
		return b.String()
	}

	if len(snap.Entries) == 0 {
		b.WriteString(styles.MutedText.Render("No weight logged yet."))
		return b.String()
	}

	start := maxInt(0, len(snap.Entries)-recentEntries)
	if start > 0 {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("… %d earlier", start)))
		b.WriteString("\n")
	}
	for i, e := range snap.Entries[start:] {
		idx := start + i
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%3d  ", idx+1)))
		b.WriteString(styles.MutedText.Render(e.Date.String()))
		b.WriteString("  ")
		b.WriteString(styles.Text.Bold(true).Render(padLeft(weight.FormatWeight(e.Weight), 7)))
		b.WriteString(styles.MutedText.Render(" kg"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderGraph() string {
	styles := m.theme.Styles()
	width := clampInt(m.width-12, GraphMinWidth, GraphMaxWidth)
	height := clampInt(m.height-12, GraphMinHeight, GraphMaxHeight)

	chart := renderPlot(m.snapshot.Entries, m.snapshot.Bounds, width, height)

	var b strings.Builder
	b.WriteString(styles.MutedText.Render("Weight (kg) by entry"))
	b.WriteString("\n")
	b.WriteString(styles.SuccessText.Render(chart))
	return b.String()
}
