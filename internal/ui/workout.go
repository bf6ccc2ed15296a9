package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleWorkoutKey processes keyboard input for the workout view.
func (m Model) handleWorkoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.AddExercise):
		m.openExerciseForm()
		return m, nil
	case key.Matches(msg, m.keys.StartTimer):
		m.startSession()
	case key.Matches(msg, m.keys.StopTimer):
		m.stopSession()
	}
	return m, nil
}

func (m *Model) submitExercise() {
	if m.focusIdx == 0 && strings.TrimSpace(m.detailInput.Value()) == "" {
		// Enter on the name field moves on to the detail field.
		m.toggleExerciseField()
		return
	}
	name := m.nameInput.Value()
	if m.store.AddCustomExercise(m.snapshot.Weekday, name, m.detailInput.Value()) {
		m.setStatus(statusOK, "Added %s", strings.TrimSpace(name))
		m.closeForm()
		m.refresh()
		return
	}
	// Blank name or detail: leave the form open, as the original did.
	m.setStatus(statusWarn, "Name and details are both required")
}

func (m *Model) startSession() {
	gen := m.store.StartSession(m.today())
	if m.ticker != nil {
		store, ticks := m.store, m.ticks
		m.ticker.Start(func() {
			if !store.TickSession(gen) {
				return
			}
			select {
			case ticks <- struct{}{}:
			default: // the UI has a redraw pending already
			}
		})
	}
	m.setStatus(statusOK, "Workout started, %s marked complete", m.today())
	m.refresh()
}

func (m *Model) stopSession() {
	if m.ticker != nil {
		m.ticker.Stop()
	}
	if !m.snapshot.Running {
		m.refresh()
		return
	}
	elapsed := m.store.StopSession()
	m.setStatus(statusInfo, "Workout stopped after %s", formatSeconds(elapsed))
	m.refresh()
}

// renderWorkout renders today's routine, the timer and the custom form.
func (m Model) renderWorkout() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Workout for " + snap.Weekday))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")

	if len(snap.Exercises) == 0 {
		b.WriteString(styles.MutedText.Render("Rest day. Nothing planned."))
		b.WriteString("\n")
	}
	firstCustom := len(snap.Exercises) - snap.Custom
	for i, ex := range snap.Exercises {
		if i >= firstCustom {
			b.WriteString(styles.AccentText.Render("+ "))
		} else {
			b.WriteString(styles.SuccessText.Render("✓ "))
		}
		b.WriteString(styles.Text.Bold(true).Render(ex.Name))
		b.WriteString(styles.MutedText.Render(": " + ex.Detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	timer := fmt.Sprintf("Time: %d sec", snap.Elapsed)
	if snap.Running {
		b.WriteString(styles.SuccessText.Render("● " + timer))
	} else {
		b.WriteString(styles.MutedText.Render("○ " + timer))
	}
	b.WriteString("\n")

	if m.editing {
		b.WriteString("\n")
		b.WriteString(m.renderExerciseForm())
	}
	return b.String()
}

func (m Model) renderExerciseForm() string {
	styles := m.theme.Styles()
	label := func(text string, focused bool) string {
		if focused {
			return styles.AccentText.Render(text)
		}
		return styles.MutedText.Render(text)
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Add Custom Exercise"))
	b.WriteString("\n")
	b.WriteString(label("Name:    ", m.focusIdx == 0))
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(label("Details: ", m.focusIdx == 1))
	b.WriteString(m.detailInput.View())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("tab switch field · enter add · esc cancel"))
	return b.String()
}
