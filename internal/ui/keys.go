package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// View switching
	ViewWorkout  key.Binding
	ViewWeight   key.Binding
	ViewCalendar key.Binding
	ViewActivity key.Binding

	// Menu navigation
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding

	// Workout actions
	AddExercise key.Binding
	StartTimer  key.Binding
	StopTimer   key.Binding

	// Weight actions
	LogWeight   key.Binding
	ToggleGraph key.Binding
	Export      key.Binding

	// Activity
	Refresh key.Binding

	// Forms
	NextField key.Binding
	PrevField key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to menu"),
		),

		// View switching
		ViewWorkout: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Workout routine"),
		),
		ViewWeight: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Weight tracker"),
		),
		ViewCalendar: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Calendar log"),
		),
		ViewActivity: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Activity log"),
		),

		// Menu navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),

		// Workout actions
		AddExercise: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add custom exercise"),
		),
		StartTimer: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Start workout timer"),
		),
		StopTimer: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Stop timer"),
		),

		// Weight actions
		LogWeight: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Log weight"),
		),
		ToggleGraph: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Show/hide graph"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export to CSV"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload activity"),
		),

		// Forms
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewWorkout, k.ViewWeight, k.ViewCalendar, k.ViewActivity, k.Escape},
		{k.Up, k.Down, k.Confirm},
		{k.AddExercise, k.StartTimer, k.StopTimer},
		{k.LogWeight, k.ToggleGraph, k.Export, k.Refresh},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
