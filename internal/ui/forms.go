package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// initInputs initializes the text inputs for both forms.
func (m *Model) initInputs() {
	name := textinput.New()
	name.Placeholder = "Exercise name"
	name.CharLimit = 60
	name.Width = 30

	detail := textinput.New()
	detail.Placeholder = "e.g. 3 sets x 12 reps"
	detail.CharLimit = 60
	detail.Width = 30

	w := textinput.New()
	w.Placeholder = "e.g. 72.5"
	w.CharLimit = 10
	w.Width = 12

	m.nameInput = name
	m.detailInput = detail
	m.weightInput = w
}

// openExerciseForm shows the custom exercise form with the name field focused.
func (m *Model) openExerciseForm() {
	m.nameInput.Reset()
	m.detailInput.Reset()
	m.focusIdx = 0
	m.nameInput.Focus()
	m.detailInput.Blur()
	m.editing = true
}

func (m *Model) toggleExerciseField() {
	if m.focusIdx == 0 {
		m.focusIdx = 1
		m.nameInput.Blur()
		m.detailInput.Focus()
		return
	}
	m.focusIdx = 0
	m.detailInput.Blur()
	m.nameInput.Focus()
}

// openWeightForm shows the weight entry field.
func (m *Model) openWeightForm() {
	m.weightInput.Reset()
	m.weightInput.Focus()
	m.editing = true
}
