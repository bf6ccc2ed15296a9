package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fittrack/internal/day"
	"github.com/five82/fittrack/internal/prefs"
	"github.com/five82/fittrack/internal/state"
	"github.com/five82/fittrack/internal/workout"
)

type fakeTicker struct {
	fn     func()
	starts int
	stops  int
}

func (f *fakeTicker) Start(fn func()) {
	f.fn = fn
	f.starts++
}

func (f *fakeTicker) Stop() {
	f.fn = nil
	f.stops++
}

// 2024-03-05 is a Tuesday.
var fixedNow = time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *state.Store, *fakeTicker) {
	t.Helper()
	store := state.NewStore(workout.DefaultPlan(), t.TempDir())
	ticker := &fakeTicker{}
	m := New(Options{
		Store:     store,
		Ticker:    ticker,
		Now:       func() time.Time { return fixedNow },
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), store, ticker
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_WorkoutTimerScenario(t *testing.T) {
	m, store, ticker := newTestModel(t)
	today := day.Of(fixedNow)

	m = press(t, m, "w", "s")
	if ticker.starts != 1 || ticker.fn == nil {
		t.Fatalf("ticker starts = %d, want 1 armed run", ticker.starts)
	}
	if !store.IsComplete(today) {
		t.Fatalf("IsComplete(today) = false after start")
	}

	tick := ticker.fn
	for i := 0; i < 3; i++ {
		tick()
	}
	next, _ := m.Update(sessionTickMsg{})
	m = next.(Model)
	if m.snapshot.Elapsed != 3 || !m.snapshot.Running {
		t.Fatalf("snapshot = elapsed %d running %v, want 3 running", m.snapshot.Elapsed, m.snapshot.Running)
	}
	if !strings.Contains(m.View(), "Time: 3 sec") {
		t.Fatalf("view missing timer line:\n%s", m.View())
	}

	m = press(t, m, "x")
	if ticker.stops != 1 {
		t.Fatalf("ticker stops = %d, want 1", ticker.stops)
	}
	tick() // a tick that was already in flight when the timer stopped
	if got := store.Snapshot(today).Elapsed; got != 3 {
		t.Fatalf("Elapsed = %d, want 3", got)
	}
	if m.snapshot.Running {
		t.Fatalf("snapshot still running after stop")
	}
	if !strings.Contains(m.status, "3s") {
		t.Fatalf("status = %q, want elapsed summary", m.status)
	}
}

func TestModel_AddCustomExercise(t *testing.T) {
	m, _, _ := newTestModel(t)
	before := len(m.snapshot.Exercises)

	m = press(t, m, "w", "a", "Burpees", "tab", "3x8", "enter")
	if m.editing {
		t.Fatalf("form still open after valid submit")
	}
	if got := len(m.snapshot.Exercises); got != before+1 {
		t.Fatalf("exercises = %d, want %d", got, before+1)
	}
	last := m.snapshot.Exercises[len(m.snapshot.Exercises)-1]
	if last.Name != "Burpees" || last.Detail != "3x8" {
		t.Fatalf("last exercise = %#v", last)
	}
	if m.snapshot.Custom != 1 {
		t.Fatalf("snapshot.Custom = %d, want 1", m.snapshot.Custom)
	}
	if !strings.Contains(m.View(), "+ Burpees") {
		t.Fatalf("view missing custom exercise marker:\n%s", m.View())
	}
}

func TestModel_AddCustomExerciseBlankIsNoop(t *testing.T) {
	m, _, _ := newTestModel(t)
	before := len(m.snapshot.Exercises)

	// Enter on the name field only moves focus to details.
	m = press(t, m, "w", "a", "enter")
	if m.focusIdx != 1 || !m.editing {
		t.Fatalf("focusIdx = %d editing = %v, want details focused", m.focusIdx, m.editing)
	}
	m = press(t, m, "desc", "enter")
	if !m.editing {
		t.Fatalf("form closed despite blank name")
	}
	if got := len(m.snapshot.Exercises); got != before {
		t.Fatalf("exercises = %d, want unchanged %d", got, before)
	}
	if m.statusKind != statusWarn {
		t.Fatalf("statusKind = %v, want warning", m.statusKind)
	}

	m = press(t, m, "esc")
	if m.editing {
		t.Fatalf("esc did not close form")
	}
}

func TestModel_LogWeight(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, "m", "n", "abc", "enter")
	if m.status != "Invalid input! Please enter a number." {
		t.Fatalf("status = %q, want invalid input message", m.status)
	}
	if !m.editing {
		t.Fatalf("form closed after invalid input")
	}

	m = press(t, m, "70.5", "enter")
	if m.editing {
		t.Fatalf("form still open after valid weight")
	}
	if !strings.Contains(m.status, "Logged: 70.5kg on 2024-03-05") {
		t.Fatalf("status = %q", m.status)
	}
	entries := store.Snapshot(day.Of(fixedNow)).Entries
	if len(entries) != 1 || entries[0].Weight != 70.5 {
		t.Fatalf("entries = %#v, want one 70.5 entry", entries)
	}
}

func TestModel_GraphNeedsData(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, "m", "g")
	if m.showGraph || m.status != "No data to plot yet." {
		t.Fatalf("showGraph = %v status = %q, want no-data message", m.showGraph, m.status)
	}

	if _, err := store.RecordWeight(day.Of(fixedNow), "70"); err != nil {
		t.Fatalf("RecordWeight: %v", err)
	}
	m = press(t, m, "g")
	if !m.showGraph {
		t.Fatalf("graph not shown with data")
	}
	if !strings.Contains(m.View(), string(plotPoint)) {
		t.Fatalf("graph view has no points:\n%s", m.View())
	}
}

func TestModel_ExportCSV(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, "m", "x")
	if m.statusKind != statusOK || !strings.Contains(m.status, "weight_log.csv") {
		t.Fatalf("status = %q (%v), want saved path", m.status, m.statusKind)
	}
}

func TestModel_CalendarShowsCompletion(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, "w", "s", "x", "c")
	if m.currentView != ViewCalendar {
		t.Fatalf("currentView = %v, want calendar", m.currentView)
	}
	if !m.snapshot.Grid[4].Complete {
		t.Fatalf("grid day 5 not complete")
	}
	view := m.View()
	if !strings.Contains(view, "March 2024") || !strings.Contains(view, "Streak: 1 day") || !strings.Contains(view, "best 1") {
		t.Fatalf("calendar view missing title or streak:\n%s", view)
	}
}

func TestModel_MenuNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, "j", "j", "j", "j", "j", "enter")
	if m.currentView != ViewActivity {
		t.Fatalf("currentView = %v, want activity (cursor clamps at last item)", m.currentView)
	}
	m = press(t, m, "esc", "k", "enter")
	if m.currentView != ViewCalendar {
		t.Fatalf("currentView = %v, want calendar", m.currentView)
	}
}

func TestModel_ActivityLoadsLog(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.logPath = filepath.Join(t.TempDir(), "fittrack.log")
	log := `time="2024-03-05T09:30:00Z" level=info msg="weight recorded" date=2024-03-05 weight=70.5` + "\n"
	if err := os.WriteFile(m.logPath, []byte(log), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	m = next.(Model)
	if m.currentView != ViewActivity || cmd == nil {
		t.Fatalf("currentView = %v cmd = %v, want activity with a load command", m.currentView, cmd)
	}
	next, _ = m.Update(cmd())
	m = next.(Model)
	if len(m.activity) != 1 || m.activity[0].Message != "weight recorded" {
		t.Fatalf("activity = %#v", m.activity)
	}
	if view := m.View(); !strings.Contains(view, "weight recorded") || !strings.Contains(view, "weight=") {
		t.Fatalf("activity view missing entry:\n%s", view)
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	m, _, _ := newTestModel(t)
	start := m.theme.Name
	m = press(t, m, "T")
	if m.theme.Name == start {
		t.Fatalf("theme did not change")
	}
	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != m.theme.Name {
		t.Fatalf("saved theme = %q, want %q", p.Theme, m.theme.Name)
	}
}

func TestModel_HelpClosesOnAnyKey(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, "?")
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help not shown")
	}
	m = press(t, m, "z")
	if m.showHelp {
		t.Fatalf("help still shown")
	}
}
