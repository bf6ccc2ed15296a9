package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/fittrack/internal/day"
	"github.com/five82/fittrack/internal/logtail"
	"github.com/five82/fittrack/internal/prefs"
	"github.com/five82/fittrack/internal/state"
)

// View represents the current active screen.
type View int

const (
	ViewMenu View = iota
	ViewWorkout
	ViewWeight
	ViewCalendar
	ViewActivity
)

// Ticker is the once-per-second source that drives the workout timer.
type Ticker interface {
	Start(fn func())
	Stop()
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Ticker    Ticker
	Now       func() time.Time // clock for "today"; defaults to time.Now
	ThemeName string
	PrefsPath string
	LogPath   string // log file shown on the activity screen
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	ticker    Ticker
	now       func() time.Time
	prefsPath string
	logPath   string

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool
	menuRow     int
	showHelp    bool
	showGraph   bool

	// Data state
	snapshot state.Snapshot
	activity []logtail.Line

	// Status line
	status     string
	statusKind statusKind

	// Input forms
	editing     bool
	nameInput   textinput.Model
	detailInput textinput.Model
	weightInput textinput.Model
	focusIdx    int

	ticks chan struct{}
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		ticker:      opts.Ticker,
		now:         now,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		currentView: ViewMenu,
		ticks:       make(chan struct{}, 1),
	}
	m.initInputs()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForTick(m.ticks),
		clockCmd(ClockRefresh),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case sessionTickMsg:
		m.refresh()
		return m, waitForTick(m.ticks)

	case activityMsg:
		if msg.err != nil {
			m.setStatus(statusError, "Read log: %v", msg.err)
			return m, nil
		}
		m.activity = msg.lines
		return m, nil

	case clockMsg:
		// Picks up the date change at midnight.
		m.refresh()
		return m, clockCmd(ClockRefresh)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) today() day.Date {
	return day.Of(m.now())
}

func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	m.snapshot = m.store.Snapshot(m.today())
}

func (m *Model) setStatus(kind statusKind, format string, args ...any) {
	m.statusKind = kind
	m.status = fmt.Sprintf(format, args...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// Text entry takes every key except confirm/cancel/field switching.
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch {
	case msg.String() == "ctrl+c", key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				logrus.WithError(err).Warn("save prefs")
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewMenu
		m.showGraph = false
		return m, nil

	case key.Matches(msg, m.keys.ViewWorkout):
		return m, m.switchView(ViewWorkout)

	case key.Matches(msg, m.keys.ViewWeight):
		return m, m.switchView(ViewWeight)

	case key.Matches(msg, m.keys.ViewCalendar):
		return m, m.switchView(ViewCalendar)

	case key.Matches(msg, m.keys.ViewActivity):
		return m, m.switchView(ViewActivity)
	}

	switch m.currentView {
	case ViewMenu:
		return m.handleMenuKey(msg)
	case ViewWorkout:
		return m.handleWorkoutKey(msg)
	case ViewWeight:
		return m.handleWeightKey(msg)
	case ViewActivity:
		if key.Matches(msg, m.keys.Refresh) {
			return m, loadActivityCmd(m.logPath)
		}
	}
	return m, nil
}

func (m *Model) switchView(v View) tea.Cmd {
	m.currentView = v
	m.status = ""
	m.showGraph = false
	m.refresh()
	if v == ViewActivity {
		return loadActivityCmd(m.logPath)
	}
	return nil
}

// handleEditKey routes keys while a text form is open.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.submitForm()
		return m, nil

	case m.currentView == ViewWorkout && key.Matches(msg, m.keys.NextField, m.keys.PrevField):
		m.toggleExerciseField()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewWorkout:
		if m.focusIdx == 0 {
			m.nameInput, cmd = m.nameInput.Update(msg)
		} else {
			m.detailInput, cmd = m.detailInput.Update(msg)
		}
	case ViewWeight:
		m.weightInput, cmd = m.weightInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) submitForm() {
	switch m.currentView {
	case ViewWorkout:
		m.submitExercise()
	case ViewWeight:
		m.submitWeight()
	}
}

func (m *Model) closeForm() {
	m.editing = false
	m.nameInput.Blur()
	m.detailInput.Blur()
	m.weightInput.Blur()
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())

	if line := m.renderStatusLine(); line != "" {
		b.WriteString("\n\n")
		b.WriteString(line)
	}
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewWorkout:
		return m.renderWorkout()
	case ViewWeight:
		return m.renderWeight()
	case ViewCalendar:
		return m.renderCalendar()
	case ViewActivity:
		return m.renderActivity()
	default:
		return m.renderMenu()
	}
}

func (m Model) renderStatusLine() string {
	if m.status == "" {
		return ""
	}
	styles := m.theme.Styles()
	switch m.statusKind {
	case statusOK:
		return styles.SuccessText.Render("✓ " + m.status)
	case statusWarn:
		return styles.WarningText.Render("⚠ " + m.status)
	case statusError:
		return styles.DangerText.Render("✗ " + m.status)
	default:
		return styles.MutedText.Render(m.status)
	}
}

// Messages

type sessionTickMsg struct{}

type clockMsg time.Time

type activityMsg struct {
	lines []logtail.Line
	err   error
}

// Commands

// waitForTick blocks until the scheduler reports a counted tick.
func waitForTick(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return sessionTickMsg{}
	}
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		lines, err := logtail.Tail(path, activityLines)
		return activityMsg{lines: lines, err: err}
	}
}

func clockCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
