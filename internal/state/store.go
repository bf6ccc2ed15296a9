package state

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/five82/fittrack/internal/calendar"
	"github.com/five82/fittrack/internal/day"
	"github.com/five82/fittrack/internal/export"
	"github.com/five82/fittrack/internal/session"
	"github.com/five82/fittrack/internal/weight"
	"github.com/five82/fittrack/internal/workout"
)

// Snapshot is a copy of everything the screens render for one day.
type Snapshot struct {
	Today     day.Date
	Weekday   string
	Exercises []workout.Exercise
	Custom    int // trailing entries of Exercises added this run

	Entries   []weight.Entry
	Bounds    weight.Bounds
	HasBounds bool

	Grid       []calendar.Cell
	Completed  int
	Streak     int
	BestStreak int

	Elapsed    int
	Running    bool
	Generation uint64
}

// Store owns the tracker's components for one run and serialises every
// call under a single lock, so the UI and the tick scheduler can share it.
type Store struct {
	mu        sync.Mutex
	catalog   *workout.Catalog
	history   weight.History
	calendar  calendar.Calendar
	session   *session.Session
	exportDir string
}

// NewStore builds a store over plan. Exports are written to exportDir.
func NewStore(plan workout.Plan, exportDir string) *Store {
	s := &Store{
		catalog:   workout.NewCatalog(plan),
		exportDir: exportDir,
	}
	s.session = session.New(&s.calendar)
	return s
}

// Snapshot returns a copy of the store's state as seen on today.
func (s *Store) Snapshot(today day.Date) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	weekday := today.Weekday().String()
	snap := Snapshot{
		Today:      today,
		Weekday:    weekday,
		Exercises:  s.catalog.ExercisesFor(weekday),
		Custom:     s.catalog.CustomCount(weekday),
		Entries:    s.history.Entries(),
		Grid:       s.calendar.MonthGrid(today),
		Completed:  s.calendar.Len(),
		Streak:     s.calendar.CurrentStreak(today),
		BestStreak: s.calendar.LongestStreak(),
		Elapsed:    s.session.Elapsed(),
		Running:    s.session.Running(),
		Generation: s.session.Generation(),
	}
	if b, err := s.history.PlotBounds(); err == nil {
		snap.Bounds = b
		snap.HasBounds = true
	}
	return snap
}

// AddCustomExercise adds an exercise to weekday for the rest of the run.
func (s *Store) AddCustomExercise(weekday, name, detail string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.AddCustomExercise(weekday, name, detail) {
		logrus.WithField("weekday", weekday).Debug("custom exercise ignored: blank name or detail")
		return false
	}
	logrus.WithFields(logrus.Fields{"weekday": weekday, "name": name}).Info("custom exercise added")
	return true
}

// RecordWeight parses raw and logs it against today.
func (s *Store) RecordWeight(today day.Date, raw string) (weight.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.history.Record(today, raw)
	if err != nil {
		logrus.WithError(err).Debug("weight rejected")
		return weight.Entry{}, err
	}
	logrus.WithFields(logrus.Fields{"date": entry.Date.String(), "weight": entry.Weight}).Info("weight recorded")
	return entry, nil
}

// PlotBounds returns the axis range of the weight history.
func (s *Store) PlotBounds() (weight.Bounds, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.PlotBounds()
}

// StartSession (re)starts the workout timer and marks today complete. The
// returned generation must accompany every TickSession call for this run.
func (s *Store) StartSession(today day.Date) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.session.Start(today)
	logrus.WithFields(logrus.Fields{"date": today.String(), "generation": gen}).Info("workout session started")
	return gen
}

// TickSession advances the timer for run gen. It reports false for ticks
// that belong to a stopped or replaced run.
func (s *Store) TickSession(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.TickFor(gen)
}

// StopSession stops the timer and returns the seconds counted.
func (s *Store) StopSession() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasRunning := s.session.Running()
	s.session.Stop()
	if wasRunning {
		logrus.WithField("elapsed_seconds", s.session.Elapsed()).Info("workout session stopped")
	}
	return s.session.Elapsed()
}

// IsComplete reports whether a workout was recorded on d.
func (s *Store) IsComplete(d day.Date) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendar.IsComplete(d)
}

// ExportCSV writes the weight history to the export directory and returns
// the file path.
func (s *Store) ExportCSV() (string, error) {
	s.mu.Lock()
	rows := s.history.CSVRows()
	dir := s.exportDir
	s.mu.Unlock()

	path, err := export.WriteFile(dir, rows)
	if err != nil {
		logrus.WithError(err).Error("csv export failed")
		return "", err
	}
	logrus.WithFields(logrus.Fields{"path": path, "rows": len(rows) - 1}).Info("csv exported")
	return path, nil
}

// UserMessage turns a store error into the text shown to the user.
func UserMessage(err error) string {
	var pe *weight.ParseError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &pe):
		return "Invalid input! Please enter a number."
	case errors.Is(err, weight.ErrEmptyHistory):
		return "No data to plot yet."
	default:
		return err.Error()
	}
}
