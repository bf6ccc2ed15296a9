// Package session counts the active seconds of a workout.
//
// The package does not own a clock. A scheduler outside the package calls
// Tick (or TickFor) once per second while a session runs. Starting a session
// marks today as a workout day through the Marker it was built with, whether
// or not the session is ever stopped.
package session

import "github.com/five82/fittrack/internal/day"

// Marker receives the completion mark when a session starts.
type Marker interface {
	MarkComplete(day.Date)
}

// Session is the Idle/Running timer. It is not safe for concurrent use.
type Session struct {
	marker  Marker
	running bool
	elapsed int
	gen     uint64
}

// New returns an idle session that reports starts to marker.
func New(marker Marker) *Session {
	return &Session{marker: marker}
}

// Start resets the counter to zero and enters Running, even when already
// running. It marks today complete and returns the generation of the new run.
func (s *Session) Start(today day.Date) uint64 {
	s.elapsed = 0
	s.running = true
	s.gen++
	if s.marker != nil {
		s.marker.MarkComplete(today)
	}
	return s.gen
}

// Tick adds one second while running. It reports whether the tick counted.
func (s *Session) Tick() bool {
	if !s.running {
		return false
	}
	s.elapsed++
	return true
}

// TickFor is Tick for a scheduler that was armed for run gen. Ticks from an
// earlier run, or that arrive after Stop, are dropped.
func (s *Session) TickFor(gen uint64) bool {
	if gen != s.gen {
		return false
	}
	return s.Tick()
}

// Stop returns to Idle. Stopping an idle session does nothing.
func (s *Session) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.gen++
}

// Elapsed returns the seconds counted in the current or most recent run.
func (s *Session) Elapsed() int {
	return s.elapsed
}

// Running reports whether the session is counting.
func (s *Session) Running() bool {
	return s.running
}

// Generation identifies the current run. It changes on every Start and Stop.
func (s *Session) Generation() uint64 {
	return s.gen
}
