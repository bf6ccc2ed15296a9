package state

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/five82/fittrack/internal/day"
	"github.com/five82/fittrack/internal/weight"
	"github.com/five82/fittrack/internal/workout"
)

// 2024-03-05 is a Tuesday.
var tuesday = day.New(2024, time.March, 5)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(workout.DefaultPlan(), t.TempDir())
}

func TestStore_SnapshotClone(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.RecordWeight(tuesday, "70"); err != nil {
		t.Fatalf("RecordWeight: %v", err)
	}

	snap := s.Snapshot(tuesday)
	if snap.Weekday != "Tuesday" {
		t.Fatalf("Weekday = %q, want Tuesday", snap.Weekday)
	}
	if len(snap.Exercises) != 2 || snap.Exercises[0].Name != "Yoga Stretching" {
		t.Fatalf("Exercises = %#v, want Tuesday plan", snap.Exercises)
	}

	snap.Entries[0].Weight = 1
	snap.Exercises[0].Name = "changed"
	snap2 := s.Snapshot(tuesday)
	if snap2.Entries[0].Weight != 70 {
		t.Fatalf("Snapshot should clone entries; got %v want 70", snap2.Entries[0].Weight)
	}
	if snap2.Exercises[0].Name != "Yoga Stretching" {
		t.Fatalf("Snapshot should clone exercises; got %q", snap2.Exercises[0].Name)
	}
}

func TestStore_SessionScenario(t *testing.T) {
	s := newTestStore(t)

	gen := s.StartSession(tuesday)
	for i := 0; i < 3; i++ {
		if !s.TickSession(gen) {
			t.Fatalf("tick %d was rejected", i+1)
		}
	}
	if got := s.StopSession(); got != 3 {
		t.Fatalf("StopSession = %d, want 3", got)
	}
	if s.TickSession(gen) {
		t.Fatalf("tick after stop was accepted")
	}
	if !s.IsComplete(tuesday) {
		t.Fatalf("IsComplete(%v) = false, want true", tuesday)
	}

	snap := s.Snapshot(tuesday)
	if snap.Running || snap.Elapsed != 3 {
		t.Fatalf("snapshot timer = running:%v elapsed:%d, want idle 3", snap.Running, snap.Elapsed)
	}
	if !snap.Grid[4].Complete {
		t.Fatalf("grid slot 5 should be complete")
	}
	if snap.Completed != 1 || snap.Streak != 1 {
		t.Fatalf("Completed=%d Streak=%d, want 1 and 1", snap.Completed, snap.Streak)
	}
}

func TestStore_PlotBounds(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.PlotBounds(); !errors.Is(err, weight.ErrEmptyHistory) {
		t.Fatalf("PlotBounds error = %v, want ErrEmptyHistory", err)
	}
	if snap := s.Snapshot(tuesday); snap.HasBounds {
		t.Fatalf("HasBounds = true on empty history")
	}

	if _, err := s.RecordWeight(day.New(2024, time.January, 1), "70.0"); err != nil {
		t.Fatalf("RecordWeight: %v", err)
	}
	if _, err := s.RecordWeight(day.New(2024, time.January, 2), "69.5"); err != nil {
		t.Fatalf("RecordWeight: %v", err)
	}

	want := weight.Bounds{XMin: 0, XMax: 2, YMin: 68.5, YMax: 71}
	got, err := s.PlotBounds()
	if err != nil || got != want {
		t.Fatalf("PlotBounds = %#v, %v; want %#v", got, err, want)
	}
	if snap := s.Snapshot(tuesday); !snap.HasBounds || snap.Bounds != want {
		t.Fatalf("snapshot bounds = %#v (%v), want %#v", snap.Bounds, snap.HasBounds, want)
	}
}

func TestStore_CustomExercise(t *testing.T) {
	s := newTestStore(t)
	if s.AddCustomExercise("Monday", "", "desc") {
		t.Fatalf("AddCustomExercise accepted empty name")
	}
	if !s.AddCustomExercise("Tuesday", "Plank", "1 min") {
		t.Fatalf("AddCustomExercise rejected valid exercise")
	}
	snap := s.Snapshot(tuesday)
	last := snap.Exercises[len(snap.Exercises)-1]
	if last.Name != "Plank" || last.Detail != "1 min" {
		t.Fatalf("last exercise = %#v, want Plank", last)
	}
	if snap.Custom != 1 {
		t.Fatalf("Custom = %d, want 1", snap.Custom)
	}
	if got := s.Snapshot(tuesday.AddDays(-1)).Custom; got != 0 {
		t.Fatalf("Monday Custom = %d, want 0", got)
	}
}

func TestStore_BestStreak(t *testing.T) {
	s := newTestStore(t)
	for _, d := range []day.Date{tuesday.AddDays(-5), tuesday.AddDays(-4), tuesday} {
		s.StartSession(d)
		s.StopSession()
	}
	snap := s.Snapshot(tuesday)
	if snap.Streak != 1 || snap.BestStreak != 2 {
		t.Fatalf("Streak = %d BestStreak = %d, want 1 and 2", snap.Streak, snap.BestStreak)
	}
}

func TestStore_ExportCSV(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(workout.DefaultPlan(), dir)
	if _, err := s.RecordWeight(day.New(2024, time.January, 1), "70"); err != nil {
		t.Fatalf("RecordWeight: %v", err)
	}

	path, err := s.ExportCSV()
	if err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}
	if path != filepath.Join(dir, "weight_log.csv") {
		t.Fatalf("path = %q, want weight_log.csv in %q", path, dir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "Date,Weight (kg)\n2024-01-01,70\n" {
		t.Fatalf("csv = %q", data)
	}
}

func TestStore_ConcurrentTicksAndReads(t *testing.T) {
	s := newTestStore(t)
	gen := s.StartSession(tuesday)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				s.TickSession(gen)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = s.Snapshot(tuesday)
			}
		}()
	}
	wg.Wait()

	if got := s.Snapshot(tuesday).Elapsed; got != 100 {
		t.Fatalf("Elapsed = %d, want 100", got)
	}
}

func TestUserMessage(t *testing.T) {
	_, parseErr := weight.ParseWeight("abc")
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{parseErr, "Invalid input! Please enter a number."},
		{weight.ErrEmptyHistory, "No data to plot yet."},
		{errors.New("disk full"), "disk full"},
	}
	for _, tc := range cases {
		if got := UserMessage(tc.err); got != tc.want {
			t.Fatalf("UserMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
