// Package weight keeps the append-only log of body-weight samples and derives
// the plot and CSV views from it.
package weight

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/five82/fittrack/internal/day"
)

// CSVHeader is the first row of every export.
var CSVHeader = []string{"Date", "Weight (kg)"}

// ErrEmptyHistory is returned by PlotBounds when nothing has been recorded.
var ErrEmptyHistory = errors.New("no weight entries recorded")

// ParseError describes weight input that could not be accepted.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid weight %q: %s", e.Input, e.Reason)
}

// Entry is one weight sample.
type Entry struct {
	Date   day.Date
	Weight float64
}

// Bounds is the axis range for plotting the history.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// plotPadding is added below the lightest and above the heaviest sample.
const plotPadding = 1.0

// ParseWeight parses raw as a finite decimal number greater than zero.
func ParseWeight(raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, &ParseError{Input: raw, Reason: "empty"}
	}
	// ParseFloat also takes Go hex floats such as 0x1p4; only decimal
	// notation is a weight.
	if strings.ContainsAny(text, "xXpP") {
		return 0, &ParseError{Input: raw, Reason: "not a number"}
	}
	w, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ParseError{Input: raw, Reason: "not a number"}
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, &ParseError{Input: raw, Reason: "not a finite number"}
	}
	if w <= 0 {
		return 0, &ParseError{Input: raw, Reason: "must be positive"}
	}
	return w, nil
}

// History is an insertion-ordered list of entries. Several entries may share
// a date. Nothing is ever removed. A History is not safe for concurrent use.
type History struct {
	entries []Entry
}

// Record validates raw and appends a new entry for date. Invalid input
// returns a *ParseError and leaves the history unchanged.
func (h *History) Record(date day.Date, raw string) (Entry, error) {
	w, err := ParseWeight(raw)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{Date: date, Weight: w}
	h.entries = append(h.entries, e)
	return e, nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the history in insertion order.
func (h *History) Entries() []Entry {
	if len(h.entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(h.entries))
	copy(dup, h.entries)
	return dup
}

// PlotBounds returns x in [0, n] and y padded by one unit around the observed
// weight range.
func (h *History) PlotBounds() (Bounds, error) {
	return BoundsOf(h.entries)
}

// Points yields (index, weight) pairs. The sequence reads the history at
// iteration time and can be ranged over any number of times.
func (h *History) Points() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		PointsOf(h.entries)(yield)
	}
}

// CSVRows returns the header followed by one [date, weight] row per entry.
func (h *History) CSVRows() [][]string {
	rows := make([][]string, 0, len(h.entries)+1)
	rows = append(rows, append([]string(nil), CSVHeader...))
	for _, e := range h.entries {
		rows = append(rows, []string{e.Date.String(), FormatWeight(e.Weight)})
	}
	return rows
}

// BoundsOf computes plot bounds for an entry snapshot.
func BoundsOf(entries []Entry) (Bounds, error) {
	if len(entries) == 0 {
		return Bounds{}, ErrEmptyHistory
	}
	lo, hi := entries[0].Weight, entries[0].Weight
	for _, e := range entries[1:] {
		lo = math.Min(lo, e.Weight)
		hi = math.Max(hi, e.Weight)
	}
	return Bounds{
		XMin: 0,
		XMax: float64(len(entries)),
		YMin: lo - plotPadding,
		YMax: hi + plotPadding,
	}, nil
}

// FormatWeight renders w with the fewest digits that round-trip.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// PointsOf yields (index, weight) pairs for an entry snapshot.
func PointsOf(entries []Entry) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, e := range entries {
			if !yield(i, e.Weight) {
				return
			}
		}
	}
}
