package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/five82/fittrack/internal/day"
	"github.com/five82/fittrack/internal/weight"
)

func TestRenderPlot_PlacesPoints(t *testing.T) {
	entries := []weight.Entry{
		{Date: day.New(2024, time.January, 1), Weight: 70},
		{Date: day.New(2024, time.January, 2), Weight: 69.5},
	}
	bounds, err := weight.BoundsOf(entries)
	if err != nil {
		t.Fatalf("BoundsOf: %v", err)
	}

	out := renderPlot(entries, bounds, 20, 6)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 6 rows + axis + labels:\n%s", len(lines), out)
	}
	if got := strings.Count(out, string(plotPoint)); got != 2 {
		t.Fatalf("point count = %d, want 2:\n%s", got, out)
	}
	if !strings.HasPrefix(lines[0], "71.0") {
		t.Fatalf("top label = %q, want 71.0", lines[0])
	}
	if !strings.HasPrefix(lines[5], "68.5") {
		t.Fatalf("bottom label = %q, want 68.5", lines[5])
	}
	if !strings.HasSuffix(lines[7], "2") {
		t.Fatalf("x labels = %q, want to end with 2", lines[7])
	}
	// First point sits at x=0 in the leftmost column.
	row := -1
	for i, l := range lines[:6] {
		if strings.Contains(l, "│"+string(plotPoint)) {
			row = i
		}
	}
	if row == -1 {
		t.Fatalf("no point in first column:\n%s", out)
	}
}

func TestRenderPlot_ConnectsPoints(t *testing.T) {
	entries := []weight.Entry{{Weight: 60}, {Weight: 80}}
	bounds, _ := weight.BoundsOf(entries)
	out := renderPlot(entries, bounds, 30, 10)
	if !strings.ContainsRune(out, plotLine) {
		t.Fatalf("expected a connecting line:\n%s", out)
	}
}

func TestScale_Clamps(t *testing.T) {
	cases := []struct {
		v, lo, hi float64
		steps     int
		want      int
	}{
		{0, 0, 10, 10, 0},
		{10, 0, 10, 10, 10},
		{5, 0, 10, 4, 2},
		{-5, 0, 10, 10, 0},
		{15, 0, 10, 10, 10},
		{5, 5, 5, 10, 0},
	}
	for _, tc := range cases {
		if got := scale(tc.v, tc.lo, tc.hi, tc.steps); got != tc.want {
			t.Fatalf("scale(%v, %v, %v, %d) = %d, want %d", tc.v, tc.lo, tc.hi, tc.steps, got, tc.want)
		}
	}
}
