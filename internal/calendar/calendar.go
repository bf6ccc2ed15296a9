// Package calendar records the days a workout happened and lays them out as
// a month grid.
package calendar

import (
	"slices"

	"github.com/five82/fittrack/internal/day"
)

// GridSize is the number of slots in a month grid, whatever the month's length.
const GridSize = 31

// Cell is one slot of the month grid.
type Cell struct {
	Day      int      // 1..31, the slot label
	Date     day.Date // reference year/month with Day substituted, rolled over if needed
	Complete bool
	InMonth  bool // false when Date rolled into the following month
}

// Calendar is the set of completed workout days. The zero value is ready to
// use. A Calendar is not safe for concurrent use.
type Calendar struct {
	done map[day.Date]struct{}
}

// MarkComplete records d. Marking the same day again has no effect.
func (c *Calendar) MarkComplete(d day.Date) {
	if c.done == nil {
		c.done = make(map[day.Date]struct{})
	}
	c.done[d] = struct{}{}
}

// IsComplete reports whether d was marked.
func (c *Calendar) IsComplete(d day.Date) bool {
	_, ok := c.done[d]
	return ok
}

// Len returns the number of distinct marked days.
func (c *Calendar) Len() int {
	return len(c.done)
}

// Dates returns the marked days in ascending order.
func (c *Calendar) Dates() []day.Date {
	out := make([]day.Date, 0, len(c.done))
	for d := range c.done {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b day.Date) int {
		return a.Time().Compare(b.Time())
	})
	return out
}

// MonthGrid returns GridSize cells for ref's month. Slot n holds the date
// built from ref's year and month with day n; in months shorter than 31 days
// the trailing slots roll over into the next month and report InMonth=false.
func (c *Calendar) MonthGrid(ref day.Date) []Cell {
	cells := make([]Cell, GridSize)
	for i := range cells {
		n := i + 1
		d := ref.WithDay(n)
		cells[i] = Cell{
			Day:      n,
			Date:     d,
			Complete: c.IsComplete(d),
			InMonth:  d.Month == ref.Month && d.Year == ref.Year,
		}
	}
	return cells
}

// CurrentStreak counts consecutive marked days ending today. An unmarked
// today does not break the streak; counting then starts from yesterday.
func (c *Calendar) CurrentStreak(today day.Date) int {
	d := today
	if !c.IsComplete(d) {
		d = d.AddDays(-1)
	}
	streak := 0
	for c.IsComplete(d) {
		streak++
		d = d.AddDays(-1)
	}
	return streak
}

// LongestStreak returns the longest run of consecutive marked days.
func (c *Calendar) LongestStreak() int {
	best, run := 0, 0
	var prev day.Date
	for i, d := range c.Dates() {
		if i > 0 && prev.AddDays(1) == d {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
		prev = d
	}
	return best
}
