package workout

import "strings"

// Exercise is one line of a day's routine. Treat it as immutable.
type Exercise struct {
	Name   string `yaml:"name"`
	Detail string `yaml:"detail"`
}

// String renders the exercise as "Name: Detail".
func (e Exercise) String() string {
	return e.Name + ": " + e.Detail
}

// Catalog serves the weekly plan plus exercises added during this run.
// The base plan is copied on construction and never modified; custom
// additions live in their own lists and are merged at read time.
// A Catalog is not safe for concurrent use.
type Catalog struct {
	base   Plan
	custom map[string][]Exercise
}

// NewCatalog returns a catalog over a private copy of plan.
func NewCatalog(plan Plan) *Catalog {
	base := make(Plan, len(plan))
	for day, exercises := range plan {
		label, _ := NormalizeWeekday(day)
		base[label] = append([]Exercise(nil), exercises...)
	}
	return &Catalog{base: base, custom: make(map[string][]Exercise)}
}

// ExercisesFor returns the planned exercises for weekday followed by any custom
// ones, in the order they were added. Unknown weekdays yield only custom entries
// (usually none). The returned slice is owned by the caller.
func (c *Catalog) ExercisesFor(weekday string) []Exercise {
	label, _ := NormalizeWeekday(weekday)
	base := c.base[label]
	custom := c.custom[label]
	out := make([]Exercise, 0, len(base)+len(custom))
	out = append(out, base...)
	return append(out, custom...)
}

// AddCustomExercise appends an exercise to weekday's list. It is a no-op
// returning false when name or detail is blank after trimming.
func (c *Catalog) AddCustomExercise(weekday, name, detail string) bool {
	name = strings.TrimSpace(name)
	detail = strings.TrimSpace(detail)
	if name == "" || detail == "" {
		return false
	}
	label, _ := NormalizeWeekday(weekday)
	c.custom[label] = append(c.custom[label], Exercise{Name: name, Detail: detail})
	return true
}

// CustomCount returns how many exercises were added for weekday.
func (c *Catalog) CustomCount(weekday string) int {
	label, _ := NormalizeWeekday(weekday)
	return len(c.custom[label])
}
