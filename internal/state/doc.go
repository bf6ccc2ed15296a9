// Package state owns the fitness tracker's data for one run of the program.
//
// # Overview
//
// Store holds one of each core component:
//
//   - workout.Catalog: the weekly plan plus custom exercises
//   - weight.History: the append-only weight log
//   - calendar.Calendar: the set of workout days
//   - session.Session: the workout timer, which marks the calendar on start
//
// Nothing is package-level; the composition root creates a Store and hands it
// to the UI and to the tick scheduler.
//
// # Concurrency Model
//
// The UI goroutine and the scheduler goroutine both call into the Store. A
// single sync.Mutex serialises every call, so each operation is atomic with
// respect to the others. The components themselves are not thread-safe and are
// never reached except through the Store.
//
// The lock is not held while the CSV file is written; ExportCSV copies the rows
// under the lock and writes them afterwards.
//
// # Snapshots
//
// Snapshot(today) copies everything a screen needs: today's exercises, the
// weight entries and plot bounds, the 31-slot calendar grid, the streak and
// the timer state. Slices in a Snapshot never alias Store internals.
//
// # Clock
//
// The Store never reads the system clock. Callers pass today's date to every
// call that needs one.
//
// # Error Messages
//
// UserMessage maps the typed errors from the weight package onto the messages
// shown in the UI:
//
//	*weight.ParseError      → "Invalid input! Please enter a number."
//	weight.ErrEmptyHistory  → "No data to plot yet."
package state
