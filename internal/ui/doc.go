// Package ui is the Bubble Tea front end of fittrack.
//
// # Screens
//
//   - Menu: entry point; j/k and enter, or w/m/c/l from anywhere
//   - Workout: today's exercises, custom additions, and the workout timer
//   - Weight: weight entry, recent entries, ASCII graph, and CSV export
//   - Calendar: 31-slot month grid of completed workout days and the streak
//   - Activity: the tail of fittrack's own log file, reloaded with r
//
// # Data Flow
//
// The UI owns no tracker data. Every action calls into a *state.Store, then
// re-reads a state.Snapshot for rendering. The current date comes from the
// injected Now function, so tests can pin the clock.
//
// # Timer
//
// Starting a workout calls Store.StartSession and arms the Ticker with a
// closure bound to that run's generation. Each counted tick pushes onto a
// one-slot channel; waitForTick turns that into a sessionTickMsg which
// refreshes the snapshot. Stopping calls Ticker.Stop before Store.StopSession.
//
// # Keyboard
//
// Bindings live in keys.go and are listed by the help overlay (h or ?). While a
// text form is open, only enter, esc, tab and ctrl+c are interpreted; all other
// keys go to the focused input.
//
// # Themes
//
// Nightfox, Kanagawa and Slate are built in. T cycles them and the choice is
// saved to the prefs file.
package ui
