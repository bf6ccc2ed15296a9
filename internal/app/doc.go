// Package app wires configuration, logging, the tracker store and the TUI
// together. It is the composition root of fittrack.
//
// # Startup
//
//  1. Load ~/.config/fittrack/config.toml (defaults when missing)
//  2. Point logrus at the rotating log file, since the TUI owns the terminal
//  3. Load preferences (theme); a broken prefs file only logs a warning
//  4. Load the workout plan: -plan flag, then plan_file, then the built-in plan
//  5. Build a state.Store and a Scheduler for the workout timer
//  6. Run the UI until the user quits or the context is cancelled
//
// # Tick Scheduling
//
// Scheduler drives the workout timer. The UI starts it when a session starts
// and stops it when the session stops. Stop waits for the ticking goroutine
// to exit, so no tick is delivered after it returns. The store also tags each
// run with a generation and drops ticks from old runs, which covers a tick
// that was already queued when the run ended.
//
// # Error Handling
//
// Run returns errors only for startup problems: an unreadable or invalid
// config, an invalid plan file, or a failure to start the terminal program.
// Everything the user does at runtime is reported inside the UI.
package app
