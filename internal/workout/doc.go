// Package workout holds the weekly exercise plan and the exercises a user adds
// while the program runs.
//
// # Plan
//
// A Plan maps weekday labels to ordered exercise lists. The built-in plan is
// embedded from plan.yaml; LoadPlan reads a replacement in the same format:
//
//	Monday:
//	  - name: Push-ups
//	    detail: 3 sets x 12 reps
//
// Weekday keys are case-insensitive and normalised to their English title
// case ("monday" becomes "Monday"). Keys that are not weekday names fail to load.
//
// # Catalog
//
// Catalog keeps the base plan and the custom additions in separate
// collections and concatenates them in ExercisesFor. Custom additions are not
// persisted; they last as long as the Catalog.
package workout
