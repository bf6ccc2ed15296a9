// Package config loads fittrack's settings from a TOML file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/fittrack/config.toml
//  3. If the file doesn't exist, use the defaults
//  4. If the file exists but fields are blank, use the defaults for those fields
//
// # TOML Format
//
//	export_dir   = "~/Documents/fitness"    # where weight_log.csv is written
//	plan_file    = "~/.config/fittrack/plan.yaml"
//	log_file     = "~/.local/state/fittrack/fittrack.log"
//	log_level    = "info"                   # trace, debug, info, warn, error
//	tick_seconds = 1
//
// Every field is optional. A missing export_dir means the working directory,
// matching where earlier versions dropped the CSV. Tilde paths are expanded.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files and TOML
// syntax errors. A missing file is not an error.
package config
