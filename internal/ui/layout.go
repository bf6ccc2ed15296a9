package ui

import "time"

// Graph canvas limits, in terminal cells.
const (
	GraphMinWidth  = 20
	GraphMaxWidth  = 90
	GraphMinHeight = 6
	GraphMaxHeight = 16
)

// ClockRefresh is how often the UI re-reads the date while idle, so the
// calendar and workout screens roll over at midnight.
const ClockRefresh = time.Minute

// activityLines is how many log entries the activity screen loads.
const activityLines = 200
