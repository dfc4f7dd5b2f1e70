package report

import "time"

// CurrentPeriodLabel returns the label of the current reporting month,
// e.g. "August 2026". Display only.
func CurrentPeriodLabel() string {
	return time.Now().Format("January 2006")
}

// CurrentDateLabel returns the label of the current day for the daily brief.
func CurrentDateLabel() string {
	return time.Now().Format("2006/01/02")
}
