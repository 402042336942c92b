package main

import "time"

// currentMonday returns the Monday of the current week at midnight UTC.
// Uses AddDate to safely handle month/year boundaries — direct day subtraction
// can produce day=0 or negative, which time.Date normalizes but is confusing.
func currentMonday() time.Time {
	now := time.Now().UTC()
	weekday := int(now.Weekday()) // 0=Sun
	if weekday == 0 {
		weekday = 7 // treat Sunday as day 7 so Mon=1..Sun=7
	}
	daysBack := weekday - 1
	return now.AddDate(0, 0, -daysBack).Truncate(24 * time.Hour)
}
