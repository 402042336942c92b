package main

import (
	"testing"
	"time"
)

// TestCurrentMonday_ReturnsMonday verifies that the returned time's weekday is Monday.
func TestCurrentMonday_ReturnsMonday(t *testing.T) {
	monday := currentMonday()
	if monday.Weekday() != time.Monday {
		t.Errorf("currentMonday() returned %s, want Monday", monday.Weekday())
	}
}

// TestCurrentMonday_MidnightUTC verifies that the returned time is at midnight
// UTC with no hour, minute, second, or nanosecond component.
func TestCurrentMonday_MidnightUTC(t *testing.T) {
	monday := currentMonday()
	if monday.Hour() != 0 || monday.Minute() != 0 || monday.Second() != 0 || monday.Nanosecond() != 0 {
		t.Errorf("currentMonday() returned non-midnight time: %v", monday)
	}
	if monday.Location() != time.UTC {
		t.Errorf("currentMonday() returned non-UTC location: %v", monday.Location())
	}
}
