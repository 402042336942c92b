package main

import "testing"

// TestValidateActivityMetrics_ValidInputs verifies that a sane metric triple
// for each of the six activity types passes validation.
func TestValidateActivityMetrics_ValidInputs(t *testing.T) {
	cases := []struct {
		name       string
		activity   string
		m1, m2, m3 float64
	}{
		{"walking", "walking", 8000, 4, 50},
		{"swimming", "swimming", 20, 40, 130},
		{"running", "running", 5, 30, 155},
		{"cycling", "cycling", 25, 70, 135},
		{"weightlifting", "weightlifting", 4, 60, 8},
		{"yoga", "yoga", 12, 45, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if msg := validateActivityMetrics(tc.activity, tc.m1, tc.m2, tc.m3); msg != "" {
				t.Errorf("expected valid, got %q", msg)
			}
		})
	}
}

// TestValidateActivityMetrics_UnknownType verifies that activity types outside
// the closed set are rejected before they can reach the engine's silent-zero path.
func TestValidateActivityMetrics_UnknownType(t *testing.T) {
	for _, activity := range []string{"", "rowing", "Walking", "WEIGHTLIFTING"} {
		if msg := validateActivityMetrics(activity, 10, 10, 10); msg == "" {
			t.Errorf("expected rejection for activity type %q", activity)
		}
	}
}

// TestValidateActivityMetrics_NonPositiveMetrics verifies the ≥ 0.1 floor on
// every metric slot. Zero or negative durations in particular must never
// reach the engine — they divide to Inf.
func TestValidateActivityMetrics_NonPositiveMetrics(t *testing.T) {
	cases := []struct {
		name       string
		m1, m2, m3 float64
	}{
		{"zero metric1", 0, 30, 155},
		{"zero metric2 (time)", 5, 0, 155},
		{"negative metric2 (time)", 5, -30, 155},
		{"below floor", 5, 0.05, 155},
		{"zero metric3", 5, 30, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if msg := validateActivityMetrics("running", tc.m1, tc.m2, tc.m3); msg == "" {
				t.Error("expected rejection, got valid")
			}
		})
	}
}

// TestValidateActivityMetrics_MessagesNameTheSlot verifies that rejection
// messages use the activity's semantic label for the offending slot, not a
// positional "metric2".
func TestValidateActivityMetrics_MessagesNameTheSlot(t *testing.T) {
	msg := validateActivityMetrics("running", 5, 0, 155)
	if msg != "time_minutes must be at least 0.1" {
		t.Errorf("unexpected message %q", msg)
	}
	msg = validateActivityMetrics("weightlifting", 0, 60, 8)
	if msg != "sets must be at least 0.1" {
		t.Errorf("unexpected message %q", msg)
	}
}

// TestValidateActivityMetrics_HeartRateRange verifies the 50–220 bpm bound on
// the cardio activities, and that non-cardio activities are exempt (a
// weight-lifting rep count of 300 is fine).
func TestValidateActivityMetrics_HeartRateRange(t *testing.T) {
	for _, activity := range []string{"swimming", "running", "cycling"} {
		if msg := validateActivityMetrics(activity, 5, 30, 49); msg == "" {
			t.Errorf("%s: expected rejection for HR 49", activity)
		}
		if msg := validateActivityMetrics(activity, 5, 30, 221); msg == "" {
			t.Errorf("%s: expected rejection for HR 221", activity)
		}
		if msg := validateActivityMetrics(activity, 5, 30, 50); msg != "" {
			t.Errorf("%s: HR 50 should be valid, got %q", activity, msg)
		}
		if msg := validateActivityMetrics(activity, 5, 30, 220); msg != "" {
			t.Errorf("%s: HR 220 should be valid, got %q", activity, msg)
		}
	}

	if msg := validateActivityMetrics("weightlifting", 3, 50, 300); msg != "" {
		t.Errorf("weightlifting reps are not a heart rate, got %q", msg)
	}
}

// TestValidateActivityMetrics_YogaIntensityRange verifies the 1–10 bound on
// the yoga intensity slot.
func TestValidateActivityMetrics_YogaIntensityRange(t *testing.T) {
	if msg := validateActivityMetrics("yoga", 12, 45, 0.5); msg == "" {
		t.Error("expected rejection for intensity 0.5")
	}
	if msg := validateActivityMetrics("yoga", 12, 45, 11); msg == "" {
		t.Error("expected rejection for intensity 11")
	}
	if msg := validateActivityMetrics("yoga", 12, 45, 1); msg != "" {
		t.Errorf("intensity 1 should be valid, got %q", msg)
	}
	if msg := validateActivityMetrics("yoga", 12, 45, 10); msg != "" {
		t.Errorf("intensity 10 should be valid, got %q", msg)
	}
}
