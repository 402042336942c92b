package main

import "math"

// assumedWeightKG is the body weight every estimate assumes. The app doesn't
// collect per-user weight yet; caloriesForWeight takes weight as a parameter
// so a per-user value can be threaded through later without touching the
// formulas.
const assumedWeightKG = 70.0

// restingMET is the baseline metabolic multiplier (1 MET = resting metabolism).
// The per-activity formulas bake their MET values in directly, so this isn't
// used in the arithmetic — it documents the reference point the MET constants
// below are relative to.
const restingMET = 1.0

// metricLabels maps each activity type to the semantic meaning of its three
// metric slots. This is the single source of truth for valid activity types —
// also used for input validation in the activity-log handlers and echoed in
// the estimate response so clients can label their form fields.
var metricLabels = map[string][3]string{
	"walking":       {"steps", "distance_km", "time_minutes"},
	"swimming":      {"laps", "time_minutes", "avg_heart_rate"},
	"running":       {"distance_km", "time_minutes", "avg_heart_rate"},
	"cycling":       {"distance_km", "time_minutes", "avg_heart_rate"},
	"weightlifting": {"sets", "weight_kg", "reps"},
	"yoga":          {"poses", "time_minutes", "intensity"},
}

// clamp constrains v to the closed range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// calculateCalories estimates calories burned for one activity entry.
// The three metrics are positional — their meaning depends on the activity
// type (see metricLabels). Callers must validate metrics > 0 (and per-activity
// ranges) before calling; the engine itself does no validation and no
// rounding. An unknown activity type yields 0 rather than an error — handlers
// reject unknown types up front, so a zero here never reaches the database.
func calculateCalories(activity string, metric1, metric2, metric3 float64) float64 {
	return caloriesForWeight(activity, assumedWeightKG, metric1, metric2, metric3)
}

// caloriesForWeight is calculateCalories with an explicit body weight.
func caloriesForWeight(activity string, weightKG, metric1, metric2, metric3 float64) float64 {
	switch activity {
	case "walking":
		return walkingCalories(weightKG, metric1, metric2, metric3)
	case "swimming":
		return swimmingCalories(weightKG, metric1, metric2, metric3)
	case "running":
		return runningCalories(weightKG, metric1, metric2, metric3)
	case "cycling":
		return cyclingCalories(weightKG, metric1, metric2, metric3)
	case "weightlifting":
		return weightLiftingCalories(weightKG, metric1, metric2, metric3)
	case "yoga":
		return yogaCalories(weightKG, metric1, metric2, metric3)
	default:
		return 0
	}
}

// walkingCalories: MET from walking speed, scaled by a step-efficiency factor.
// Below 10,000 steps the factor scales linearly down to 0, so a high
// distance/time entry with very few steps is understated on purpose — the
// step count is treated as the evidence the walk actually happened.
func walkingCalories(weightKG, steps, distanceKM, timeMinutes float64) float64 {
	speed := distanceKM / (timeMinutes / 60) // km/h
	var met float64
	switch {
	case speed < 4.0:
		met = 3.0
	case speed < 5.5:
		met = 3.5
	case speed < 6.5:
		met = 4.0
	default:
		met = 5.0
	}
	stepEfficiency := math.Min(steps/10000, 1.5)
	return met * weightKG * (timeMinutes / 60) * stepEfficiency
}

// swimmingCalories: fixed base MET scaled by heart rate and lap pace.
// The lap-intensity baseline assumes 2 minutes per lap; faster or slower
// pace scales intensity within the clamp band.
func swimmingCalories(weightKG, laps, timeMinutes, avgHeartRate float64) float64 {
	const baseMET = 6.0
	intensityMultiplier := clamp(avgHeartRate/150, 0.5, 2.0)
	lapIntensity := clamp(laps/(timeMinutes/2), 0.8, 1.5)
	return baseMET * intensityMultiplier * lapIntensity * weightKG * (timeMinutes / 60)
}

// runningCalories: MET from running speed, scaled by heart rate relative to a
// 160 bpm baseline.
func runningCalories(weightKG, distanceKM, timeMinutes, avgHeartRate float64) float64 {
	speed := distanceKM / (timeMinutes / 60) // km/h
	var met float64
	switch {
	case speed < 8.0:
		met = 8.0
	case speed <= 10.0:
		// 10 km/h exactly (the 10k-in-an-hour benchmark) still counts as the
		// 10-MET band; the 12-MET band starts above it.
		met = 10.0
	case speed < 12.0:
		met = 12.0
	default:
		met = 15.0
	}
	hrMultiplier := clamp(avgHeartRate/160, 0.8, 1.3)
	return met * hrMultiplier * weightKG * (timeMinutes / 60)
}

// cyclingCalories: same shape as running with cycling speed bands and a
// 140 bpm heart-rate baseline.
func cyclingCalories(weightKG, distanceKM, timeMinutes, avgHeartRate float64) float64 {
	speed := distanceKM / (timeMinutes / 60) // km/h
	var met float64
	switch {
	case speed < 16.0:
		met = 6.0
	case speed < 20.0:
		met = 8.0
	case speed < 25.0:
		met = 10.0
	default:
		met = 12.0
	}
	hrMultiplier := clamp(avgHeartRate/140, 0.7, 1.4)
	return met * hrMultiplier * weightKG * (timeMinutes / 60)
}

// weightLiftingCalories: estimated from training volume (sets × weight × reps)
// and how heavy the load is relative to the assumed body weight. Duration is
// not an input — each set is assumed to take 3 minutes including rest.
func weightLiftingCalories(weightKG, sets, liftedKG, reps float64) float64 {
	const baseMET = 6.0
	volume := sets * liftedKG * reps
	intensityMultiplier := clamp(liftedKG/70, 0.5, 2.0)
	estimatedTimeHours := (sets * 3.0) / 60
	volumeMultiplier := math.Min(volume/1000, 2.0)
	return baseMET * intensityMultiplier * volumeMultiplier * weightKG * estimatedTimeHours
}

// yogaCalories: MET from the 1–10 intensity rating, scaled by pose density.
// The pose-complexity baseline assumes 2 minutes per pose.
func yogaCalories(weightKG, poses, timeMinutes, intensity float64) float64 {
	var met float64
	switch {
	case intensity <= 3:
		met = 2.5
	case intensity <= 6:
		met = 3.0
	case intensity <= 8:
		met = 4.0
	default:
		met = 5.0
	}
	poseComplexity := clamp(poses/(timeMinutes/2), 0.8, 1.5)
	return met * poseComplexity * weightKG * (timeMinutes / 60)
}

// round2 rounds to two decimal places. The engine returns raw floats;
// handlers round once, just before persisting or returning an estimate, so
// stored values and previews always agree.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
