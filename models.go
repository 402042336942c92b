package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// activityLogItem maps to activity_log_items. The three metric columns are
// positional — their meaning depends on activity_type (see metricLabels).
// CaloriesBurned is computed server-side at create/update time and stored
// rounded to two decimals; it is never accepted from the client.
type activityLogItem struct {
	ID             int        `json:"id" db:"id"`
	UserID         int        `json:"user_id" db:"user_id"`
	Date           DateOnly   `json:"date" db:"date"`
	ActivityType   string     `json:"activity_type" db:"activity_type"`
	Metric1        float64    `json:"metric1" db:"metric1"`
	Metric2        float64    `json:"metric2" db:"metric2"`
	Metric3        float64    `json:"metric3" db:"metric3"`
	CaloriesBurned float64    `json:"calories_burned" db:"calories_burned"`
	CreatedAt      *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at" db:"updated_at"`
}

// activityLogUserSettings maps to activity_log_user_settings. One row per
// user, created at registration, holding the calorie-burn goals the summary
// endpoints measure progress against.
type activityLogUserSettings struct {
	UserID             int `json:"user_id"              db:"user_id"`
	DailyGoalCalories  int `json:"daily_goal_calories"  db:"daily_goal_calories"`
	WeeklyGoalCalories int `json:"weekly_goal_calories" db:"weekly_goal_calories"`
}

// dayDBRow is the shape of each row returned by the per-day GROUP BY queries
// (week summary and progress). Used only for scanning; responses use daySummary.
type dayDBRow struct {
	Date           DateOnly `db:"date"`
	CaloriesBurned float64  `db:"calories_burned"`
	Activities     int      `db:"activities"`
}

// daySummary is one day's entry in the week-summary and progress responses.
// Days with no logged activities have HasData=false and zero totals.
type daySummary struct {
	Date              DateOnly `json:"date"`
	DailyGoalCalories int      `json:"daily_goal_calories"`
	CaloriesBurned    float64  `json:"calories_burned"`
	CaloriesRemaining float64  `json:"calories_remaining"`
	GoalMet           bool     `json:"goal_met"`
	Activities        int      `json:"activities"`
	HasData           bool     `json:"has_data"`
}

// dailySummary is the response shape for GET /activity-log/daily.
// Includes the day's items, user settings, and computed totals.
type dailySummary struct {
	Date              string                  `json:"date"`
	DailyGoalCalories int                     `json:"daily_goal_calories"`
	CaloriesBurned    float64                 `json:"calories_burned"`
	CaloriesRemaining float64                 `json:"calories_remaining"`
	GoalMet           bool                    `json:"goal_met"`
	Items             []activityLogItem       `json:"items"`
	Settings          activityLogUserSettings `json:"settings"`
}

// progressStats aggregates the days returned by GET /activity-log/progress.
type progressStats struct {
	DaysTracked         int     `json:"days_tracked"`
	DaysGoalMet         int     `json:"days_goal_met"`
	TotalActivities     int     `json:"total_activities"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
	AvgCaloriesBurned   float64 `json:"avg_calories_burned"`
}

// progressResponse is the response shape for GET /activity-log/progress.
type progressResponse struct {
	Days  []daySummary  `json:"days"`
	Stats progressStats `json:"stats"`
}

// createActivityItemRequest is the request body for POST /api/activity-log/items.
// Metrics default to zero when omitted and are rejected by validation, so
// plain float64 fields are fine here (unlike the pointer-field update body).
type createActivityItemRequest struct {
	Date         string  `json:"date"`
	ActivityType string  `json:"activity_type"`
	Metric1      float64 `json:"metric1"`
	Metric2      float64 `json:"metric2"`
	Metric3      float64 `json:"metric3"`
}

// estimateActivityRequest is the request body for POST /api/activity-log/estimate.
type estimateActivityRequest struct {
	ActivityType string  `json:"activity_type"`
	Metric1      float64 `json:"metric1"`
	Metric2      float64 `json:"metric2"`
	Metric3      float64 `json:"metric3"`
}

// patchUserSettingsRequest is the request body for PATCH /api/activity-log/user-settings.
// All fields are pointers — only non-nil fields get written to the database.
type patchUserSettingsRequest struct {
	DailyGoalCalories  *int `json:"daily_goal_calories"`
	WeeklyGoalCalories *int `json:"weekly_goal_calories"`
}
