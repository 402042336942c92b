package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// heartRateActivities marks the activity types whose third metric slot is an
// average heart rate and must fall in a plausible bpm range.
var heartRateActivities = map[string]bool{
	"swimming": true,
	"running":  true,
	"cycling":  true,
}

// validateActivityMetrics checks an activity type and its metric triple.
// Returns "" when valid, otherwise a message suitable for apiError.
// The calorie engine itself validates nothing, so every path into it goes
// through here first — a zero duration in particular would divide to Inf and
// poison the stored calories_burned value.
func validateActivityMetrics(activity string, m1, m2, m3 float64) string {
	labels, ok := metricLabels[activity]
	if !ok {
		return "activity_type must be one of: walking, swimming, running, cycling, weightlifting, yoga"
	}
	for i, v := range [3]float64{m1, m2, m3} {
		if v < 0.1 {
			return labels[i] + " must be at least 0.1"
		}
	}
	if heartRateActivities[activity] && (m3 < 50 || m3 > 220) {
		return "avg_heart_rate must be between 50 and 220"
	}
	if activity == "yoga" && (m3 < 1 || m3 > 10) {
		return "intensity must be between 1 and 10"
	}
	return ""
}

// getDailySummary returns activity log items and goal progress for a given date.
// GET /api/activity-log/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDailySummary(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	// Validate date format before querying — an invalid value silently returns no rows.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	items, err := queryMany[activityLogItem](h.db, c,
		`SELECT * FROM activity_log_items
		 WHERE user_id = @userID AND date = @date
		 ORDER BY created_at`,
		pgx.NamedArgs{"userID": userID, "date": date})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch items")
		return
	}
	// Ensure items is an empty array (not null) in JSON
	if items == nil {
		items = []activityLogItem{}
	}

	settings, err := queryOne[activityLogUserSettings](h.db, c,
		"SELECT * FROM activity_log_user_settings WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch settings")
		return
	}

	var burned float64
	for _, item := range items {
		burned += item.CaloriesBurned
	}

	remaining := float64(settings.DailyGoalCalories) - burned
	if remaining < 0 {
		remaining = 0
	}

	c.JSON(http.StatusOK, dailySummary{
		Date:              date,
		DailyGoalCalories: settings.DailyGoalCalories,
		CaloriesBurned:    round2(burned),
		CaloriesRemaining: round2(remaining),
		GoalMet:           burned >= float64(settings.DailyGoalCalories),
		Items:             items,
		Settings:          settings,
	})
}

// getWeekSummary returns per-day burn totals for the Mon–Sun week containing
// week_start. Days with no logged activities are included with has_data=false.
// GET /api/activity-log/week-summary?week_start=YYYY-MM-DD (defaults to current week).
func (h *Handler) getWeekSummary(c *gin.Context) {
	userID := c.GetInt("user_id")

	// Parse week_start; default to the current Monday.
	var weekStart time.Time
	if s := c.Query("week_start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid week_start, expected YYYY-MM-DD")
			return
		}
		weekStart = t
	} else {
		weekStart = currentMonday()
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	settings, err := queryOne[activityLogUserSettings](h.db, c,
		"SELECT * FROM activity_log_user_settings WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch settings")
		return
	}

	rows, err := queryMany[dayDBRow](h.db, c,
		`SELECT
			date,
			COALESCE(SUM(calories_burned), 0) AS calories_burned,
			COUNT(*) AS activities
		 FROM activity_log_items
		 WHERE user_id = @userID AND date >= @weekStart AND date <= @weekEnd
		 GROUP BY date`,
		pgx.NamedArgs{
			"userID":    userID,
			"weekStart": weekStart.Format("2006-01-02"),
			"weekEnd":   weekEnd.Format("2006-01-02"),
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch week data")
		return
	}

	// Index DB rows by date string for O(1) merge.
	rowByDate := make(map[string]dayDBRow, len(rows))
	for _, r := range rows {
		rowByDate[r.Date.Time.Format("2006-01-02")] = r
	}

	// Build a full 7-day response, filling zeros for days with no data.
	result := make([]daySummary, 7)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		dateStr := d.Format("2006-01-02")
		day := daySummary{
			Date:              DateOnly{d},
			DailyGoalCalories: settings.DailyGoalCalories,
		}
		if row, ok := rowByDate[dateStr]; ok {
			day.HasData = true
			day.CaloriesBurned = round2(row.CaloriesBurned)
			day.Activities = row.Activities
		}
		remaining := float64(settings.DailyGoalCalories) - day.CaloriesBurned
		if remaining < 0 {
			remaining = 0
		}
		day.CaloriesRemaining = round2(remaining)
		day.GoalMet = day.CaloriesBurned >= float64(settings.DailyGoalCalories)
		result[i] = day
	}

	c.JSON(http.StatusOK, result)
}

// getProgress returns per-day burn totals and aggregate stats for an arbitrary date range.
// GET /api/activity-log/progress?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params required.
// Only days with logged activities are returned (no gap-filling — the frontend handles that).
func (h *Handler) getProgress(c *gin.Context) {
	userID := c.GetInt("user_id")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		apiError(c, http.StatusBadRequest, "start and end query params are required")
		return
	}
	if _, err := time.Parse("2006-01-02", start); err != nil {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return
	}
	if start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return
	}

	settings, err := queryOne[activityLogUserSettings](h.db, c,
		"SELECT * FROM activity_log_user_settings WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch settings")
		return
	}

	rows, err := queryMany[dayDBRow](h.db, c,
		`SELECT
			date,
			COALESCE(SUM(calories_burned), 0) AS calories_burned,
			COUNT(*) AS activities
		 FROM activity_log_items
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 GROUP BY date
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch progress data")
		return
	}

	days := make([]daySummary, 0, len(rows))
	var stats progressStats
	for _, row := range rows {
		burned := round2(row.CaloriesBurned)
		remaining := float64(settings.DailyGoalCalories) - burned
		if remaining < 0 {
			remaining = 0
		}
		goalMet := burned >= float64(settings.DailyGoalCalories)
		days = append(days, daySummary{
			Date:              row.Date,
			DailyGoalCalories: settings.DailyGoalCalories,
			CaloriesBurned:    burned,
			CaloriesRemaining: round2(remaining),
			GoalMet:           goalMet,
			Activities:        row.Activities,
			HasData:           true,
		})
		stats.DaysTracked++
		if goalMet {
			stats.DaysGoalMet++
		}
		stats.TotalActivities += row.Activities
		stats.TotalCaloriesBurned += burned
	}

	if stats.DaysTracked > 0 {
		stats.AvgCaloriesBurned = round2(stats.TotalCaloriesBurned / float64(stats.DaysTracked))
	}
	stats.TotalCaloriesBurned = round2(stats.TotalCaloriesBurned)

	c.JSON(http.StatusOK, progressResponse{Days: days, Stats: stats})
}

// getEarliestLogDate returns the earliest date the user has an activity log entry.
// GET /api/activity-log/earliest-date. Used by the frontend to compute the "All Time" range start.
// Returns { "date": "YYYY-MM-DD" } or { "date": null } if no entries exist.
func (h *Handler) getEarliestLogDate(c *gin.Context) {
	userID := c.GetInt("user_id")

	// SELECT MIN returns a nullable date — use *string to handle the NULL case.
	var result struct {
		Date *string `db:"date"`
	}
	rows, err := h.db.Query(c,
		`SELECT TO_CHAR(MIN(date), 'YYYY-MM-DD') AS date
		 FROM activity_log_items WHERE user_id = @userID`,
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch earliest date")
		return
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&result.Date); err != nil {
			apiError(c, http.StatusInternalServerError, "failed to scan earliest date")
			return
		}
	}
	if err := rows.Err(); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to read earliest date")
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": result.Date})
}

// createActivityItem inserts a new activity log entry. Calories are computed
// server-side from the validated metrics and stored rounded to two decimals.
// POST /api/activity-log/items. Defaults date to today if omitted.
func (h *Handler) createActivityItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createActivityItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateActivityMetrics(body.ActivityType, body.Metric1, body.Metric2, body.Metric3); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	calories := round2(calculateCalories(body.ActivityType, body.Metric1, body.Metric2, body.Metric3))

	item, err := queryOne[activityLogItem](h.db, c,
		`INSERT INTO activity_log_items (user_id, date, activity_type, metric1, metric2, metric3, calories_burned)
		 VALUES (@userID, @date, @activityType, @metric1, @metric2, @metric3, @caloriesBurned)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": userID, "date": body.Date, "activityType": body.ActivityType,
			"metric1": body.Metric1, "metric2": body.Metric2, "metric3": body.Metric3,
			"caloriesBurned": calories,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// updateActivityItem partially updates an existing activity log entry.
// PUT /api/activity-log/items/:id. Omitted fields keep their current values.
// Unlike a plain COALESCE update, the merge happens in Go: calories_burned
// must be recomputed from the merged activity type and metrics, and the
// merged values need re-validation before the engine sees them.
func (h *Handler) updateActivityItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	var body struct {
		Date         *string  `json:"date"`
		ActivityType *string  `json:"activity_type"`
		Metric1      *float64 `json:"metric1"`
		Metric2      *float64 `json:"metric2"`
		Metric3      *float64 `json:"metric3"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := queryOne[activityLogItem](h.db, c,
		"SELECT * FROM activity_log_items WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "item not found")
		return
	}

	// Merge the request into the stored row.
	date := existing.Date.Time.Format("2006-01-02")
	if body.Date != nil {
		if _, err := time.Parse("2006-01-02", *body.Date); err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = *body.Date
	}
	activity := existing.ActivityType
	if body.ActivityType != nil {
		activity = *body.ActivityType
	}
	m1, m2, m3 := existing.Metric1, existing.Metric2, existing.Metric3
	if body.Metric1 != nil {
		m1 = *body.Metric1
	}
	if body.Metric2 != nil {
		m2 = *body.Metric2
	}
	if body.Metric3 != nil {
		m3 = *body.Metric3
	}

	// Changing the activity type re-interprets the metric slots, so the merged
	// triple is validated as a whole, not field by field.
	if msg := validateActivityMetrics(activity, m1, m2, m3); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	calories := round2(calculateCalories(activity, m1, m2, m3))

	item, err := queryOne[activityLogItem](h.db, c,
		`UPDATE activity_log_items SET
			date            = @date,
			activity_type   = @activityType,
			metric1         = @metric1,
			metric2         = @metric2,
			metric3         = @metric3,
			calories_burned = @caloriesBurned,
			updated_at      = now()
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"id": id, "userID": userID, "date": date, "activityType": activity,
			"metric1": m1, "metric2": m2, "metric3": m3, "caloriesBurned": calories,
		})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "item not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update item")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// deleteActivityItem removes an activity log entry. Returns 204 on success.
// DELETE /api/activity-log/items/:id.
func (h *Handler) deleteActivityItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	result, err := h.db.Exec(c,
		"DELETE FROM activity_log_items WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "item not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// estimateActivity returns the calorie estimate for a candidate entry without
// persisting anything — the create form shows this as a live preview.
// POST /api/activity-log/estimate.
func (h *Handler) estimateActivity(c *gin.Context) {
	var body estimateActivityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateActivityMetrics(body.ActivityType, body.Metric1, body.Metric2, body.Metric3); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity_type":   body.ActivityType,
		"metric_labels":   metricLabels[body.ActivityType],
		"calories_burned": round2(calculateCalories(body.ActivityType, body.Metric1, body.Metric2, body.Metric3)),
	})
}
