package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// getUserSettings returns the activity log settings for the authenticated user.
// GET /api/activity-log/user-settings.
func (h *Handler) getUserSettings(c *gin.Context) {
	userID := c.GetInt("user_id")

	s, err := queryOne[activityLogUserSettings](h.db, c,
		"SELECT * FROM activity_log_user_settings WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "settings not found")
		return
	}

	c.JSON(http.StatusOK, s)
}

// patchUserSettings updates only the provided activity log settings fields.
// PATCH /api/activity-log/user-settings. Uses pointer fields in the request
// body to distinguish "not provided" from zero — only non-nil fields get updated.
func (h *Handler) patchUserSettings(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchUserSettingsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.DailyGoalCalories != nil && *body.DailyGoalCalories < 0 {
		apiError(c, http.StatusBadRequest, "daily_goal_calories must not be negative")
		return
	}
	if body.WeeklyGoalCalories != nil && *body.WeeklyGoalCalories < 0 {
		apiError(c, http.StatusBadRequest, "weekly_goal_calories must not be negative")
		return
	}

	// Build SET clause dynamically — only update fields the client actually sent
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}

	if body.DailyGoalCalories != nil {
		setClauses = append(setClauses, "daily_goal_calories = @dailyGoalCalories")
		args["dailyGoalCalories"] = *body.DailyGoalCalories
	}
	if body.WeeklyGoalCalories != nil {
		setClauses = append(setClauses, "weekly_goal_calories = @weeklyGoalCalories")
		args["weeklyGoalCalories"] = *body.WeeklyGoalCalories
	}

	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	query := "UPDATE activity_log_user_settings SET " +
		strings.Join(setClauses, ", ") +
		" WHERE user_id = @userID RETURNING *"

	s, err := queryOne[activityLogUserSettings](h.db, c, query, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update settings")
		return
	}

	c.JSON(http.StatusOK, s)
}
