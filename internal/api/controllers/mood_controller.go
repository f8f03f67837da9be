package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"soberup/internal/models/request_models"
	"soberup/internal/services"
	"soberup/pkg/utils"
)

type MoodController struct {
	moodService services.MoodServiceInterface
	loc         *time.Location
}

func NewMoodController(moodService services.MoodServiceInterface, loc *time.Location) *MoodController {
	return &MoodController{
		moodService: moodService,
		loc:         loc,
	}
}

// SaveMood godoc
// @Summary Record today's mood
// @Description Creates today's entry or overwrites it if one exists
// @Tags Moods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.SaveMoodRequest true "Mood 1-10 and optional note"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /moods [post]
func (m *MoodController) SaveMood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SaveMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := m.moodService.SaveMood(c.Request.Context(), userID, req.MoodValue, req.Note, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Mood saved")
}

// GetToday godoc
// @Summary Today's mood entry
// @Description data is null when nothing was recorded today
// @Tags Moods
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /moods/today [get]
func (m *MoodController) GetToday(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := m.moodService.GetToday(c.Request.Context(), userID, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Fetched today's mood")
}

// GetMonth godoc
// @Summary Mood calendar for a month
// @Tags Moods
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Zero-based month (0 = January), defaults to the current month"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /moods/month [get]
func (m *MoodController) GetMonth(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query request_models.MoodMonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid year or month")
		return
	}

	now := time.Now().In(m.loc)
	year, month := now.Year(), int(now.Month())-1
	if query.Year != nil {
		year = *query.Year
	}
	if query.Month != nil {
		month = *query.Month
	}

	calendar, err := m.moodService.GetMonth(c.Request.Context(), userID, year, month)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, calendar, "Fetched mood calendar")
}

// ListMoods godoc
// @Summary Mood entries in a date range
// @Tags Moods
// @Produce json
// @Security BearerAuth
// @Param start query string false "First day, YYYY-MM-DD"
// @Param end query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /moods [get]
func (m *MoodController) ListMoods(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query request_models.MoodRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid range")
		return
	}

	entries, err := m.moodService.GetRange(c.Request.Context(), userID, query.Start, query.End)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Fetched mood entries")
}
