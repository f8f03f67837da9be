package request_models

// SaveMoodRequest leaves the range check on mood_value to the service so
// that every caller gets the same validation error.
type SaveMoodRequest struct {
	MoodValue int    `json:"mood_value"`
	Note      string `json:"note" binding:"max=2000"`
}

type MoodMonthQuery struct {
	Year  *int `form:"year"`
	Month *int `form:"month"`
}

type MoodRangeQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
