package response_models

// DashboardResponse is everything the patient home screen shows.
type DashboardResponse struct {
	Profile       *UserProfileResponse  `json:"profile"`
	TodayMood     *MoodEntryResponse    `json:"today_mood"`
	Calendar      *MoodCalendarResponse `json:"calendar"`
	HasSOSContact bool                  `json:"has_sos_contact"`
	GeneratedAt   string                `json:"generated_at"`
}
