package db_models

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry is one observation per user per calendar day. DayKey is the
// YYYY-MM-DD of Date in the application time zone; together with UserID it
// is unique, which is what the upsert in the repository conflicts on.
type MoodEntry struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uidx_mood_user_day"`
	Date      time.Time `gorm:"not null;index"`
	DayKey    string    `gorm:"type:varchar(10);not null;uniqueIndex:uidx_mood_user_day"`
	MoodValue int       `gorm:"not null;check:mood_value >= 1 AND mood_value <= 10"`
	Note      string    `gorm:"type:text;not null;default:''"`
}
