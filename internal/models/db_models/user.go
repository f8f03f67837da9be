package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SOSContact is stored inline on the user row as sos_name / sos_phone and
// is always replaced as a pair. Both empty means no contact.
type SOSContact struct {
	Name  string `gorm:"column:name"`
	Phone string `gorm:"column:phone"`
}

func (c SOSContact) IsSet() bool {
	return c.Name != "" && c.Phone != ""
}

type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"type:varchar(16);not null;default:patient"`
	Name     string `gorm:"index;not null"`
	Email    string

	SoberSince *time.Time
	// SoberDays caches the value derived from SoberSince. Every write that
	// touches SoberSince writes this column in the same statement.
	SoberDays int `gorm:"not null;default:0"`

	SOSContact       SOSContact     `gorm:"embedded;embeddedPrefix:sos_"`
	Triggers         pq.StringArray `gorm:"type:text[]"`
	AssignedDoctorID *uuid.UUID     `gorm:"type:uuid"`
	LastMoodCheck    *time.Time

	MoodEntries []MoodEntry `gorm:"foreignKey:UserID"`
}
