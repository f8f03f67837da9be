package db_models

type SupportLocation struct {
	BaseModel
	Name            string `gorm:"index;not null"`
	Address         string
	OpeningHours    string
	EmergencyNumber string
	CreatedBy       string
}
