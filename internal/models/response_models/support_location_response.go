package response_models

import (
	"time"

	"soberup/internal/models/db_models"
	"soberup/pkg/utils"
)

type SupportLocationResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	OpeningHours    string `json:"opening_hours"`
	EmergencyNumber string `json:"emergency_number"`
	CreatedBy       string `json:"created_by"`
	CreatedAt       string `json:"created_at"`
}

func BuildSupportLocation(l *db_models.SupportLocation, loc *time.Location) SupportLocationResponse {
	return SupportLocationResponse{
		ID:              l.ID.String(),
		Name:            l.Name,
		Address:         l.Address,
		OpeningHours:    l.OpeningHours,
		EmergencyNumber: l.EmergencyNumber,
		CreatedBy:       l.CreatedBy,
		CreatedAt:       utils.FormatRFC3339In(l.CreatedAt, loc),
	}
}
