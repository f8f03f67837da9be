package response_models

import (
	"fmt"
	"time"

	"soberup/internal/domain"
	"soberup/internal/models/db_models"
	"soberup/pkg/utils"
)

type SOSContactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type UserProfileResponse struct {
	ID               string              `json:"id"`
	Username         string              `json:"username"`
	Role             string              `json:"role"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	SoberDays        int                 `json:"sober_days"`
	SoberSince       *string             `json:"sober_since"`
	SOSContact       *SOSContactResponse `json:"sos_contact"`
	Triggers         []string            `json:"triggers"`
	AssignedDoctorID *string             `json:"assigned_doctor_id"`
	CreatedAt        string              `json:"created_at"`
	LastMoodCheck    *string             `json:"last_mood_check"`
}

// BuildUserProfile is the one place a stored user becomes an API view.
// SoberDays is derived from SoberSince at now; the cached column is ignored.
// A role outside the known set is reported, not defaulted.
func BuildUserProfile(u *db_models.User, now time.Time, loc *time.Location) (*UserProfileResponse, error) {
	role, err := domain.ParseRole(u.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s has role %q", utils.ErrCorruptRecord, u.ID, u.Role)
	}

	out := &UserProfileResponse{
		ID:            u.ID.String(),
		Username:      u.Username,
		Role:          string(role),
		Name:          u.Name,
		Email:         u.Email,
		SoberDays:     domain.SoberDays(now, u.SoberSince),
		SoberSince:    utils.FormatOptionalRFC3339In(u.SoberSince, loc),
		Triggers:      TriggerList(u.Triggers),
		CreatedAt:     utils.FormatRFC3339In(u.CreatedAt, loc),
		LastMoodCheck: utils.FormatOptionalRFC3339In(u.LastMoodCheck, loc),
	}
	if u.SOSContact.IsSet() {
		out.SOSContact = &SOSContactResponse{Name: u.SOSContact.Name, Phone: u.SOSContact.Phone}
	}
	if u.AssignedDoctorID != nil {
		id := u.AssignedDoctorID.String()
		out.AssignedDoctorID = &id
	}
	return out, nil
}

// TriggerList never returns nil so that clients always see an array.
func TriggerList(triggers []string) []string {
	out := make([]string, len(triggers))
	copy(out, triggers)
	return out
}
