package domain

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RolePatient, RoleDoctor, RoleAdmin:
		return Role(value), nil
	}
	return "", ErrUnknownRole
}
