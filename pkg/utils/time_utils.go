package utils

import "time"

// LoadLocation resolves an IANA zone name, falling back to a fixed CET zone
// when the tz database is unavailable on the host.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = "Europe/Berlin"
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}

func FormatRFC3339In(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}

// FormatOptionalRFC3339In renders a nullable timestamp, nil for absent.
func FormatOptionalRFC3339In(t *time.Time, loc *time.Location) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.In(loc).Format(time.RFC3339)
	return &s
}
