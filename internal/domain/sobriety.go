package domain

import "time"

const fullDay = 24 * time.Hour

// SoberDays returns the number of whole days between soberSince and now.
// A nil soberSince means the streak is not tracked and yields 0; a start in
// the future is clamped to 0.
func SoberDays(now time.Time, soberSince *time.Time) int {
	if soberSince == nil {
		return 0
	}
	elapsed := now.Sub(*soberSince)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / fullDay)
}

// RelapseAt is the new sober start recorded when the patient reports a drink.
func RelapseAt(now time.Time) time.Time {
	return now
}
