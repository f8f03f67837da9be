package domain

// MoodBand is the risk band a mood value falls into.
type MoodBand string

const (
	MoodCritical MoodBand = "CRITICAL"
	MoodNeutral  MoodBand = "NEUTRAL"
	MoodStable   MoodBand = "STABLE"
)

const (
	MinMoodValue = 1
	MaxMoodValue = 10
)

func ValidateMoodValue(value int) error {
	if value < MinMoodValue || value > MaxMoodValue {
		return ErrInvalidMoodValue
	}
	return nil
}

// ClassifyMood maps 1..3 to CRITICAL, 4..7 to NEUTRAL and 8..10 to STABLE.
// Values outside 1..10 are rejected rather than clamped.
func ClassifyMood(value int) (MoodBand, error) {
	if err := ValidateMoodValue(value); err != nil {
		return "", err
	}
	switch {
	case value <= 3:
		return MoodCritical, nil
	case value <= 7:
		return MoodNeutral, nil
	default:
		return MoodStable, nil
	}
}

// Color is the calendar cell colour used by the clients.
func (b MoodBand) Color() string {
	switch b {
	case MoodCritical:
		return "red"
	case MoodNeutral:
		return "yellow"
	case MoodStable:
		return "green"
	}
	return ""
}
