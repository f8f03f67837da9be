package domain

import "time"

const dayKeyLayout = "2006-01-02"

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// StartOfDay returns 00:00:00.000 of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
}

// DayRange covers t's calendar day in loc, from midnight to 23:59:59.999.
func DayRange(t time.Time, loc *time.Location) DateRange {
	return DateRange{Start: StartOfDay(t, loc), End: endOfDay(t, loc)}
}

// TodayRange is the day range of now's calendar day.
func TodayRange(now time.Time, loc *time.Location) DateRange {
	return DayRange(now, loc)
}

// MonthRange covers a whole calendar month. month is zero-based (0 is
// January). The last day is found by advancing one month from the first and
// stepping back one day.
func MonthRange(year, month int, loc *time.Location) (DateRange, error) {
	if month < 0 || month > 11 {
		return DateRange{}, ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return DateRange{}, ErrInvalidYear
	}
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, loc)
	last := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return DateRange{Start: start, End: endOfDay(last, loc)}, nil
}

// DayKey identifies t's calendar day in loc as YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, value, loc)
}
