package domain

import "time"

// DateLayout is the calendar-day format used for LogEntry.Date.
const DateLayout = "2006-01-02"

// LogEntry is one accepted record of an activity on a calendar day.
// Entries are never mutated except when an activity rename migrates them.
type LogEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Activity  string    `json:"activity" yaml:"activity"`
	Amount    float64   `json:"amount" yaml:"amount"`
	Unit      Unit      `json:"unit" yaml:"unit"`
	Date      string    `json:"date" yaml:"date"`
	Message   string    `json:"message" yaml:"message"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Points    int       `json:"points" yaml:"points"`
}

// DayOf formats t as a calendar day in t's location.
func DayOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ShiftDay returns the calendar day offset by n days from day.
// Returns day unchanged if it cannot be parsed.
func ShiftDay(day string, n int) string {
	t, err := time.Parse(DateLayout, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}
