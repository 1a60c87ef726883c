package repository

import (
	"database/sql"
	"errors"
	"time"
)

// timeLayout keeps sub-second precision so timestamp ordering survives a
// round trip.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp. Returns the zero time if it fails.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullableFloat converts a *float64 to a value suitable for SQLite storage.
func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// floatPtr converts a sql.NullFloat64 into a *float64.
func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
