package intent

import (
	"testing"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	parseNow  = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	today     = "2025-06-15"
	yesterday = "2025-06-14"
)

func TestParse_BuiltinCategories(t *testing.T) {
	tests := []struct {
		text string
		want ParsedIntent
	}{
		{"Did 2 coding questions today", ParsedIntent{"coding", 2, domain.UnitQuestions, today}},
		{"Went to gym yesterday", ParsedIntent{"gym", 1, domain.UnitSession, yesterday}},
		{"Slept 7.5 hours", ParsedIntent{"sleep", 7.5, domain.UnitHours, today}},
		{"solved 3 leetcode problems", ParsedIntent{"coding", 3, domain.UnitQuestions, today}},
		{"Coded for 45 minutes", ParsedIntent{"coding", 45, domain.UnitMinutes, today}},
		{"worked on my code", ParsedIntent{"coding", 1, domain.UnitSession, today}},
		{"great workout", ParsedIntent{"gym", 1, domain.UnitSession, today}},
		{"I slept well yesterday", ParsedIntent{"sleep", 8, domain.UnitHours, yesterday}},
		{"Read 20 pages", ParsedIntent{"reading", 20, domain.UnitPages, today}},
		{"read for 30 minutes", ParsedIntent{"reading", 30, domain.UnitMinutes, today}},
		{"finished a book", ParsedIntent{"reading", 1, domain.UnitSession, today}},
		{"Meditated this morning", ParsedIntent{"meditation", 10, domain.UnitMinutes, today}},
		{"meditated 15 min", ParsedIntent{"meditation", 15, domain.UnitMinutes, today}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Parse(tt.text, nil, parseNow)
			require.True(t, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParse_CodingBeatsLaterCategories(t *testing.T) {
	got, ok := Parse("coding before sleep", nil, parseNow)
	require.True(t, ok)
	assert.Equal(t, domain.ActivityCoding, got.Activity)
}

func TestParse_KnownActivityWinsOverBuiltins(t *testing.T) {
	got, ok := Parse("Did yoga for 30 minutes after coding", []string{"yoga"}, parseNow)
	require.True(t, ok)
	want := ParsedIntent{Activity: "yoga", Amount: 30, Unit: domain.UnitMinutes, Date: today}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_KnownActivitiesInInsertionOrder(t *testing.T) {
	got, ok := Parse("running club 5 km", []string{"run", "running club"}, parseNow)
	require.True(t, ok)
	assert.Equal(t, "run", got.Activity)
	assert.Equal(t, 5.0, got.Amount)
	assert.Equal(t, domain.UnitDistance, got.Unit)
}

func TestParse_KnownActivityCaseInsensitiveKeepsName(t *testing.T) {
	got, ok := Parse("finished DEEP WORK yesterday", []string{"Deep Work"}, parseNow)
	require.True(t, ok)
	assert.Equal(t, "Deep Work", got.Activity)
	assert.Equal(t, 1.0, got.Amount)
	assert.Equal(t, yesterday, got.Date)
}

func TestParse_KnownActivitySubstringStillMatches(t *testing.T) {
	got, ok := Parse("started my day", []string{"art"}, parseNow)
	require.True(t, ok)
	assert.Equal(t, "art", got.Activity)
	assert.Equal(t, domain.UnitSession, got.Unit)
}

func TestParse_NoMatch(t *testing.T) {
	for _, text := range []string{"hello there", "", "   ", "what should I eat"} {
		_, ok := Parse(text, []string{"yoga"}, parseNow)
		assert.False(t, ok, "text=%q", text)
	}
}

func TestResolveDate_MonthBoundary(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-02-28", ResolveDate("YESTERDAY I ran", now))
	assert.Equal(t, "2025-03-01", ResolveDate("today I ran", now))
}

func TestInferUnit(t *testing.T) {
	tests := map[string]domain.Unit{
		"30 minutes":      domain.UnitMinutes,
		"10 min":          domain.UnitMinutes,
		"1 hour":          domain.UnitHours,
		"2 hrs":           domain.UnitHours,
		"12 pages":        domain.UnitPages,
		"read 2 chapters": domain.UnitPages,
		"ran 3 miles":     domain.UnitDistance,
		"walked 5 km":     domain.UnitDistance,
		"8000 steps":      domain.UnitDistance,
		"one round of it": domain.UnitSession,
	}
	for text, want := range tests {
		assert.Equal(t, want, InferUnit(text), "text=%q", text)
	}
}

func TestFirstNumber(t *testing.T) {
	assert.Equal(t, 7.5, FirstNumber("slept 7.5 then 3", 1))
	assert.Equal(t, 1.0, FirstNumber("no digits", 1))
	assert.Equal(t, 42.0, FirstNumber("x42y", 0))
}
