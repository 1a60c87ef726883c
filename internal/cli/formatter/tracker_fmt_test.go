package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestFormatIngestResult_Log(t *testing.T) {
	res := &contract.IngestResult{
		Reply:         "Nice work!",
		Kind:          contract.KindLog,
		LogEntry:      &domain.LogEntry{Activity: "coding", Amount: 2, Unit: domain.UnitQuestions},
		PointsAwarded: 10,
		StreakUpdated: true,
		CurrentStreak: intPtr(3),
		Personality:   "trainer",
	}

	out := FormatIngestResult(res, true)
	assert.Contains(t, out, "Trainer")
	assert.Contains(t, out, "Nice work!")
	assert.Contains(t, out, "2 questions")
	assert.Contains(t, out, "10 pts")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "coding Spark")

	hidden := FormatIngestResult(res, false)
	assert.NotContains(t, hidden, "10 pts")
}

func TestFormatIngestResult_OtherKinds(t *testing.T) {
	out := FormatIngestResult(&contract.IngestResult{
		Reply: "Tracking yoga now", Kind: contract.KindActivity, ActivityCreated: "yoga",
	}, true)
	assert.Contains(t, out, "Default")
	assert.Contains(t, out, "now tracking yoga")

	out = FormatIngestResult(&contract.IngestResult{
		Reply: "Hi", Kind: contract.KindConversation, FallbackReply: true,
	}, true)
	assert.Contains(t, out, "offline reply")
}

func TestFormatStats(t *testing.T) {
	stats := &contract.Stats{
		TotalPoints: 34,
		Streaks:     domain.NewStreakMap(domain.StreakEntry{Activity: "coding", Count: 3}),
		Badges: []domain.Badge{{
			Activity: "coding", Tier: domain.TierSpark, Name: "coding Spark", Icon: "🔥", Description: "3-day streak!",
		}},
		Logs: []domain.LogEntry{
			{Activity: "coding", Amount: 2, Unit: domain.UnitQuestions, Date: "2025-06-15", Points: 10},
		},
		Activities: []domain.Activity{{Name: "coding"}},
	}

	out := FormatStats(stats, "2025-06-15")
	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, "34 pts")
	assert.Contains(t, out, "coding Spark")
	assert.Contains(t, out, "3/7")
	assert.Contains(t, out, "Today")
}

func TestFormatStats_Empty(t *testing.T) {
	out := FormatStats(&contract.Stats{}, "2025-06-15")
	assert.Contains(t, out, "No streaks yet")
	assert.Contains(t, out, "0 pts")
}

func TestFormatActivities(t *testing.T) {
	four := 4.0
	acts := []domain.Activity{
		{Name: "coding", VisualizationType: domain.VizHeatmap},
		{Name: "yoga", CustomPointsPerUnit: &four, VisualizationType: domain.VizPie, Description: "morning flow"},
		{Name: "piano", VisualizationType: domain.VizBar},
	}
	streaks := domain.NewStreakMap(domain.StreakEntry{Activity: "yoga", Count: 2})

	out := FormatActivities(acts, streaks)
	assert.Contains(t, out, "builtin")
	assert.Contains(t, out, "4/unit")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "morning flow")
	assert.Contains(t, out, "2 days")

	assert.Contains(t, FormatActivities(nil, domain.StreakMap{}), "No activities yet")
}

func TestFormatLogs(t *testing.T) {
	logs := []domain.LogEntry{{
		ID: "0123456789", Activity: "sleep", Amount: 7.5, Unit: domain.UnitHours,
		Date: "2025-06-14", Points: 7, Message: "Slept 7.5 hours last night",
	}}
	out := FormatLogs(logs, "2025-06-15")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "Yesterday")
	assert.Contains(t, out, "7.5 hours")
	assert.Contains(t, out, "7 pts")

	assert.Contains(t, FormatLogs(nil, "2025-06-15"), "No log entries")
}

func TestFormatTranscript(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	msgs := []domain.ChatMessage{
		{ID: "m1", Role: domain.RoleUser, Message: "did yoga", Timestamp: now.Add(-2 * time.Minute)},
		{ID: "m2", Role: domain.RoleAssistant, Message: "Namaste!", Timestamp: now.Add(-time.Minute)},
	}
	out := FormatTranscript(msgs, now)
	assert.Contains(t, out, "you")
	assert.Contains(t, out, "did yoga")
	assert.Contains(t, out, "streakmind")
	assert.Contains(t, out, "2m ago")

	assert.Contains(t, FormatTranscript(nil, now), "No messages yet")
}

func TestFormatSettings(t *testing.T) {
	s := domain.DefaultSettings()
	out := FormatSettings(&s)
	assert.Contains(t, out, "enabledPersonalities.trainer")
	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "24h")
	assert.Contains(t, out, "heatmap")
}

func TestFormatMemory(t *testing.T) {
	m := domain.NewUserMemory("default", time.Now())
	out := FormatMemory(&m)
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "Nothing remembered yet")

	m.Name = "Ana"
	m.PersonalContext.Goals = []string{"run a marathon"}
	out = FormatMemory(&m)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "goals")
	assert.Contains(t, out, "run a marathon")
	assert.NotContains(t, out, "Nothing remembered yet")
}

func TestFormatImportResult(t *testing.T) {
	out := FormatImportResult(&contract.ImportResult{
		Mode:             contract.ImportReplace,
		ActivitiesAdded:  2,
		LogsAdded:        5,
		SettingsRestored: true,
		MemoryRestored:   true,
		Streaks:          domain.NewStreakMap(domain.StreakEntry{Activity: "gym", Count: 3}),
	})
	assert.Contains(t, out, "Restored 2 activities and 5 log entries")
	assert.Contains(t, out, "also restored settings, memory")
	assert.NotContains(t, out, "skipped")
	assert.Contains(t, out, "gym")

	merged := FormatImportResult(&contract.ImportResult{Mode: contract.ImportMerge, LogsAdded: 1, LogsSkipped: 2})
	assert.Contains(t, merged, "Merged 0 activities and 1 log entries")
	assert.Contains(t, merged, "skipped 2 already stored")
	assert.Contains(t, merged, "No streaks.")
}
